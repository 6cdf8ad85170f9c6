package model

import "github.com/shopspring/decimal"

// CreateBookRequest - POST /admin/books
type CreateBookRequest struct {
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	CoverImage    string          `json:"cover_image"`
	PdfPreviewURL string          `json:"pdf_preview_url"`
	Stock         int             `json:"stock"`
	IsFeatured    bool            `json:"is_featured"`
}

// ToBook copies the request into a new, unsaved book
func (r CreateBookRequest) ToBook() *Book {
	return &Book{
		Title:         r.Title,
		Author:        r.Author,
		Price:         r.Price,
		Description:   r.Description,
		Category:      r.Category,
		CoverImage:    r.CoverImage,
		PdfPreviewURL: r.PdfPreviewURL,
		Stock:         r.Stock,
		IsFeatured:    r.IsFeatured,
	}
}

// UpdateBookRequest - PUT /admin/books/:id
// nil fields keep the stored value
type UpdateBookRequest struct {
	Title         *string          `json:"title"`
	Author        *string          `json:"author"`
	Price         *decimal.Decimal `json:"price"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	CoverImage    *string          `json:"cover_image"`
	PdfPreviewURL *string          `json:"pdf_preview_url"`
	Stock         *int             `json:"stock"`
	IsFeatured    *bool            `json:"is_featured"`
}

// Apply merges the request into b
func (r UpdateBookRequest) Apply(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Author != nil {
		b.Author = *r.Author
	}
	if r.Price != nil {
		b.Price = *r.Price
	}
	if r.Description != nil {
		b.Description = *r.Description
	}
	if r.Category != nil {
		b.Category = *r.Category
	}
	if r.CoverImage != nil {
		b.CoverImage = *r.CoverImage
	}
	if r.PdfPreviewURL != nil {
		b.PdfPreviewURL = *r.PdfPreviewURL
	}
	if r.Stock != nil {
		b.Stock = *r.Stock
	}
	if r.IsFeatured != nil {
		b.IsFeatured = *r.IsFeatured
	}
}

// DeleteCoverPayload is the asynq payload for removing a stored cover
type DeleteCoverPayload struct {
	BookID   string `json:"book_id"`
	CoverURL string `json:"cover_url"`
}
