package repository

import (
	"fmt"
	"time"

	"lumina-storefront/internal/domains/book/model"
	"lumina-storefront/internal/shared"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// bookColumns matches bookRow scan order
const bookColumns = `
	id::text, title, author, price::text,
	COALESCE(description, ''), category, COALESCE(cover_image, ''),
	pdf_preview_url, stock, is_featured, created_at`

// bookRow is the remote shape of a book. price travels as text so no
// precision is lost before decimal parsing.
type bookRow struct {
	ID            string
	Title         string
	Author        string
	Price         string
	Description   string
	Category      string
	CoverImage    string
	PdfPreviewURL *string
	Stock         int
	IsFeatured    *bool
	CreatedAt     time.Time
}

func scanBookRow(row pgx.Row) (bookRow, error) {
	var r bookRow
	err := row.Scan(
		&r.ID, &r.Title, &r.Author, &r.Price,
		&r.Description, &r.Category, &r.CoverImage,
		&r.PdfPreviewURL, &r.Stock, &r.IsFeatured, &r.CreatedAt,
	)
	return r, err
}

func (r bookRow) decode() (model.Book, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return model.Book{}, fmt.Errorf("%w: book %s: price %q", shared.ErrMalformedRow, r.ID, r.Price)
	}

	b := model.Book{
		ID:          r.ID,
		Title:       r.Title,
		Author:      r.Author,
		Price:       price,
		Description: r.Description,
		Category:    r.Category,
		CoverImage:  r.CoverImage,
		Stock:       r.Stock,
		CreatedAt:   r.CreatedAt,
	}
	if r.PdfPreviewURL != nil {
		b.PdfPreviewURL = *r.PdfPreviewURL
	}
	if r.IsFeatured != nil {
		b.IsFeatured = *r.IsFeatured
	}

	if err := b.CheckStored(); err != nil {
		return model.Book{}, fmt.Errorf("%w: book %s: %v", shared.ErrMalformedRow, r.ID, err)
	}
	return b, nil
}

// nullable maps "" to SQL NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
