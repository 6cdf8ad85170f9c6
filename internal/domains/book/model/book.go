package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Book is a catalog entry. Price is never negative, stock is never negative.
type Book struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Price         decimal.Decimal `json:"price"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	CoverImage    string          `json:"cover_image"`
	PdfPreviewURL string          `json:"pdf_preview_url,omitempty"`
	Stock         int             `json:"stock"`
	IsFeatured    bool            `json:"is_featured"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InStock reports whether the book can be added to a cart
func (b *Book) InStock() bool {
	return b.Stock > 0
}

// Validate checks an admin write. categories is the current settings list.
func (b *Book) Validate(categories []string) error {
	allowed := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		allowed = append(allowed, c)
	}

	return validation.ValidateStruct(b,
		validation.Field(&b.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&b.Price, validation.By(nonNegativeDecimal)),
		validation.Field(&b.Stock, validation.Min(0).Error("stock must be >= 0")),
		validation.Field(&b.Category,
			validation.Required.Error("category is required"),
			validation.In(allowed...).Error("category must be one of the configured categories"),
		),
		validation.Field(&b.CoverImage, validation.By(imageReference)),
		validation.Field(&b.PdfPreviewURL, validation.By(httpURL)),
	)
}

// CheckStored validates a decoded row against the record invariants
func (b *Book) CheckStored() error {
	if b.ID == "" {
		return errors.New("missing id")
	}
	if b.Price.IsNegative() {
		return fmt.Errorf("negative price %s", b.Price)
	}
	if b.Stock < 0 {
		return fmt.Errorf("negative stock %d", b.Stock)
	}
	return nil
}

func nonNegativeDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return errors.New("must be a decimal")
	}
	if d.IsNegative() {
		return errors.New("price must be >= 0")
	}
	return nil
}

// imageReference accepts an http(s) URL or an embedded data:image URI
func imageReference(value interface{}) error {
	s, _ := value.(string)
	if s == "" || strings.HasPrefix(s, "data:image/") {
		return nil
	}
	return httpURL(s)
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
		return nil
	}
	return errors.New("must be an http(s) URL")
}
