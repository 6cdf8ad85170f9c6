package model

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBook() *Book {
	return &Book{
		Title:      "La Última Brújula",
		Author:     "Elena Valente",
		Price:      decimal.RequireFromString("20.00"),
		Category:   "Aventura",
		CoverImage: "https://picsum.photos/seed/book4/600/900",
		Stock:      15,
	}
}

func TestBookValidate(t *testing.T) {
	categories := []string{"Ficción", "Aventura"}

	tests := []struct {
		name    string
		mutate  func(b *Book)
		wantKey string
	}{
		{name: "valid", mutate: func(b *Book) {}},
		{name: "zero stock and price allowed", mutate: func(b *Book) {
			b.Stock = 0
			b.Price = decimal.Zero
		}},
		{name: "data uri cover", mutate: func(b *Book) { b.CoverImage = "data:image/jpeg;base64,AAAA" }},
		{name: "missing title", mutate: func(b *Book) { b.Title = "" }, wantKey: "title"},
		{name: "negative price", mutate: func(b *Book) { b.Price = decimal.NewFromInt(-1) }, wantKey: "price"},
		{name: "negative stock", mutate: func(b *Book) { b.Stock = -3 }, wantKey: "stock"},
		{name: "unknown category", mutate: func(b *Book) { b.Category = "Terror" }, wantKey: "category"},
		{name: "bad cover", mutate: func(b *Book) { b.CoverImage = "ftp://x" }, wantKey: "cover_image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			tt.mutate(b)

			err := b.Validate(categories)
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tt.wantKey)
		})
	}
}

func TestBookCheckStored(t *testing.T) {
	b := validBook()
	b.ID = "b1"
	assert.NoError(t, b.CheckStored())

	b.Stock = -1
	assert.Error(t, b.CheckStored())

	b = validBook()
	assert.Error(t, b.CheckStored(), "missing id")
}

func TestUpdateBookRequestApply(t *testing.T) {
	b := validBook()
	title := "Nuevo título"
	stock := 0

	UpdateBookRequest{Title: &title, Stock: &stock}.Apply(b)

	assert.Equal(t, "Nuevo título", b.Title)
	assert.Equal(t, 0, b.Stock)
	assert.Equal(t, "Aventura", b.Category)
}
