package repository

import (
	"testing"

	"lumina-storefront/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRowDecode(t *testing.T) {
	featured := true
	pdf := "https://cdn.example/preview.pdf"

	b, err := bookRow{
		ID:            "2b0c6f3e-6a64-4a57-9f0e-6d3b9f1b7a11",
		Title:         "Ecos del Silencio",
		Author:        "Elena Valente",
		Price:         "18.50",
		Category:      "Poesía",
		PdfPreviewURL: &pdf,
		Stock:         4,
		IsFeatured:    &featured,
	}.decode()

	require.NoError(t, err)
	assert.Equal(t, "18.5", b.Price.String())
	assert.Equal(t, pdf, b.PdfPreviewURL)
	assert.True(t, b.IsFeatured)
}

func TestBookRowDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		row  bookRow
	}{
		{"unparseable price", bookRow{ID: "x", Price: "abc"}},
		{"negative price", bookRow{ID: "x", Price: "-1.00"}},
		{"negative stock", bookRow{ID: "x", Price: "1.00", Stock: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.row.decode()
			assert.ErrorIs(t, err, shared.ErrMalformedRow)
		})
	}
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	assert.Equal(t, "x", *nullable("x"))
}
