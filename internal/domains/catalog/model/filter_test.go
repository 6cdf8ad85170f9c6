package model

import (
	"testing"

	bookModel "lumina-storefront/internal/domains/book/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shelf = []bookModel.Book{
	{ID: "1", Title: "El Susurro del Roble", Category: "Ficción", IsFeatured: true},
	{ID: "2", Title: "Cenizas de Oro", Category: "Histórica"},
	{ID: "3", Title: "Poemas de Sal y Viento", Category: "Poesía"},
	{ID: "4", Title: "La Última Brújula", Category: "Aventura", IsFeatured: true},
}

func ids(books []bookModel.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		category string
		search   string
		want     []string
	}{
		{"all", CategoryAll, "", []string{"1", "2", "3", "4"}},
		{"label sentinel", CategoryAllLabel, "", []string{"1", "2", "3", "4"}},
		{"category", "Poesía", "", []string{"3"}},
		{"search ignores case", "", "ORO", []string{"2"}},
		{"search inside title", CategoryAll, "de", []string{"1", "2", "3"}},
		{"category and search", "Ficción", "oro", []string{}},
		{"unknown category", "Terror", "", []string{}},
		{"search keeps trailing space", CategoryAll, "oro ", []string{}},
		{"search keeps leading space", CategoryAll, " sal", []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(shelf, tt.category, tt.search)))
		})
	}
}

func TestHero(t *testing.T) {
	hero := Hero(shelf, "3")
	require.NotNil(t, hero)
	assert.Equal(t, "3", hero.ID)

	hero = Hero(shelf, "missing")
	require.NotNil(t, hero)
	assert.Equal(t, "1", hero.ID)

	assert.Nil(t, Hero([]bookModel.Book{{ID: "x"}}, ""))
}
