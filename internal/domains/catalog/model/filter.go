package model

import (
	"strings"

	bookModel "lumina-storefront/internal/domains/book/model"
)

// Category sentinels that select every book
const (
	CategoryAll      = "all"
	CategoryAllLabel = "Todos"
)

func isAllCategories(category string) bool {
	return category == "" || category == CategoryAll || category == CategoryAllLabel
}

// Filter keeps books in category whose title contains search, ignoring case.
// search is matched as typed, spaces included.
// Order is preserved and there is no pagination.
func Filter(books []bookModel.Book, category, search string) []bookModel.Book {
	needle := strings.ToLower(search)

	out := make([]bookModel.Book, 0, len(books))
	for _, b := range books {
		if !isAllCategories(category) && b.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(b.Title), needle) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Hero picks the configured hero book, else the first featured one
func Hero(books []bookModel.Book, heroBookID string) *bookModel.Book {
	if heroBookID != "" {
		for i := range books {
			if books[i].ID == heroBookID {
				b := books[i]
				return &b
			}
		}
	}
	for i := range books {
		if books[i].IsFeatured {
			b := books[i]
			return &b
		}
	}
	return nil
}
