package model

import (
	bookModel "lumina-storefront/internal/domains/book/model"
	reviewModel "lumina-storefront/internal/domains/review/model"
	settingsModel "lumina-storefront/internal/domains/settings/model"
)

// HomeView is the landing page with the catalog section
type HomeView struct {
	Page       string                  `json:"page"`
	Anchor     string                  `json:"anchor,omitempty"`
	Settings   *settingsModel.Settings `json:"settings"`
	Hero       *bookModel.Book         `json:"hero,omitempty"`
	Categories []string                `json:"categories"`
	Category   string                  `json:"category"`
	Search     string                  `json:"search"`
	Books      []bookModel.Book        `json:"books"`
	NoMatches  bool                    `json:"no_matches"`
}

// DetailView is one book with its reviews
type DetailView struct {
	Page    string               `json:"page"`
	Book    *bookModel.Book      `json:"book"`
	Reviews []reviewModel.Review `json:"reviews"`
}
