package service

import (
	"context"
	"errors"
	"fmt"

	bookModel "lumina-storefront/internal/domains/book/model"
	"lumina-storefront/internal/domains/settings/model"
	"lumina-storefront/internal/domains/settings/repository"

	"github.com/rs/zerolog/log"
)

// BookLookup is the slice of the book repository needed to check hero_book_id
type BookLookup interface {
	GetByID(ctx context.Context, id string) (*bookModel.Book, error)
}

type settingsService struct {
	repo  repository.Repository
	books BookLookup
}

func NewSettingsService(repo repository.Repository, books BookLookup) ServiceInterface {
	return &settingsService{repo: repo, books: books}
}

func (s *settingsService) GetSettings(ctx context.Context) (*model.Settings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return model.Defaults(), nil
	}
	return current, nil
}

func (s *settingsService) SaveSettings(ctx context.Context, req model.UpdateSettingsRequest) (*model.Settings, error) {
	// Step 1: Start from the stored (or default) settings
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	next := current.Clone()
	req.Apply(next)

	// Step 2: Validate
	if err := next.Validate(); err != nil {
		return nil, err
	}
	if next.HeroBookID != "" && next.HeroBookID != current.HeroBookID {
		if _, err := s.books.GetByID(ctx, next.HeroBookID); err != nil {
			if errors.Is(err, bookModel.ErrBookNotFound) {
				return nil, model.ErrHeroBookNotFound
			}
			return nil, fmt.Errorf("check hero book: %w", err)
		}
	}

	// Step 3: Persist
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, err
	}

	log.Info().Str("author", next.AuthorName).Int("categories", len(next.Categories)).Msg("[Settings] Saved")
	return next, nil
}

// AddCategory persists immediately, one write per call
func (s *settingsService) AddCategory(ctx context.Context, name string) (*model.Settings, error) {
	return s.mutateCategories(ctx, func(next *model.Settings) error {
		return next.AddCategory(name)
	})
}

// RemoveCategory persists immediately; books keep their category value
func (s *settingsService) RemoveCategory(ctx context.Context, name string) (*model.Settings, error) {
	return s.mutateCategories(ctx, func(next *model.Settings) error {
		return next.RemoveCategory(name)
	})
}

func (s *settingsService) mutateCategories(ctx context.Context, mutate func(*model.Settings) error) (*model.Settings, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := mutate(next); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}
