package service

import (
	"context"
	"errors"

	bookModel "lumina-storefront/internal/domains/book/model"
	"lumina-storefront/internal/domains/catalog/model"
	reviewModel "lumina-storefront/internal/domains/review/model"
	settingsModel "lumina-storefront/internal/domains/settings/model"
	"lumina-storefront/internal/session"

	"golang.org/x/sync/errgroup"
)

type BookReader interface {
	ListBooks(ctx context.Context) ([]bookModel.Book, error)
	GetBook(ctx context.Context, id string) (*bookModel.Book, error)
}

type SettingsReader interface {
	GetSettings(ctx context.Context) (*settingsModel.Settings, error)
}

type ReviewReader interface {
	ListBookReviews(ctx context.Context, bookID string) ([]reviewModel.Review, error)
}

type ServiceInterface interface {
	Home(ctx context.Context, category, search string) (*model.HomeView, error)
	// Detail returns the home view instead when the book does not exist
	Detail(ctx context.Context, bookID string) (*model.DetailView, *model.HomeView, error)
}

type catalogService struct {
	books    BookReader
	settings SettingsReader
	reviews  ReviewReader
}

func NewCatalogService(books BookReader, settings SettingsReader, reviews ReviewReader) ServiceInterface {
	return &catalogService{books: books, settings: settings, reviews: reviews}
}

func (s *catalogService) Home(ctx context.Context, category, search string) (*model.HomeView, error) {
	var (
		books    []bookModel.Book
		settings *settingsModel.Settings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = s.books.ListBooks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.settings.GetSettings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if category == "" {
		category = model.CategoryAll
	}
	filtered := model.Filter(books, category, search)

	return &model.HomeView{
		Page:       string(session.PageHome),
		Settings:   settings,
		Hero:       model.Hero(books, settings.HeroBookID),
		Categories: append([]string{model.CategoryAll}, settings.Categories...),
		Category:   category,
		Search:     search,
		Books:      filtered,
		NoMatches:  len(filtered) == 0,
	}, nil
}

func (s *catalogService) Detail(ctx context.Context, bookID string) (*model.DetailView, *model.HomeView, error) {
	book, err := s.books.GetBook(ctx, bookID)
	if errors.Is(err, bookModel.ErrBookNotFound) {
		home, err := s.Home(ctx, model.CategoryAll, "")
		return nil, home, err
	}
	if err != nil {
		return nil, nil, err
	}

	reviews, err := s.reviews.ListBookReviews(ctx, book.ID)
	if err != nil {
		return nil, nil, err
	}

	return &model.DetailView{
		Page:    string(session.PageDetail),
		Book:    book,
		Reviews: reviews,
	}, nil, nil
}
