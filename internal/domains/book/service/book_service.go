package service

import (
	"context"
	"fmt"
	"time"

	"lumina-storefront/internal/domains/book/model"
	"lumina-storefront/internal/domains/book/repository"
	settingsModel "lumina-storefront/internal/domains/settings/model"

	"github.com/rs/zerolog/log"
)

// SettingsReader supplies the category list and default author
type SettingsReader interface {
	GetSettings(ctx context.Context) (*settingsModel.Settings, error)
}

// CoverCleaner removes covers we host ourselves once no book points at them.
// Implementations ignore foreign URLs and data URIs.
type CoverCleaner interface {
	ScheduleCoverCleanup(ctx context.Context, bookID, coverURL string) error
}

type BookService struct {
	repo     repository.RepositoryInterface
	settings SettingsReader
	covers   CoverCleaner
	now      func() time.Time
}

// NewService - Constructor with DI. covers may be nil.
func NewService(
	repo repository.RepositoryInterface,
	settings SettingsReader,
	covers CoverCleaner,
) ServiceInterface {
	return &BookService{
		repo:     repo,
		settings: settings,
		covers:   covers,
		now:      time.Now,
	}
}

func (s *BookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.List(ctx)
}

func (s *BookService) GetBook(ctx context.Context, id string) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateBook fills the author from settings and a placeholder cover when
// they are left empty, then validates against the configured categories.
func (s *BookService) CreateBook(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	book := req.ToBook()
	if book.Author == "" {
		book.Author = settings.AuthorName
	}
	if book.CoverImage == "" {
		book.CoverImage = placeholderCover(s.now())
	}

	if err := book.Validate(settings.Categories); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	log.Info().Str("book_id", book.ID).Str("title", book.Title).Msg("[BookService] Created")
	return book, nil
}

func (s *BookService) UpdateBook(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
	// Step 1: Load current state
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousCover := book.CoverImage

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	// Step 2: Merge and validate
	req.Apply(book)
	if err := book.Validate(settings.Categories); err != nil {
		return nil, err
	}

	// Step 3: Persist
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	if previousCover != book.CoverImage {
		s.cleanupCover(ctx, book.ID, previousCover)
	}
	return book, nil
}

func (s *BookService) DeleteBook(ctx context.Context, id string) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cleanupCover(ctx, id, book.CoverImage)
	log.Info().Str("book_id", id).Msg("[BookService] Deleted")
	return nil
}

// cleanupCover is best effort, a leftover object is harmless
func (s *BookService) cleanupCover(ctx context.Context, bookID, coverURL string) {
	if s.covers == nil || coverURL == "" {
		return
	}
	if err := s.covers.ScheduleCoverCleanup(ctx, bookID, coverURL); err != nil {
		log.Warn().Err(err).Str("book_id", bookID).Msg("[BookService] Failed to schedule cover cleanup")
	}
}

func placeholderCover(now time.Time) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/400/600", now.UnixMilli())
}
