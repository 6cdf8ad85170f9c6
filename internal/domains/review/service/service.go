package service

import (
	"context"

	"lumina-storefront/internal/domains/review/model"
	"lumina-storefront/internal/domains/review/repository"

	"github.com/rs/zerolog/log"
)

type reviewService struct {
	repo repository.RepositoryInterface
}

func NewReviewService(repo repository.RepositoryInterface) ServiceInterface {
	return &reviewService{repo: repo}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.repo.List(ctx)
}

func (s *reviewService) ListBookReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	return s.repo.ListByBook(ctx, bookID)
}

func (s *reviewService) CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	review := req.ToReview()
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	log.Info().Str("review_id", review.ID).Str("book_id", review.BookID).Int("rating", review.Rating).Msg("Review created")
	return review, nil
}

// DeleteReview removes exactly one review
func (s *reviewService) DeleteReview(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("review_id", id).Msg("Review deleted")
	return nil
}
