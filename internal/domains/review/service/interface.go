package service

import (
	"context"

	"lumina-storefront/internal/domains/review/model"
)

type ServiceInterface interface {
	ListReviews(ctx context.Context) ([]model.Review, error)
	ListBookReviews(ctx context.Context, bookID string) ([]model.Review, error)
	CreateReview(ctx context.Context, req model.CreateReviewRequest) (*model.Review, error)
	DeleteReview(ctx context.Context, id string) error
}
