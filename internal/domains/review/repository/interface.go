package repository

import (
	"context"

	"lumina-storefront/internal/domains/review/model"
)

type RepositoryInterface interface {
	// List returns every review, newest first
	List(ctx context.Context) ([]model.Review, error)
	ListByBook(ctx context.Context, bookID string) ([]model.Review, error)
	// Create fills ID and Date
	Create(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
