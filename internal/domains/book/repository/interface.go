package repository

import (
	"context"

	"lumina-storefront/internal/domains/book/model"
)

// RepositoryInterface - data access for the books table
type RepositoryInterface interface {
	List(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id string) (*model.Book, error)
	// Create fills in ID and CreatedAt
	Create(ctx context.Context, book *model.Book) error
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
