package repository

import (
	"context"

	"lumina-storefront/internal/domains/order/model"
)

// Repository persists orders. Orders are created at checkout and only
// their status changes afterwards.
type Repository interface {
	// List returns every order, newest first
	List(ctx context.Context) ([]model.Order, error)
	ListByStatus(ctx context.Context, status model.Status) ([]model.Order, error)
	Create(ctx context.Context, order *model.Order) error
	UpdateStatus(ctx context.Context, id string, status model.Status) error
	Summary(ctx context.Context) (*model.Summary, error)
}
