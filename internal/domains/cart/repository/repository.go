package repository

import (
	"context"

	"lumina-storefront/internal/domains/cart/model"
)

// Repository keeps one cart per browser session
type Repository interface {
	// Load returns the stored cart, empty when none is stored
	Load(ctx context.Context, sessionID string) ([]model.CartItem, error)
	Save(ctx context.Context, sessionID string, items []model.CartItem) error
	Clear(ctx context.Context, sessionID string) error
}
