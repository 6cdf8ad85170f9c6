package service

import (
	"context"

	"lumina-storefront/internal/domains/cart/model"
	orderModel "lumina-storefront/internal/domains/order/model"
)

// CheckoutResult carries the stored order and the chat link to open
type CheckoutResult struct {
	Order      *orderModel.Order `json:"order"`
	Message    string            `json:"message"`
	HandoffURL string            `json:"handoff_url"`
}

// ServiceInterface - per-session cart operations
type ServiceInterface interface {
	GetCart(ctx context.Context, sessionID string) ([]model.CartItem, error)
	AddItem(ctx context.Context, sessionID, bookID string) ([]model.CartItem, error)
	RemoveItem(ctx context.Context, sessionID, bookID string) ([]model.CartItem, error)
	Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error)
}
