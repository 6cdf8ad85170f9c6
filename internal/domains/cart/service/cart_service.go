package service

import (
	"context"
	"fmt"
	"time"

	bookModel "lumina-storefront/internal/domains/book/model"
	"lumina-storefront/internal/domains/cart/model"
	"lumina-storefront/internal/domains/cart/repository"
	orderModel "lumina-storefront/internal/domains/order/model"
	settingsModel "lumina-storefront/internal/domains/settings/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type BookLookup interface {
	GetBook(ctx context.Context, id string) (*bookModel.Book, error)
}

type SettingsReader interface {
	GetSettings(ctx context.Context) (*settingsModel.Settings, error)
}

type OrderWriter interface {
	Create(ctx context.Context, order *orderModel.Order) error
}

// Effect runs after an order is stored. Failures are logged and never
// undo the checkout.
type Effect interface {
	Apply(ctx context.Context, order *orderModel.Order, result *CheckoutResult) error
}

// CheckoutConfig comes from config.StorefrontConfig
type CheckoutConfig struct {
	HandoffBaseURL string
	CustomerName   string
	GreetingLine   string
}

type CartService struct {
	carts    repository.Repository
	books    BookLookup
	settings SettingsReader
	orders   OrderWriter
	effects  []Effect
	cfg      CheckoutConfig

	now   func() time.Time
	newID func() (uuid.UUID, error)
}

func NewCartService(
	carts repository.Repository,
	books BookLookup,
	settings SettingsReader,
	orders OrderWriter,
	cfg CheckoutConfig,
	effects ...Effect,
) ServiceInterface {
	return &CartService{
		carts:    carts,
		books:    books,
		settings: settings,
		orders:   orders,
		effects:  effects,
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewV7,
	}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	return s.carts.Load(ctx, sessionID)
}

// AddItem copies the current book into the cart and writes the cart through
func (s *CartService) AddItem(ctx context.Context, sessionID, bookID string) ([]model.CartItem, error) {
	book, err := s.books.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !book.InStock() {
		return nil, model.ErrOutOfStock
	}

	items, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items = model.AddItem(items, *book)
	if err := s.carts.Save(ctx, sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem is a no-op for books not in the cart
func (s *CartService) RemoveItem(ctx context.Context, sessionID, bookID string) ([]model.CartItem, error) {
	items, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next := model.RemoveItem(items, bookID)
	if len(next) == len(items) {
		return items, nil
	}

	if err := s.carts.Save(ctx, sessionID, next); err != nil {
		return nil, err
	}
	return next, nil
}

// Checkout stores the cart as a pending order, builds the chat link and
// empties the cart. The cart is kept when the order cannot be stored.
// Stock is not decremented.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	// Step 1: cart must have something in it
	items, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.ErrEmptyCart
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	// Step 2: snapshot into an order
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate order id: %w", err)
	}
	snapshot := model.Snapshot(items)
	order := &orderModel.Order{
		ID:           id.String(),
		Items:        snapshot,
		Total:        model.Total(snapshot),
		Status:       orderModel.StatusPending,
		CustomerName: s.cfg.CustomerName,
		Date:         s.now().UTC(),
	}

	// Step 3: persist
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	// Step 4: hand-off link
	message := model.CheckoutMessage(s.cfg.GreetingLine, snapshot)
	result := &CheckoutResult{
		Order:      order,
		Message:    message,
		HandoffURL: model.HandoffURL(s.cfg.HandoffBaseURL, settings.HandoffNumber(), message),
	}

	// Step 5: side effects, best effort
	for _, effect := range s.effects {
		if err := effect.Apply(ctx, order, result); err != nil {
			log.Warn().Err(err).Str("order_id", order.ID).Msg("Checkout side effect failed")
		}
	}

	// Step 6: clear
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Str("order_id", order.ID).Msg("Failed to clear cart after checkout")
	}

	log.Info().
		Str("order_id", order.ID).
		Int("items", order.ItemCount()).
		Str("total", order.Total.StringFixed(2)).
		Msg("Checkout completed")

	return result, nil
}
