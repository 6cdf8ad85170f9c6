package session

import (
	"context"

	bookModel "lumina-storefront/internal/domains/book/model"
	cartModel "lumina-storefront/internal/domains/cart/model"
	orderModel "lumina-storefront/internal/domains/order/model"
	reviewModel "lumina-storefront/internal/domains/review/model"
	settingsModel "lumina-storefront/internal/domains/settings/model"

	"golang.org/x/sync/errgroup"
)

type BookLister interface {
	ListBooks(ctx context.Context) ([]bookModel.Book, error)
}

// SettingsReader returns defaults when nothing is stored
type SettingsReader interface {
	GetSettings(ctx context.Context) (*settingsModel.Settings, error)
}

type OrderLister interface {
	ListOrders(ctx context.Context) ([]orderModel.Order, error)
}

type ReviewLister interface {
	ListReviews(ctx context.Context) ([]reviewModel.Review, error)
}

type CartReader interface {
	GetCart(ctx context.Context, sessionID string) ([]cartModel.CartItem, error)
}

// Loader builds the initial State of a session
type Loader struct {
	books    BookLister
	settings SettingsReader
	orders   OrderLister
	reviews  ReviewLister
	carts    CartReader
}

func NewLoader(books BookLister, settings SettingsReader, orders OrderLister, reviews ReviewLister, carts CartReader) *Loader {
	return &Loader{
		books:    books,
		settings: settings,
		orders:   orders,
		reviews:  reviews,
		carts:    carts,
	}
}

// Load fetches the four record kinds and the cart in parallel.
// The first failure fails the whole load, nothing partial is returned.
func (l *Loader) Load(ctx context.Context, sessionID string, authenticated bool) (*State, error) {
	state := State{Page: PageHome, Authenticated: authenticated}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		state.Books, err = l.books.ListBooks(gctx)
		return err
	})
	g.Go(func() (err error) {
		state.Settings, err = l.settings.GetSettings(gctx)
		return err
	})
	var (
		orders  []orderModel.Order
		reviews []reviewModel.Review
	)
	g.Go(func() (err error) {
		orders, err = l.orders.ListOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		reviews, err = l.reviews.ListReviews(gctx)
		return err
	})
	g.Go(func() (err error) {
		state.Cart, err = l.carts.GetCart(gctx, sessionID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	state = SetReviews(SetOrders(state, orders), reviews)
	if state.Settings == nil {
		state.Settings = settingsModel.Defaults()
	}
	return &state, nil
}
