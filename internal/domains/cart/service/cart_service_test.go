package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	bookModel "lumina-storefront/internal/domains/book/model"
	"lumina-storefront/internal/domains/cart/model"
	"lumina-storefront/internal/domains/cart/repository"
	orderModel "lumina-storefront/internal/domains/order/model"
	settingsModel "lumina-storefront/internal/domains/settings/model"
	"lumina-storefront/pkg/cache"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookCatalog map[string]bookModel.Book

func (b bookCatalog) GetBook(ctx context.Context, id string) (*bookModel.Book, error) {
	book, ok := b[id]
	if !ok {
		return nil, bookModel.ErrBookNotFound
	}
	return &book, nil
}

type staticSettings struct{ s *settingsModel.Settings }

func (s staticSettings) GetSettings(ctx context.Context) (*settingsModel.Settings, error) {
	return s.s, nil
}

type orderLog struct {
	orders []orderModel.Order
	err    error
}

func (o *orderLog) Create(ctx context.Context, order *orderModel.Order) error {
	if o.err != nil {
		return o.err
	}
	o.orders = append(o.orders, *order)
	return nil
}

type effectFunc func(ctx context.Context, order *orderModel.Order, result *CheckoutResult) error

func (f effectFunc) Apply(ctx context.Context, order *orderModel.Order, result *CheckoutResult) error {
	return f(ctx, order, result)
}

type fixture struct {
	svc    *CartService
	carts  repository.Repository
	orders *orderLog
	books  bookCatalog
}

func newFixture(effects ...Effect) *fixture {
	books := bookCatalog{
		"b1": {ID: "b1", Title: "El Eco del Silencio", Price: decimal.RequireFromString("18.50"), Stock: 4},
		"b2": {ID: "b2", Title: "Mareas", Price: decimal.RequireFromString("22.00"), Stock: 1},
		"b3": {ID: "b3", Title: "Agotado", Price: decimal.RequireFromString("9.99"), Stock: 0},
	}
	carts := repository.NewCacheRepository(cache.NewMemoryCache(), "lumina_cart", time.Hour)
	orders := &orderLog{}
	settings := &settingsModel.Settings{WhatsappNumber: "+54 11 7202-3171", Categories: []string{"Poesía"}}

	svc := NewCartService(carts, books, staticSettings{settings}, orders, CheckoutConfig{
		HandoffBaseURL: "https://wa.me",
		CustomerName:   "Bibliófilo via WhatsApp",
		GreetingLine:   "¡Hola Lumina! Quisiera adquirir estas obras:",
	}, effects...).(*CartService)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	svc.newID = func() (uuid.UUID, error) {
		return uuid.MustParse("01900000-0000-7000-8000-000000000001"), nil
	}

	return &fixture{svc: svc, carts: carts, orders: orders, books: books}
}

func TestAddItem_WritesThrough(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, "s1", "b1")
	require.NoError(t, err)
	items, err := f.svc.AddItem(ctx, "s1", "b1")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	stored, err := f.carts.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, stored[0].Quantity)
}

func TestAddItem_Rejects(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, "s1", "b3")
	assert.ErrorIs(t, err, model.ErrOutOfStock)

	_, err = f.svc.AddItem(ctx, "s1", "nope")
	assert.ErrorIs(t, err, bookModel.ErrBookNotFound)

	items, err := f.svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, "s1", "b1")
	require.NoError(t, err)

	items, err := f.svc.RemoveItem(ctx, "s1", "b2")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, err = f.svc.RemoveItem(ctx, "s1", "b1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckout(t *testing.T) {
	var seenURL string
	f := newFixture(effectFunc(func(ctx context.Context, order *orderModel.Order, result *CheckoutResult) error {
		seenURL = result.HandoffURL
		return errors.New("queue down")
	}))
	ctx := context.Background()

	for _, id := range []string{"b1", "b1", "b2"} {
		_, err := f.svc.AddItem(ctx, "s1", id)
		require.NoError(t, err)
	}

	result, err := f.svc.Checkout(ctx, "s1")
	require.NoError(t, err)

	order := result.Order
	assert.Equal(t, "01900000-0000-7000-8000-000000000001", order.ID)
	assert.Equal(t, orderModel.StatusPending, order.Status)
	assert.Equal(t, "Bibliófilo via WhatsApp", order.CustomerName)
	assert.Equal(t, "59.00", order.Total.StringFixed(2))
	require.Len(t, f.orders.orders, 1)

	assert.Contains(t, result.Message, "- El Eco del Silencio (x2)")
	assert.Contains(t, result.Message, "Total: $59.00")

	link, err := url.Parse(result.HandoffURL)
	require.NoError(t, err)
	assert.Equal(t, "/541172023171", link.Path)
	assert.Equal(t, result.Message, link.Query().Get("text"))
	assert.Equal(t, result.HandoffURL, seenURL)

	// failed effect does not keep the cart
	items, err := f.svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckout_SnapshotSurvivesBookEdits(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, "s1", "b1")
	require.NoError(t, err)

	result, err := f.svc.Checkout(ctx, "s1")
	require.NoError(t, err)

	edited := f.books["b1"]
	edited.Title = "Renamed"
	f.books["b1"] = edited

	assert.Equal(t, "El Eco del Silencio", result.Order.Items[0].Book.Title)
	assert.Equal(t, "El Eco del Silencio", f.orders.orders[0].Items[0].Book.Title)
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Checkout(context.Background(), "s1")
	assert.ErrorIs(t, err, model.ErrEmptyCart)
	assert.Empty(t, f.orders.orders)
}

func TestCheckout_StoreFailureKeepsCart(t *testing.T) {
	f := newFixture()
	f.orders.err = errors.New("connection refused")
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, "s1", "b2")
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, "s1")
	require.Error(t, err)

	items, err := f.svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
