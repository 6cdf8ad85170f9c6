package main

import (
	bookJob "lumina-storefront/internal/domains/book/job"
	cartJob "lumina-storefront/internal/domains/cart/job"
	orderJob "lumina-storefront/internal/domains/order/job"
	"lumina-storefront/internal/shared"
	"lumina-storefront/pkg/container"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	orderPlaced   *cartJob.OrderPlacedHandler
	pendingDigest *orderJob.PendingDigestHandler
	deleteCover   *bookJob.DeleteCoverHandler // nil without object storage
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	authorEmail := c.Config.Storefront.AuthorEmail
	if authorEmail == "" {
		log.Warn().Msg("AUTHOR_EMAIL not set, order notifications are skipped")
	}

	registry := &HandlerRegistry{
		orderPlaced:   cartJob.NewOrderPlacedHandler(c.Mailer, authorEmail),
		pendingDigest: orderJob.NewPendingDigestHandler(c.OrderRepo, c.Mailer, authorEmail),
	}

	if c.Storage != nil {
		registry.deleteCover = bookJob.NewDeleteCoverHandler(c.Storage)
	}

	return registry
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Orders
	mux.HandleFunc(shared.TypeOrderPlaced, h.orderPlaced.ProcessTask)
	mux.HandleFunc(shared.TypeOrdersDigest, h.pendingDigest.ProcessTask)

	// Books
	if h.deleteCover != nil {
		mux.HandleFunc(shared.TypeDeleteBookCover, h.deleteCover.ProcessTask)
	}
}
