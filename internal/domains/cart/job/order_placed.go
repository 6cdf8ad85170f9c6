package job

import (
	"context"
	"fmt"
	"time"

	"lumina-storefront/internal/domains/cart/model"
	"lumina-storefront/internal/domains/cart/service"
	orderModel "lumina-storefront/internal/domains/order/model"
	"lumina-storefront/internal/infrastructure/email"
	"lumina-storefront/internal/infrastructure/queue"
	"lumina-storefront/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// OrderPlacedNotifier is a checkout effect that queues the author notification
type OrderPlacedNotifier struct {
	queue queue.Enqueuer
}

func NewOrderPlacedNotifier(q queue.Enqueuer) *OrderPlacedNotifier {
	return &OrderPlacedNotifier{queue: q}
}

func (n *OrderPlacedNotifier) Apply(ctx context.Context, order *orderModel.Order, result *service.CheckoutResult) error {
	payload := model.OrderPlacedPayload{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		ItemCount:    order.ItemCount(),
		Total:        order.Total.StringFixed(2),
		Message:      result.Message,
		HandoffURL:   result.HandoffURL,
	}

	return n.queue.EnqueueJSON(ctx, shared.TypeOrderPlaced, payload,
		asynq.Queue(shared.QueueCritical),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
}

// OrderPlacedHandler mails the author about a new order (worker side)
type OrderPlacedHandler struct {
	mailer      email.EmailService
	authorEmail string
}

func NewOrderPlacedHandler(mailer email.EmailService, authorEmail string) *OrderPlacedHandler {
	return &OrderPlacedHandler{mailer: mailer, authorEmail: authorEmail}
}

func (h *OrderPlacedHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.OrderPlacedPayload
	if err := queue.UnmarshalTask(task, &payload); err != nil {
		return err
	}

	if h.authorEmail == "" {
		log.Debug().Str("order_id", payload.OrderID).Msg("Order notification skipped: no author email configured")
		return nil
	}

	body := fmt.Sprintf(
		"Nuevo pedido %s de %s\n\n%s\n\nEnlace de contacto: %s\n",
		payload.OrderID, payload.CustomerName, payload.Message, payload.HandoffURL,
	)

	err := h.mailer.SendEmail(ctx, email.EmailRequest{
		To:      []string{h.authorEmail},
		Subject: fmt.Sprintf("Nuevo pedido: %d obras, $%s", payload.ItemCount, payload.Total),
		Body:    body,
	})
	if err != nil {
		log.Error().Err(err).Str("order_id", payload.OrderID).Msg("Failed to send order notification")
		return fmt.Errorf("send order notification: %w", err)
	}

	log.Info().Str("order_id", payload.OrderID).Msg("Order notification sent")
	return nil
}
