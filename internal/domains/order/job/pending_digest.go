package job

import (
	"context"
	"fmt"
	"strings"

	"lumina-storefront/internal/domains/order/model"
	"lumina-storefront/internal/infrastructure/email"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// PendingLister is the part of the order repository the digest needs
type PendingLister interface {
	ListByStatus(ctx context.Context, status model.Status) ([]model.Order, error)
}

// PendingDigestHandler mails the author a list of orders still pending.
// Triggered by the scheduler, it sends nothing when no order is pending.
type PendingDigestHandler struct {
	orders      PendingLister
	mailer      email.EmailService
	authorEmail string
}

func NewPendingDigestHandler(orders PendingLister, mailer email.EmailService, authorEmail string) *PendingDigestHandler {
	return &PendingDigestHandler{
		orders:      orders,
		mailer:      mailer,
		authorEmail: authorEmail,
	}
}

func (h *PendingDigestHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	if h.authorEmail == "" {
		log.Debug().Msg("Pending digest skipped: no author email configured")
		return nil
	}

	pending, err := h.orders.ListByStatus(ctx, model.StatusPending)
	if err != nil {
		return fmt.Errorf("list pending orders: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	err = h.mailer.SendEmail(ctx, email.EmailRequest{
		To:      []string{h.authorEmail},
		Subject: fmt.Sprintf("%d pedidos pendientes", len(pending)),
		Body:    digestBody(pending),
	})
	if err != nil {
		return fmt.Errorf("send pending digest: %w", err)
	}

	log.Info().Int("pending", len(pending)).Msg("Pending orders digest sent")
	return nil
}

func digestBody(orders []model.Order) string {
	var b strings.Builder
	total := decimal.Zero

	b.WriteString("Pedidos pendientes de confirmar:\n\n")
	for _, o := range orders {
		fmt.Fprintf(&b, "- %s  %s  %d obras  $%s\n",
			o.Date.Format("2006-01-02 15:04"), o.ID, o.ItemCount(), o.Total.StringFixed(2))
		total = total.Add(o.Total)
	}
	fmt.Fprintf(&b, "\nTotal pendiente: $%s\n", total.StringFixed(2))

	return b.String()
}
