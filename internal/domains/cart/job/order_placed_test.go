package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"lumina-storefront/internal/domains/cart/model"
	"lumina-storefront/internal/domains/cart/service"
	orderModel "lumina-storefront/internal/domains/order/model"
	"lumina-storefront/internal/infrastructure/email"
	"lumina-storefront/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQueue struct {
	types    []string
	payloads []interface{}
}

func (f *fakeQueue) EnqueueJSON(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	f.types = append(f.types, taskType)
	f.payloads = append(f.payloads, payload)
	return nil
}

type recordingMailer struct {
	sent []email.EmailRequest
	err  error
}

func (m *recordingMailer) SendEmail(ctx context.Context, req email.EmailRequest) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, req)
	return nil
}

func TestOrderPlacedNotifier_Enqueues(t *testing.T) {
	q := &fakeQueue{}
	order := &orderModel.Order{
		ID:           "o1",
		CustomerName: "Bibliófilo via WhatsApp",
		Total:        decimal.RequireFromString("59"),
	}

	err := NewOrderPlacedNotifier(q).Apply(context.Background(), order, &service.CheckoutResult{
		Order: order, Message: "hola", HandoffURL: "https://wa.me/1?text=hola",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{shared.TypeOrderPlaced}, q.types)
	payload := q.payloads[0].(model.OrderPlacedPayload)
	assert.Equal(t, "o1", payload.OrderID)
	assert.Equal(t, "59.00", payload.Total)
}

func orderPlacedTask(t *testing.T) *asynq.Task {
	data, err := json.Marshal(model.OrderPlacedPayload{
		OrderID: "o1", CustomerName: "Bibliófilo via WhatsApp", ItemCount: 3, Total: "59.00",
		Message: "- Mareas (x1)", HandoffURL: "https://wa.me/1?text=x",
	})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeOrderPlaced, data)
}

func TestOrderPlacedHandler_SendsMail(t *testing.T) {
	mailer := &recordingMailer{}
	h := NewOrderPlacedHandler(mailer, "elena@lumina.test")

	require.NoError(t, h.ProcessTask(context.Background(), orderPlacedTask(t)))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Nuevo pedido: 3 obras, $59.00", mailer.sent[0].Subject)
	assert.Contains(t, mailer.sent[0].Body, "- Mareas (x1)")
}

func TestOrderPlacedHandler_Errors(t *testing.T) {
	h := NewOrderPlacedHandler(&recordingMailer{err: errors.New("smtp down")}, "elena@lumina.test")
	assert.Error(t, h.ProcessTask(context.Background(), orderPlacedTask(t)))

	err := h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeOrderPlaced, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
