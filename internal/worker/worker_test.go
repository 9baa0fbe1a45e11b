package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/email"
)

type mockOrders struct {
	GetFunc func(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

func (m *mockOrders) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return m.GetFunc(ctx, id)
}

type mockMailer struct {
	confirmations []email.OrderConfirmationEmail
	statuses      []email.OrderStatusEmail
	err           error
}

func (m *mockMailer) SendOrderConfirmation(_ context.Context, data email.OrderConfirmationEmail) error {
	m.confirmations = append(m.confirmations, data)
	return m.err
}

func (m *mockMailer) SendOrderStatus(_ context.Context, data email.OrderStatusEmail) error {
	m.statuses = append(m.statuses, data)
	return m.err
}

func newTestWorker(orders OrderReader, mailer Mailer) *Worker {
	return NewWorker(nil, orders, mailer, Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func encode(t *testing.T, ev domain.OrderEvent) []byte {
	t.Helper()
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	return b
}

func TestNewWorker_Defaults(t *testing.T) {
	w := newTestWorker(nil, nil)
	assert.Equal(t, "foodmania.order.>", w.Subject())
	assert.Equal(t, "notifications", w.config.QueueGroup)
	assert.Equal(t, 5, w.config.MaxConcurrency)
	assert.NotEmpty(t, w.config.WorkerID)
}

func TestHandle(t *testing.T) {
	orderID := uuid.New()
	order := func() *domain.Order {
		return &domain.Order{
			ID:       orderID,
			Status:   domain.OrderPreparing,
			Total:    3200,
			Customer: &domain.OrderCustomer{FirstName: "Ada", Email: "ada@example.com"},
		}
	}

	tests := []struct {
		name          string
		event         domain.OrderEvent
		order         *domain.Order
		getErr        error
		mailErr       error
		wantErr       bool
		confirmations int
		statuses      int
	}{
		{
			name:          "order created sends confirmation",
			event:         domain.OrderEvent{Type: domain.EventOrderCreated, OrderID: orderID},
			order:         order(),
			confirmations: 1,
		},
		{
			name:     "status change sends update",
			event:    domain.OrderEvent{Type: domain.EventOrderStatusChanged, OrderID: orderID, Status: domain.OrderOutForDelivery},
			order:    order(),
			statuses: 1,
		},
		{
			name:  "unknown event ignored",
			event: domain.OrderEvent{Type: "order.archived", OrderID: orderID},
		},
		{
			name:   "deleted order skipped",
			event:  domain.OrderEvent{Type: domain.EventOrderCreated, OrderID: orderID},
			getErr: domain.ErrOrderNotFound,
		},
		{
			name:    "load failure",
			event:   domain.OrderEvent{Type: domain.EventOrderCreated, OrderID: orderID},
			getErr:  errors.New("connection reset"),
			wantErr: true,
		},
		{
			name:          "mail failure",
			event:         domain.OrderEvent{Type: domain.EventOrderCreated, OrderID: orderID},
			order:         order(),
			mailErr:       errors.New("smtp down"),
			wantErr:       true,
			confirmations: 1,
		},
		{
			name:  "no customer email",
			event: domain.OrderEvent{Type: domain.EventOrderCreated, OrderID: orderID},
			order: &domain.Order{ID: orderID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &mockOrders{GetFunc: func(_ context.Context, id uuid.UUID) (*domain.Order, error) {
				assert.Equal(t, orderID, id)
				return tt.order, tt.getErr
			}}
			mailer := &mockMailer{err: tt.mailErr}

			err := newTestWorker(orders, mailer).Handle(context.Background(), encode(t, tt.event))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, mailer.confirmations, tt.confirmations)
			assert.Len(t, mailer.statuses, tt.statuses)
		})
	}
}

func TestHandle_StatusFromEvent(t *testing.T) {
	orders := &mockOrders{GetFunc: func(context.Context, uuid.UUID) (*domain.Order, error) {
		return &domain.Order{Status: domain.OrderDelivered, Customer: &domain.OrderCustomer{Email: "a@example.com"}}, nil
	}}
	mailer := &mockMailer{}

	ev := domain.OrderEvent{Type: domain.EventOrderStatusChanged, Status: domain.OrderOutForDelivery}
	require.NoError(t, newTestWorker(orders, mailer).Handle(context.Background(), encode(t, ev)))
	require.Len(t, mailer.statuses, 1)
	assert.Equal(t, domain.OrderOutForDelivery, mailer.statuses[0].Status)
	assert.Equal(t, "a@example.com", mailer.statuses[0].Email)
}

func TestHandle_BadPayload(t *testing.T) {
	err := newTestWorker(&mockOrders{}, &mockMailer{}).Handle(context.Background(), []byte("{"))
	assert.Error(t, err)
}
