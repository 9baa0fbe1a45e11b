package webhook

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dukerupert/foodmania/internal/billing"
	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCheckout creates one order per session id, like the unique
// payment_id constraint does.
type fakeCheckout struct {
	domain.CheckoutService
	mu     sync.Mutex
	orders map[string]*domain.Order
	err    error

	// noSnapshot answers like a session this server never stored.
	noSnapshot bool
}

func (f *fakeCheckout) ConfirmSession(ctx context.Context, sessionID string) (*domain.Order, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	if f.noSnapshot {
		return nil, false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.orders[sessionID]; ok {
		return o, false, nil
	}
	o := &domain.Order{ID: uuid.New(), PaymentID: sessionID, Total: 3200}
	f.orders[sessionID] = o
	return o, true, nil
}

// fakeOrders records payment updates and applies them to byRef, keyed by
// payment reference like the payment_id column.
type fakeOrders struct {
	domain.OrderService
	paid   []string
	failed []string
	byRef  map[string]*domain.Order
}

func (f *fakeOrders) MarkPaid(ctx context.Context, ref string) (bool, error) {
	f.paid = append(f.paid, ref)
	return f.settle(ref, domain.PaymentCompleted), nil
}

func (f *fakeOrders) MarkPaymentFailed(ctx context.Context, ref string) (bool, error) {
	f.failed = append(f.failed, ref)
	return f.settle(ref, domain.PaymentFailed), nil
}

func (f *fakeOrders) settle(ref string, status domain.PaymentStatus) bool {
	o, ok := f.byRef[ref]
	if !ok {
		return false
	}
	o.PaymentStatus = status
	return true
}

func newTestHandler() (*StripeHandler, *fakeCheckout, *fakeOrders) {
	checkout := &fakeCheckout{orders: map[string]*domain.Order{}}
	orders := &fakeOrders{byRef: map[string]*domain.Order{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStripeHandler(billing.NewMockProvider(), checkout, orders, logger), checkout, orders
}

const sessionCompleted = `{
  "id": "evt_1",
  "object": "event",
  "type": "checkout.session.completed",
  "data": {"object": {"id": "cs_test_abc", "object": "checkout.session", "payment_status": "paid", "amount_total": 3200}}
}`

func post(h *StripeHandler, body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhook", strings.NewReader(body))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	rec := httptest.NewRecorder()
	h.HandleWebhook(rec, req)
	return rec
}

func TestHandleWebhook_CheckoutCompleted(t *testing.T) {
	h, checkout, _ := newTestHandler()

	rec := post(h, sessionCompleted, billing.MockSignature)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	assert.Len(t, checkout.orders, 1)
	assert.Contains(t, checkout.orders, "cs_test_abc")
}

func TestHandleWebhook_RedeliveryCreatesOneOrder(t *testing.T) {
	h, checkout, _ := newTestHandler()

	for i := 0; i < 3; i++ {
		rec := post(h, sessionCompleted, billing.MockSignature)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Len(t, checkout.orders, 1)
}

func TestHandleWebhook_SignatureFailures(t *testing.T) {
	tests := []struct {
		name      string
		signature string
	}{
		{"missing signature", ""},
		{"bad signature", "t=1,v1=deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, checkout, _ := newTestHandler()

			rec := post(h, sessionCompleted, tt.signature)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, checkout.orders, "no order may be written before verification")
		})
	}
}

func TestHandleWebhook_PayloadTooLarge(t *testing.T) {
	h, _, _ := newTestHandler()

	body := bytes.Repeat([]byte("a"), MaxPayloadSize+10)
	rec := post(h, string(body), billing.MockSignature)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestHandleWebhook_PaymentIntents(t *testing.T) {
	h, _, orders := newTestHandler()

	rec := post(h, `{"id":"evt_2","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123","object":"payment_intent","status":"succeeded","amount":3200}}}`, billing.MockSignature)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"pi_123"}, orders.paid)

	rec = post(h, `{"id":"evt_3","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_456","object":"payment_intent","status":"requires_payment_method"}}}`, billing.MockSignature)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"pi_456"}, orders.failed)
}

func TestHandleWebhook_PaymentIntentSettlesPlacedOrder(t *testing.T) {
	tests := []struct {
		name string
		body string
		want domain.PaymentStatus
	}{
		{
			name: "succeeded",
			body: `{"id":"evt_5","type":"payment_intent.succeeded","data":{"object":{"id":"pi_placed","object":"payment_intent","status":"succeeded","amount":3200}}}`,
			want: domain.PaymentCompleted,
		},
		{
			name: "failed",
			body: `{"id":"evt_6","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_placed","object":"payment_intent","status":"requires_payment_method"}}}`,
			want: domain.PaymentFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, orders := newTestHandler()
			placed := &domain.Order{ID: uuid.New(), PaymentID: "pi_placed", PaymentStatus: domain.PaymentPending}
			orders.byRef[placed.PaymentID] = placed

			rec := post(h, tt.body, billing.MockSignature)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, placed.PaymentStatus)
		})
	}
}

func TestHandleWebhook_CheckoutCompletedWithoutSnapshot(t *testing.T) {
	h, checkout, _ := newTestHandler()
	checkout.noSnapshot = true

	rec := post(h, sessionCompleted, billing.MockSignature)

	assert.Equal(t, http.StatusOK, rec.Code, "unknown sessions are acknowledged so the gateway stops redelivering")
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	assert.Empty(t, checkout.orders)
}

func TestHandleWebhook_UnhandledEventAcknowledged(t *testing.T) {
	h, checkout, orders := newTestHandler()

	rec := post(h, `{"id":"evt_4","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`, billing.MockSignature)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, checkout.orders)
	assert.Empty(t, orders.paid)
}

func TestHandleWebhook_ProcessingErrorIsRetried(t *testing.T) {
	h, checkout, _ := newTestHandler()
	checkout.err = domain.Internal(errors.New("connection reset"), "checkout.confirm", "failed to create order")

	rec := post(h, sessionCompleted, billing.MockSignature)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
