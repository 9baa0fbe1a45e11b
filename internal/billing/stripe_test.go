package billing

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newTestProvider(t *testing.T) *StripeProvider {
	t.Helper()
	p, err := NewStripeProvider(StripeConfig{APIKey: "sk_test_123", WebhookSecret: testWebhookSecret})
	require.NoError(t, err)
	return p
}

func signedHeader(payload []byte, secret string) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	}).Header
}

func TestStripeConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  StripeConfig
		wantErr bool
	}{
		{"valid config", StripeConfig{APIKey: "sk_test_123", WebhookSecret: "whsec_123"}, false},
		{"missing API key", StripeConfig{WebhookSecret: "whsec_123"}, true},
		{"missing webhook secret", StripeConfig{APIKey: "sk_test_123"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStripeConfig_Defaults(t *testing.T) {
	c := StripeConfig{APIKey: "sk_live_abc", WebhookSecret: "whsec", Currency: "USD"}
	c.applyDefaults()

	assert.Equal(t, "usd", c.Currency)
	assert.Equal(t, DefaultTimeoutSeconds, c.TimeoutSeconds)
	assert.False(t, c.IsTestMode())
}

func TestNewStripeProvider_InvalidConfig(t *testing.T) {
	_, err := NewStripeProvider(StripeConfig{})
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestStripeProvider_CreateCheckoutSession_NoItems(t *testing.T) {
	p := newTestProvider(t)
	_, err := p.CreateCheckoutSession(context.Background(), CreateCheckoutSessionParams{})
	assert.ErrorIs(t, err, ErrNoLineItems)
}

func TestStripeProvider_VerifyWebhook(t *testing.T) {
	p := newTestProvider(t)

	completed := []byte(`{
		"id": "evt_1",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_test_abc",
			"object": "checkout.session",
			"payment_status": "paid",
			"payment_intent": "pi_123",
			"amount_total": 3200,
			"metadata": {"userId": "u1"}
		}}
	}`)

	tests := []struct {
		name      string
		payload   []byte
		signature string
		wantErr   error
		check     func(t *testing.T, e *WebhookEvent)
	}{
		{
			name:      "valid checkout.session.completed",
			payload:   completed,
			signature: signedHeader(completed, testWebhookSecret),
			check: func(t *testing.T, e *WebhookEvent) {
				assert.Equal(t, "evt_1", e.ID)
				assert.Equal(t, EventCheckoutSessionCompleted, e.Type)
				assert.Equal(t, "cs_test_abc", e.SessionID)
				assert.Equal(t, "pi_123", e.PaymentIntentID)
				assert.Equal(t, "paid", e.PaymentStatus)
				assert.Equal(t, int64(3200), e.AmountTotal)
				assert.Equal(t, "u1", e.Metadata["userId"])
				assert.Equal(t, "cs_test_abc", e.PaymentReference())
			},
		},
		{
			name:      "wrong secret",
			payload:   completed,
			signature: signedHeader(completed, "whsec_other"),
			wantErr:   ErrInvalidWebhookSignature,
		},
		{
			name:      "missing signature",
			payload:   completed,
			signature: "",
			wantErr:   ErrInvalidWebhookSignature,
		},
		{
			name:      "tampered payload",
			payload:   append([]byte(" "), completed...),
			signature: signedHeader(completed, testWebhookSecret),
			wantErr:   ErrInvalidWebhookSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := p.VerifyWebhook(tt.payload, tt.signature)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, e)
		})
	}
}

func TestDecodeEvent_PaymentIntent(t *testing.T) {
	m := NewMockProvider()
	payload := []byte(`{
		"id": "evt_2",
		"type": "payment_intent.payment_failed",
		"data": {"object": {"id": "pi_999", "object": "payment_intent", "status": "requires_payment_method", "amount": 1500}}
	}`)

	e, err := m.VerifyWebhook(payload, MockSignature)
	require.NoError(t, err)
	assert.Equal(t, EventPaymentIntentFailed, e.Type)
	assert.Equal(t, "pi_999", e.PaymentIntentID)
	assert.Empty(t, e.SessionID)
	assert.Equal(t, "pi_999", e.PaymentReference())
	assert.Equal(t, int64(1500), e.AmountTotal)
}

func TestDecodeEvent_UnknownType(t *testing.T) {
	m := NewMockProvider()
	e, err := m.VerifyWebhook([]byte(`{"id":"evt_3","type":"customer.created","data":{"object":{"id":"cus_1"}}}`), MockSignature)
	require.NoError(t, err)
	assert.Equal(t, "customer.created", e.Type)
	assert.Empty(t, e.SessionID)
	assert.Empty(t, e.PaymentIntentID)
}

func TestMockProvider_CreateCheckoutSession(t *testing.T) {
	m := NewMockProvider()
	params := CreateCheckoutSessionParams{
		Currency: "usd",
		LineItems: []LineItem{
			{Name: "Pad Thai", UnitAmount: 1250, Quantity: 2},
			{Name: "Tax", UnitAmount: 200, Quantity: 1},
		},
		DiscountAmount: 500,
		IdempotencyKey: "checkout-1",
	}

	first, err := m.CreateCheckoutSession(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(2200), first.AmountTotal)
	assert.Contains(t, first.URL, first.ID)

	second, err := m.CreateCheckoutSession(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same idempotency key returns the same session")
	assert.Len(t, m.CallLog, 2)
	assert.Len(t, m.Params, 2)
}

func TestMockProvider_RejectsBadSignature(t *testing.T) {
	m := NewMockProvider()
	_, err := m.VerifyWebhook([]byte(`{}`), "nope")
	assert.ErrorIs(t, err, ErrInvalidWebhookSignature)
}

func TestMapStripeError(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		err := mapStripeError(&stripe.Error{
			Msg:            "Invalid integer",
			Code:           stripe.ErrorCodeParameterInvalidInteger,
			Type:           stripe.ErrorTypeInvalidRequest,
			HTTPStatusCode: 400,
			RequestID:      "req_1",
		})

		var se *StripeError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "req_1", se.RequestID)
		assert.False(t, se.IsTemporary())
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	})

	t.Run("server error is temporary", func(t *testing.T) {
		err := mapStripeError(&stripe.Error{Msg: "boom", Type: stripe.ErrorTypeAPI, HTTPStatusCode: 500})
		var se *StripeError
		require.True(t, errors.As(err, &se))
		assert.True(t, se.IsTemporary())
	})

	t.Run("network error", func(t *testing.T) {
		err := mapStripeError(&url.Error{Op: "Post", URL: "https://api.stripe.com", Err: context.DeadlineExceeded})
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	})
}
