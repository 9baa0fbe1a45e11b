package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
)

// MockSignature is the only signature the mock provider accepts by default.
const MockSignature = "mock-signature"

// MockProvider is a mock billing provider for testing.
// Simulates hosted checkout without calling the Stripe API.
type MockProvider struct {
	// CreateCheckoutSessionFunc allows customizing session creation behavior
	CreateCheckoutSessionFunc func(ctx context.Context, params CreateCheckoutSessionParams) (*CheckoutSession, error)

	// VerifyWebhookFunc allows customizing webhook verification behavior
	VerifyWebhookFunc func(payload []byte, signature string) (*WebhookEvent, error)

	// Sessions stores created sessions keyed by idempotency key (or ID when none was given).
	Sessions map[string]*CheckoutSession

	// Params records the params of every created session, in order.
	Params []CreateCheckoutSessionParams

	// CallLog tracks method calls for test assertions
	CallLog []string

	mu sync.Mutex
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates a new mock billing provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Sessions: make(map[string]*CheckoutSession),
		CallLog:  []string{},
	}
}

// CreateCheckoutSession creates a mock session. Repeated idempotency keys
// return the first session.
func (m *MockProvider) CreateCheckoutSession(ctx context.Context, params CreateCheckoutSessionParams) (*CheckoutSession, error) {
	m.mu.Lock()
	m.CallLog = append(m.CallLog, fmt.Sprintf("CreateCheckoutSession(%d items, %s)", len(params.LineItems), params.Currency))
	m.Params = append(m.Params, params)
	m.mu.Unlock()

	if m.CreateCheckoutSessionFunc != nil {
		return m.CreateCheckoutSessionFunc(ctx, params)
	}
	if len(params.LineItems) == 0 {
		return nil, ErrNoLineItems
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.Sessions[params.IdempotencyKey]; ok && params.IdempotencyKey != "" {
		return s, nil
	}

	var total int64
	for _, li := range params.LineItems {
		total += li.UnitAmount * li.Quantity
	}
	total -= params.DiscountAmount
	if total < 0 {
		total = 0
	}

	id := "cs_test_" + uuid.New().String()
	s := &CheckoutSession{
		ID:          id,
		URL:         "https://checkout.stripe.test/pay/" + id,
		AmountTotal: total,
		Currency:    params.Currency,
		ExpiresAt:   time.Now().Add(24 * time.Hour),
	}
	key := params.IdempotencyKey
	if key == "" {
		key = id
	}
	m.Sessions[key] = s
	return s, nil
}

// VerifyWebhook accepts MockSignature and decodes the payload as a Stripe event.
func (m *MockProvider) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	m.mu.Lock()
	m.CallLog = append(m.CallLog, "VerifyWebhook")
	m.mu.Unlock()

	if m.VerifyWebhookFunc != nil {
		return m.VerifyWebhookFunc(payload, signature)
	}
	if signature != MockSignature {
		return nil, ErrInvalidWebhookSignature
	}

	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedEvent, err)
	}
	return decodeEvent(event)
}
