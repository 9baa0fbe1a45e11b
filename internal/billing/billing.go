// Package billing wraps the hosted payment gateway used at checkout.
package billing

import (
	"context"
	"time"
)

// Webhook event types handled by the payment webhook.
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
	EventCheckoutSessionExpired   = "checkout.session.expired"
	EventPaymentIntentSucceeded   = "payment_intent.succeeded"
	EventPaymentIntentFailed      = "payment_intent.payment_failed"
)

// Provider is the interface the checkout flow uses to talk to a payment gateway.
// Amounts are always integer minor units.
type Provider interface {
	// CreateCheckoutSession opens a hosted payment page for the given lines.
	// The same IdempotencyKey must return the same session.
	CreateCheckoutSession(ctx context.Context, params CreateCheckoutSessionParams) (*CheckoutSession, error)

	// VerifyWebhook checks the signature header against the raw body and
	// decodes the event. Returns ErrInvalidWebhookSignature on mismatch.
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// LineItem is one row shown on the hosted payment page.
type LineItem struct {
	Name        string
	Description string
	ImageURL    string
	UnitAmount  int64
	Quantity    int64
}

// CreateCheckoutSessionParams describes a hosted checkout.
type CreateCheckoutSessionParams struct {
	Currency      string
	CustomerEmail string

	// LineItems are the dishes, plus tax and delivery rows when non-zero.
	LineItems []LineItem

	// DiscountAmount is applied as a one-off fixed amount coupon.
	DiscountAmount int64
	DiscountName   string

	SuccessURL string
	CancelURL  string

	// ClientReferenceID is echoed back on the completed session.
	ClientReferenceID string
	Metadata          map[string]string

	IdempotencyKey string
}

// CheckoutSession is the gateway's view of a created hosted checkout.
type CheckoutSession struct {
	ID          string
	URL         string
	AmountTotal int64
	Currency    string
	ExpiresAt   time.Time
}

// WebhookEvent is a verified, decoded gateway event.
type WebhookEvent struct {
	ID   string
	Type string

	// SessionID is set for checkout.session.* events.
	SessionID string

	// PaymentIntentID is the payment reference. For checkout sessions it is
	// the session's payment intent when the gateway includes one.
	PaymentIntentID string

	// PaymentStatus is the gateway's payment status for the object ("paid", "unpaid", ...).
	PaymentStatus string

	AmountTotal int64
	Metadata    map[string]string
}

// PaymentReference returns the identifier stored on orders for this event.
// Orders created from checkout sessions are keyed by session ID.
func (e *WebhookEvent) PaymentReference() string {
	if e.SessionID != "" {
		return e.SessionID
	}
	return e.PaymentIntentID
}
