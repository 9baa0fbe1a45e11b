package billing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAPIKey is returned when the Stripe API key is invalid or missing.
	ErrInvalidAPIKey = errors.New("billing: invalid or missing API key")

	// ErrInvalidWebhookSignature is returned when webhook signature verification fails.
	ErrInvalidWebhookSignature = errors.New("billing: invalid webhook signature")

	// ErrGatewayUnavailable is returned when the gateway times out, is unreachable
	// or rejects the request.
	ErrGatewayUnavailable = errors.New("billing: payment gateway unavailable")

	// ErrNoLineItems is returned when a checkout session has nothing to charge.
	ErrNoLineItems = errors.New("billing: checkout session requires at least one line item")

	// ErrUnsupportedEvent is returned for event payloads the decoder does not understand.
	ErrUnsupportedEvent = errors.New("billing: unsupported event payload")
)

// StripeError wraps a Stripe API error with additional context.
type StripeError struct {
	Message        string // Human-readable error message
	Code           string // Stripe error code (e.g., "parameter_invalid_integer")
	Type           string // Stripe error type (e.g., "invalid_request_error")
	HTTPStatusCode int
	RequestID      string // Stripe request ID for debugging
	OriginalError  error
}

func (e *StripeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("stripe: %s (code: %s)", e.Message, e.Code)
	}
	return fmt.Sprintf("stripe: %s", e.Message)
}

// Unwrap exposes both the gateway sentinel and the SDK error.
func (e *StripeError) Unwrap() []error {
	return []error{ErrGatewayUnavailable, e.OriginalError}
}

// IsTemporary returns true if error is likely transient and retryable.
func (e *StripeError) IsTemporary() bool {
	return e.Type == "api_error" || e.Code == "rate_limit" || e.HTTPStatusCode == 429 || e.HTTPStatusCode >= 500
}
