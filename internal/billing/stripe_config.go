package billing

import (
	"errors"
	"net/http"
	"strings"
)

// DefaultTimeoutSeconds bounds every gateway call.
const DefaultTimeoutSeconds = 10

// StripeConfig contains configuration for Stripe provider.
type StripeConfig struct {
	// APIKey is the Stripe secret key (sk_test_... or sk_live_...)
	APIKey string

	// WebhookSecret is the webhook signing secret (whsec_...)
	WebhookSecret string

	// Currency is the lower-case ISO code used for every session. Default: usd
	Currency string

	// TimeoutSeconds is the HTTP timeout for Stripe API calls in seconds.
	// Default: 10
	TimeoutSeconds int

	// Transport is the HTTP transport for API calls. Nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// Validate checks that required configuration is present.
func (c *StripeConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("stripe: API key is required")
	}
	if c.WebhookSecret == "" {
		return errors.New("stripe: webhook secret is required")
	}
	return nil
}

// IsTestMode returns true if using test mode API keys.
func (c *StripeConfig) IsTestMode() bool {
	return strings.HasPrefix(c.APIKey, "sk_test_")
}

func (c *StripeConfig) applyDefaults() {
	if c.Currency == "" {
		c.Currency = "usd"
	}
	c.Currency = strings.ToLower(c.Currency)
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}
