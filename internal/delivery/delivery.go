// Package delivery prices delivery of an order.
package delivery

import (
	"context"

	"github.com/dukerupert/foodmania/internal/money"
)

// Provider defines the interface for delivery pricing.
type Provider interface {
	// Quote returns the delivery charge for an order with the given subtotal.
	Quote(ctx context.Context, params QuoteParams) (*Rate, error)
}

// QuoteParams contains parameters for pricing delivery.
type QuoteParams struct {
	// Subtotal is the undiscounted food subtotal.
	Subtotal money.Cents
}

// Rate is a priced delivery option.
type Rate struct {
	ServiceName string
	Fee         money.Cents
	Free        bool
}
