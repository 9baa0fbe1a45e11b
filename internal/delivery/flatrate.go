package delivery

import (
	"context"

	"github.com/dukerupert/foodmania/internal/money"
)

// FlatRateProvider charges a single flat fee, waived when the subtotal is
// strictly greater than the free-delivery threshold.
type FlatRateProvider struct {
	fee           money.Cents
	freeThreshold money.Cents
}

// NewFlatRateProvider creates a flat-rate delivery provider.
// A threshold of zero or less disables free delivery.
func NewFlatRateProvider(fee, freeThreshold money.Cents) (*FlatRateProvider, error) {
	if fee < 0 {
		return nil, ErrNegativeFee
	}
	return &FlatRateProvider{fee: fee, freeThreshold: freeThreshold}, nil
}

// Quote returns the fee for the given subtotal.
func (p *FlatRateProvider) Quote(ctx context.Context, params QuoteParams) (*Rate, error) {
	if params.Subtotal < 0 {
		return nil, ErrNegativeSubtotal
	}

	if p.freeThreshold > 0 && params.Subtotal > p.freeThreshold {
		return &Rate{ServiceName: "Free Delivery", Fee: 0, Free: true}, nil
	}
	return &Rate{ServiceName: "Standard Delivery", Fee: p.fee}, nil
}

// MockProvider is a test implementation of Provider.
type MockProvider struct {
	QuoteFunc func(ctx context.Context, params QuoteParams) (*Rate, error)
}

// Quote delegates to the configured function or returns a free rate.
func (m *MockProvider) Quote(ctx context.Context, params QuoteParams) (*Rate, error) {
	if m.QuoteFunc != nil {
		return m.QuoteFunc(ctx, params)
	}
	return &Rate{ServiceName: "Mock Delivery", Free: true}, nil
}

var (
	_ Provider = (*FlatRateProvider)(nil)
	_ Provider = (*MockProvider)(nil)
)
