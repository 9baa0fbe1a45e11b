package tax

import (
	"context"

	"github.com/dukerupert/foodmania/internal/money"
	"github.com/shopspring/decimal"
)

// PercentageCalculator calculates tax using a single flat rate.
type PercentageCalculator struct {
	rate decimal.Decimal
	name string
}

// NewPercentageCalculator creates a percentage-based tax calculator.
// rate is a fraction, e.g. 0.08 for 8%.
func NewPercentageCalculator(rate decimal.Decimal) (*PercentageCalculator, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidRate
	}
	return &PercentageCalculator{rate: rate, name: "Sales Tax"}, nil
}

// Rate returns the configured rate.
func (c *PercentageCalculator) Rate() decimal.Decimal {
	return c.rate
}

// CalculateTax computes subtotal × rate, rounded half-up to the cent once.
func (c *PercentageCalculator) CalculateTax(ctx context.Context, params TaxParams) (*TaxResult, error) {
	if params.Subtotal < 0 {
		return nil, ErrNegativeSubtotal
	}

	amount := money.Cents(
		decimal.NewFromInt(params.Subtotal.Int64()).Mul(c.rate).Round(0).IntPart(),
	)

	return &TaxResult{
		Total: amount,
		Breakdown: []TaxBreakdown{
			{Name: c.name, Rate: c.rate, Amount: amount},
		},
	}, nil
}
