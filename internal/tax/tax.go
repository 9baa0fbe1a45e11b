// Package tax computes sales tax on order subtotals.
package tax

import (
	"context"

	"github.com/dukerupert/foodmania/internal/money"
	"github.com/shopspring/decimal"
)

// Calculator defines the interface for tax calculation.
// Implementations: PercentageCalculator, NoTaxCalculator, MockCalculator
type Calculator interface {
	// CalculateTax computes tax for the order subtotal.
	CalculateTax(ctx context.Context, params TaxParams) (*TaxResult, error)
}

// TaxParams contains all information needed for tax calculation.
// Tax is charged on the undiscounted food subtotal only; the delivery fee is
// never taxed.
type TaxParams struct {
	Subtotal money.Cents
}

// TaxResult contains the calculated tax amount and breakdown.
type TaxResult struct {
	Total     money.Cents
	Breakdown []TaxBreakdown
}

// TaxBreakdown represents tax for a single jurisdiction.
type TaxBreakdown struct {
	Name   string          // e.g., "Sales Tax"
	Rate   decimal.Decimal // e.g., 0.08 for 8%
	Amount money.Cents
}
