package tax

import "context"

// NoTaxCalculator charges nothing. It is selected when TAX_RATE is 0 and
// still rejects a negative subtotal like the real calculators.
type NoTaxCalculator struct{}

func NewNoTaxCalculator() *NoTaxCalculator { return &NoTaxCalculator{} }

func (NoTaxCalculator) CalculateTax(_ context.Context, params TaxParams) (*TaxResult, error) {
	if params.Subtotal < 0 {
		return nil, ErrNegativeSubtotal
	}
	return &TaxResult{}, nil
}
