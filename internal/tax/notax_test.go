package tax_test

import (
	"context"
	"testing"

	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/tax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoTaxCalculator_CalculateTax_ReturnsZeroTax(t *testing.T) {
	calc := tax.NewNoTaxCalculator()

	result, err := calc.CalculateTax(context.Background(), tax.TaxParams{Subtotal: 5800})

	require.NoError(t, err)
	assert.Equal(t, money.Cents(0), result.Total)
	assert.Empty(t, result.Breakdown)
}

func TestNoTaxCalculator_CalculateTax_NegativeSubtotal(t *testing.T) {
	_, err := tax.NewNoTaxCalculator().CalculateTax(context.Background(), tax.TaxParams{Subtotal: -1})

	assert.ErrorIs(t, err, tax.ErrNegativeSubtotal)
}
