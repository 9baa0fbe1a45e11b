package tax_test

import (
	"context"
	"testing"

	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PercentageCalculator_Example(t *testing.T) {
	calc, err := tax.NewPercentageCalculator(decimal.RequireFromString("0.08"))
	require.NoError(t, err)

	result, err := calc.CalculateTax(context.Background(), tax.TaxParams{Subtotal: 2500})

	require.NoError(t, err)
	assert.Equal(t, money.Cents(200), result.Total, "2500 * 0.08 = 200 cents")
	require.Len(t, result.Breakdown, 1)
	assert.Equal(t, "Sales Tax", result.Breakdown[0].Name)
	assert.True(t, result.Breakdown[0].Rate.Equal(decimal.RequireFromString("0.08")))
	assert.Equal(t, money.Cents(200), result.Breakdown[0].Amount)
}

func Test_PercentageCalculator_Rounding(t *testing.T) {
	tests := []struct {
		name     string
		rate     string
		subtotal money.Cents
		want     money.Cents
	}{
		{"zero rate", "0", 10000, 0},
		{"exact", "0.08", 5000, 400},
		{"below half rounds down", "0.08", 1231, 98}, // 98.48
		{"above half rounds up", "0.08", 1244, 100},  // 99.52
		{"exact half rounds up", "0.10", 1235, 124},  // 123.5
		{"one cent subtotal", "0.08", 1, 0},
		{"full rate", "1", 999, 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := tax.NewPercentageCalculator(decimal.RequireFromString(tt.rate))
			require.NoError(t, err)

			result, err := calc.CalculateTax(context.Background(), tax.TaxParams{Subtotal: tt.subtotal})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Total)
		})
	}
}

func Test_PercentageCalculator_InvalidRate(t *testing.T) {
	_, err := tax.NewPercentageCalculator(decimal.RequireFromString("-0.01"))
	assert.ErrorIs(t, err, tax.ErrInvalidRate)

	_, err = tax.NewPercentageCalculator(decimal.RequireFromString("1.5"))
	assert.ErrorIs(t, err, tax.ErrInvalidRate)
}

func Test_PercentageCalculator_NegativeSubtotal(t *testing.T) {
	calc, err := tax.NewPercentageCalculator(decimal.RequireFromString("0.08"))
	require.NoError(t, err)

	_, err = calc.CalculateTax(context.Background(), tax.TaxParams{Subtotal: -1})
	assert.ErrorIs(t, err, tax.ErrNegativeSubtotal)
}
