package pricing_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/dukerupert/foodmania/internal/delivery"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/pricing"
	"github.com/dukerupert/foodmania/internal/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *pricing.Engine {
	t.Helper()

	taxCalc, err := tax.NewPercentageCalculator(decimal.RequireFromString("0.08"))
	require.NoError(t, err)
	deliveryProvider, err := delivery.NewFlatRateProvider(500, 5000)
	require.NoError(t, err)

	return pricing.NewEngine(taxCalc, deliveryProvider, "usd")
}

func TestEngine_Compute_NoVoucher(t *testing.T) {
	engine := newEngine(t)

	// A: 2 × 10.00, B: 1 × 5.00
	lines := []pricing.Line{
		{UnitPrice: 1000, Quantity: 2},
		{UnitPrice: 500, Quantity: 1},
	}

	totals, err := engine.Compute(context.Background(), lines, 0)

	require.NoError(t, err)
	assert.Equal(t, pricing.Totals{
		Subtotal:    2500,
		Discount:    0,
		Tax:         200,
		DeliveryFee: 500,
		Total:       3200,
	}, totals)
}

func TestEngine_Compute_PercentageVoucher(t *testing.T) {
	engine := newEngine(t)

	lines := []pricing.Line{
		{UnitPrice: 1000, Quantity: 2},
		{UnitPrice: 500, Quantity: 1},
	}

	// 15% of 25.00
	totals, err := engine.Compute(context.Background(), lines, 375)

	require.NoError(t, err)
	assert.Equal(t, money.Cents(375), totals.Discount)
	assert.Equal(t, money.Cents(2825), totals.Total, "25.00 - 3.75 + 2.00 + 5.00")
}

func TestEngine_Compute_FreeDelivery(t *testing.T) {
	engine := newEngine(t)

	totals, err := engine.Compute(context.Background(), []pricing.Line{{UnitPrice: 5001, Quantity: 1}}, 0)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(0), totals.DeliveryFee)

	totals, err = engine.Compute(context.Background(), []pricing.Line{{UnitPrice: 5000, Quantity: 1}}, 0)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(500), totals.DeliveryFee, "threshold is exclusive")
}

func TestEngine_Compute_DiscountCappedAtSubtotal(t *testing.T) {
	engine := newEngine(t)

	totals, err := engine.Compute(context.Background(), []pricing.Line{{UnitPrice: 800, Quantity: 1}}, 2000)

	require.NoError(t, err)
	assert.Equal(t, money.Cents(800), totals.Discount)
	assert.Equal(t, money.Cents(64+500), totals.Total)
	assert.GreaterOrEqual(t, totals.Total, money.Cents(0))
}

func TestEngine_Compute_TotalIsSumOfComponents(t *testing.T) {
	engine := newEngine(t)

	lines := []pricing.Line{
		{UnitPrice: 1299, Quantity: 3},
		{UnitPrice: 349, Quantity: 7},
	}

	totals, err := engine.Compute(context.Background(), lines, 611)

	require.NoError(t, err)
	assert.Equal(t, totals.Subtotal-totals.Discount+totals.Tax+totals.DeliveryFee, totals.Total)
}

func TestEngine_Compute_OrderIndependent(t *testing.T) {
	engine := newEngine(t)

	a := []pricing.Line{
		{UnitPrice: 1000, Quantity: 2},
		{UnitPrice: 499, Quantity: 3},
		{UnitPrice: 1, Quantity: 1},
	}
	b := []pricing.Line{a[2], a[0], a[1]}

	first, err := engine.Compute(context.Background(), a, 250)
	require.NoError(t, err)
	second, err := engine.Compute(context.Background(), b, 250)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	again, err := engine.Compute(context.Background(), a, 250)
	require.NoError(t, err)
	assert.Equal(t, first, again, "compute must be deterministic")
}

func TestEngine_Compute_EmptyCart(t *testing.T) {
	engine := newEngine(t)

	totals, err := engine.Compute(context.Background(), nil, 0)

	require.NoError(t, err)
	assert.Equal(t, money.Cents(0), totals.Subtotal)
	assert.Equal(t, money.Cents(500), totals.Total)
}

func TestEngine_Compute_InvalidLine(t *testing.T) {
	engine := newEngine(t)

	_, err := engine.Compute(context.Background(), []pricing.Line{{UnitPrice: 100, Quantity: 0}}, 0)
	assert.ErrorIs(t, err, pricing.ErrInvalidLine)
}

func TestSubtotal_Overflow(t *testing.T) {
	_, err := pricing.Subtotal([]pricing.Line{
		{UnitPrice: math.MaxInt64 / 2, Quantity: 1},
		{UnitPrice: math.MaxInt64 / 4, Quantity: 3},
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidLine)
}

func TestEngine_Compute_TaxFailure(t *testing.T) {
	boom := errors.New("tax service down")
	engine := pricing.NewEngine(
		&tax.MockCalculator{CalculateTaxFunc: func(ctx context.Context, p tax.TaxParams) (*tax.TaxResult, error) {
			return nil, boom
		}},
		&delivery.MockProvider{},
		"usd",
	)

	_, err := engine.Compute(context.Background(), []pricing.Line{{UnitPrice: 100, Quantity: 1}}, 0)
	assert.ErrorIs(t, err, boom)
}
