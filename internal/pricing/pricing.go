// Package pricing turns cart lines and a discount into order totals.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dukerupert/foodmania/internal/delivery"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/tax"
)

// ErrInvalidLine is returned for a line with a non-positive quantity or a negative price.
var ErrInvalidLine = errors.New("pricing: invalid line")

// Line is one priced cart or order line.
type Line struct {
	UnitPrice money.Cents
	Quantity  int32
}

// Total returns UnitPrice × Quantity.
func (l Line) Total() money.Cents {
	return l.UnitPrice * money.Cents(l.Quantity)
}

// Totals is the price breakdown of an order. Every component is rounded to
// the cent independently and Total is their exact sum, so the amount charged
// by the gateway equals the amount stored on the order.
type Totals struct {
	Subtotal    money.Cents `json:"subtotal"`
	Discount    money.Cents `json:"discountAmount"`
	Tax         money.Cents `json:"tax"`
	DeliveryFee money.Cents `json:"deliveryFee"`
	Total       money.Cents `json:"total"`
}

// Engine computes order totals from a tax calculator and a delivery provider.
type Engine struct {
	tax      tax.Calculator
	delivery delivery.Provider
	currency string
}

// NewEngine creates a pricing engine.
func NewEngine(taxCalc tax.Calculator, deliveryProvider delivery.Provider, currency string) *Engine {
	return &Engine{
		tax:      taxCalc,
		delivery: deliveryProvider,
		currency: currency,
	}
}

// Currency returns the ISO currency code used for every amount.
func (e *Engine) Currency() string {
	return e.currency
}

// Subtotal returns the sum of line totals. A sum that would overflow is
// reported as ErrInvalidLine.
func Subtotal(lines []Line) (money.Cents, error) {
	var subtotal money.Cents
	for i, l := range lines {
		if l.Quantity < 1 || l.UnitPrice < 0 {
			return 0, fmt.Errorf("%w: line %d has quantity %d and price %s", ErrInvalidLine, i, l.Quantity, l.UnitPrice)
		}
		if l.UnitPrice > (math.MaxInt64-subtotal)/money.Cents(l.Quantity) {
			return 0, fmt.Errorf("%w: line %d overflows the subtotal", ErrInvalidLine, i)
		}
		subtotal += l.Total()
	}
	return subtotal, nil
}

// Compute prices lines with an already-validated voucher discount.
//
// Tax is charged on the undiscounted subtotal, delivery is priced on the
// undiscounted subtotal, and the discount is capped at the subtotal. The
// result depends only on the multiset of lines, not their order.
func (e *Engine) Compute(ctx context.Context, lines []Line, discount money.Cents) (Totals, error) {
	subtotal, err := Subtotal(lines)
	if err != nil {
		return Totals{}, err
	}

	discount = money.Min(money.Max(discount, 0), subtotal)

	taxResult, err := e.tax.CalculateTax(ctx, tax.TaxParams{Subtotal: subtotal})
	if err != nil {
		return Totals{}, fmt.Errorf("calculate tax: %w", err)
	}

	rate, err := e.delivery.Quote(ctx, delivery.QuoteParams{Subtotal: subtotal})
	if err != nil {
		return Totals{}, fmt.Errorf("quote delivery: %w", err)
	}

	total := money.Max(subtotal-discount+taxResult.Total+rate.Fee, 0)

	return Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		Tax:         taxResult.Total,
		DeliveryFee: rate.Fee,
		Total:       total,
	}, nil
}
