// Package voucher validates discount codes and computes their discount.
package voucher

import (
	"strings"
	"time"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/shopspring/decimal"
)

var basisPoints = decimal.NewFromInt(10000)

// NormalizeCode returns the canonical form of a voucher code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate checks v against an order amount at time now and returns the
// discount it grants. Checks run in order and stop at the first failure:
// existence, active flag, expiry, usage limit, minimum order amount.
// v is never modified.
func Validate(v *domain.Voucher, orderAmount money.Cents, now time.Time) (money.Cents, error) {
	const op = "voucher.validate"

	if v == nil {
		return 0, domain.WithOp(domain.ErrVoucherNotFound, op)
	}
	if !v.IsActive {
		return 0, domain.WithOp(domain.ErrVoucherInactive, op)
	}
	if v.ExpiresAt != nil && !v.ExpiresAt.After(now) {
		return 0, domain.WithOp(domain.ErrVoucherExpired, op)
	}
	if v.UsageLimit != nil && v.UsedCount >= *v.UsageLimit {
		return 0, domain.WithOp(domain.ErrVoucherLimitReached, op)
	}
	if orderAmount < v.MinOrderAmount {
		return 0, domain.BelowMinimum(op, v.MinOrderAmount)
	}

	return Discount(v, orderAmount), nil
}

// Discount computes the discount v grants on orderAmount without checking
// eligibility. Percentage discounts round half-up and respect MaxDiscount;
// fixed discounts never exceed the order amount.
func Discount(v *domain.Voucher, orderAmount money.Cents) money.Cents {
	if orderAmount <= 0 {
		return 0
	}

	var discount money.Cents
	switch v.DiscountType {
	case domain.DiscountPercentage:
		discount = money.Cents(
			decimal.NewFromInt(orderAmount.Int64()).
				Mul(decimal.NewFromInt(v.DiscountValue.Int64())).
				Div(basisPoints).
				Round(0).
				IntPart(),
		)
		if v.MaxDiscount != nil {
			discount = money.Min(discount, *v.MaxDiscount)
		}
	case domain.DiscountFixedAmount:
		discount = v.DiscountValue
	}

	return money.Min(money.Max(discount, 0), orderAmount)
}
