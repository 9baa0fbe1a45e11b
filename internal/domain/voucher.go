package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/dukerupert/foodmania/internal/money"
	"github.com/google/uuid"
)

// DiscountType selects how a voucher's value is applied.
type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountPercentage || t == DiscountFixedAmount
}

// Voucher-related domain errors.
var (
	ErrVoucherNotFound     = &Error{Code: ENOTFOUND, Message: "Invalid voucher code"}
	ErrVoucherInactive     = &Error{Code: EINVALID, Message: "Voucher is not active"}
	ErrVoucherExpired      = &Error{Code: EINVALID, Message: "Voucher has expired"}
	ErrVoucherLimitReached = &Error{Code: EINVALID, Message: "Voucher usage limit reached"}
	ErrVoucherExists       = &Error{Code: ECONFLICT, Message: "Voucher code already exists"}
	ErrVoucherInUse        = &Error{Code: EINVALID, Message: "Cannot delete voucher that has been used in orders. Consider deactivating it instead."}
	ErrPercentageTooHigh   = &Error{Code: EINVALID, Message: "Percentage discount cannot exceed 100%"}
)

// BelowMinimum is returned when an order does not reach a voucher's minimum amount.
func BelowMinimum(op string, minimum money.Cents) error {
	return &Error{
		Code:    EINVALID,
		Op:      op,
		Message: fmt.Sprintf("Minimum order amount of $%s required", minimum),
	}
}

// Voucher is a discount code.
//
// DiscountValue is stored in hundredths: basis points for PERCENTAGE (1500 is
// 15%) and cents for FIXED_AMOUNT. Both render as two-decimal numbers.
type Voucher struct {
	ID             uuid.UUID    `json:"id"`
	Code           string       `json:"code"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	DiscountType   DiscountType `json:"discountType"`
	DiscountValue  money.Cents  `json:"discountValue"`
	MinOrderAmount money.Cents  `json:"minOrderAmount"`
	MaxDiscount    *money.Cents `json:"maxDiscount"`
	UsageLimit     *int32       `json:"usageLimit"`
	UsedCount      int32        `json:"usedCount"`
	IsActive       bool         `json:"isActive"`
	ExpiresAt      *time.Time   `json:"expiresAt"`
	OrderCount     int64        `json:"orderCount"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// VoucherSummary identifies the voucher applied to a quote.
type VoucherSummary struct {
	ID           uuid.UUID    `json:"id"`
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	DiscountType DiscountType `json:"discountType"`
}

// VoucherValidation is the result of validating a code against an amount.
type VoucherValidation struct {
	Voucher        VoucherSummary `json:"voucher"`
	DiscountAmount money.Cents    `json:"discountAmount"`
	FinalAmount    money.Cents    `json:"finalAmount"`
}

// VoucherInput contains the fields for creating a voucher.
type VoucherInput struct {
	Code           string       `json:"code" validate:"required,min=3,max=50,alphanumunicode"`
	Name           string       `json:"name" validate:"required,max=200"`
	Description    string       `json:"description" validate:"omitempty,max=1000"`
	DiscountType   DiscountType `json:"discountType" validate:"required,oneof=PERCENTAGE FIXED_AMOUNT"`
	DiscountValue  money.Cents  `json:"discountValue" validate:"gt=0"`
	MinOrderAmount money.Cents  `json:"minOrderAmount" validate:"gte=0"`
	MaxDiscount    *money.Cents `json:"maxDiscount" validate:"omitempty,gt=0"`
	UsageLimit     *int32       `json:"usageLimit" validate:"omitempty,gt=0"`
	IsActive       *bool        `json:"isActive"`
	ExpiresAt      *time.Time   `json:"expiresAt"`
}

// VoucherUpdate contains optional fields for a partial voucher update.
type VoucherUpdate struct {
	Name           *string      `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string      `json:"description" validate:"omitempty,max=1000"`
	DiscountValue  *money.Cents `json:"discountValue" validate:"omitempty,gt=0"`
	MinOrderAmount *money.Cents `json:"minOrderAmount" validate:"omitempty,gte=0"`
	MaxDiscount    *money.Cents `json:"maxDiscount" validate:"omitempty,gt=0"`
	UsageLimit     *int32       `json:"usageLimit" validate:"omitempty,gt=0"`
	IsActive       *bool        `json:"isActive"`
	ExpiresAt      *time.Time   `json:"expiresAt"`
}

// Voucher listing status filters.
const (
	VoucherStatusActive  = "active"
	VoucherStatusExpired = "expired"
)

// VoucherListParams filters the admin voucher listing.
type VoucherListParams struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// VoucherService provides voucher lookup, validation and administration.
type VoucherService interface {
	// Validate looks up a code and checks it against an order amount.
	// It has no side effects; redemption happens during checkout.
	Validate(ctx context.Context, code string, orderAmount money.Cents) (*VoucherValidation, error)

	List(ctx context.Context, params VoucherListParams) (*Page[Voucher], error)
	Get(ctx context.Context, id uuid.UUID) (*Voucher, error)
	Create(ctx context.Context, in VoucherInput) (*Voucher, error)
	Update(ctx context.Context, id uuid.UUID, in VoucherUpdate) (*Voucher, error)

	// Delete refuses with ErrVoucherInUse when an order references the voucher.
	Delete(ctx context.Context, id uuid.UUID) error
}
