package domain

import (
	"context"

	"github.com/dukerupert/foodmania/internal/pricing"
	"github.com/google/uuid"
)

// Checkout-related domain errors.
var (
	ErrAddressRequired      = &Error{Code: EINVALID, Message: "Delivery address is required"}
	ErrDemoCheckoutDisabled = &Error{Code: EFORBIDDEN, Message: "Demo checkout is disabled"}
	ErrPaymentIDRequired    = &Error{Code: EINVALID, Message: "Payment ID is required"}
	ErrPaymentIDReserved    = &Error{Code: EINVALID, Message: "Payment ID is not a payment intent reference"}
	ErrPaymentIDInUse       = &Error{Code: ECONFLICT, Message: "An order already exists for this payment"}
	ErrNoOrderItems         = &Error{Code: EINVALID, Message: "Order must contain at least one item"}
)

// CheckoutService prices carts and turns them into orders.
type CheckoutService interface {
	// Quote prices the user's cart without writing anything. An invalid voucher
	// is reported in Quote.VoucherError and the totals are computed without it.
	Quote(ctx context.Context, userID uuid.UUID, voucherCode string) (*Quote, error)

	// Checkout either commits a demo order in one transaction or creates a
	// gateway session. Returns ErrEmptyCart when there is nothing to buy.
	Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*CheckoutResult, error)

	// ConfirmSession creates the order for a completed gateway session.
	// Redelivery of the same session returns the existing order with created false.
	// A session with no stored snapshot yields a nil order and no error.
	ConfirmSession(ctx context.Context, sessionID string) (order *Order, created bool, err error)

	// PlaceOrder records a PENDING order for a payment intent the client
	// created with the gateway. Prices come from the current menu, and the
	// payment status changes when the gateway reports the intent's outcome.
	PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*Order, error)
}

// PlaceOrderRequest is the body of POST /api/orders.
type PlaceOrderRequest struct {
	Items     []PlaceOrderItem `json:"items" validate:"required,min=1,max=50,dive"`
	Address   string           `json:"address" validate:"required,max=500"`
	PaymentID string           `json:"paymentId" validate:"required,max=255"`
}

// PlaceOrderItem is one requested dish. Repeated dishes are merged.
type PlaceOrderItem struct {
	DishID   uuid.UUID `json:"id" validate:"required"`
	Quantity int32     `json:"quantity" validate:"min=1,max=99"`
}

// CheckoutRequest carries the caller's checkout choices.
type CheckoutRequest struct {
	VoucherCode     string `json:"voucherCode" validate:"omitempty,max=50"`
	RequireVoucher  bool   `json:"requireVoucher"`
	DeliveryAddress string `json:"deliveryAddress" validate:"required,max=500"`
	Demo            bool   `json:"isDemo"`
}

// Quote is a pricing preview of the cart.
type Quote struct {
	Items        []CartItem      `json:"items"`
	Totals       pricing.Totals  `json:"totals"`
	Voucher      *VoucherSummary `json:"voucher,omitempty"`
	VoucherError string          `json:"voucherError,omitempty"`
}

// CheckoutResult is returned by Checkout. Demo checkouts carry the order;
// gateway checkouts carry the hosted session.
type CheckoutResult struct {
	Demo       bool            `json:"demo"`
	Order      *Order          `json:"order,omitempty"`
	SessionID  string          `json:"sessionId,omitempty"`
	SessionURL string          `json:"url,omitempty"`
	Totals     pricing.Totals  `json:"totals"`
	Voucher    *VoucherSummary `json:"voucher,omitempty"`
}
