package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/dukerupert/foodmania/internal/money"
	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending        OrderStatus = "PENDING"
	OrderConfirmed      OrderStatus = "CONFIRMED"
	OrderPreparing      OrderStatus = "PREPARING"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// fulfilment order of the non-cancelled states
var statusRank = map[OrderStatus]int{
	OrderPending:        0,
	OrderConfirmed:      1,
	OrderPreparing:      2,
	OrderOutForDelivery: 3,
	OrderDelivered:      4,
}

// ActiveDeliveryStatuses are the states shown as in-flight on the dashboard.
var ActiveDeliveryStatuses = []OrderStatus{OrderConfirmed, OrderPreparing, OrderOutForDelivery}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok || s == OrderCancelled
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransition checks a status change. Orders only move forward through
// PENDING, CONFIRMED, PREPARING, OUT_FOR_DELIVERY and DELIVERED; steps may be
// skipped. Cancellation is possible until the order leaves the kitchen.
// Setting the current status again is allowed so location-only updates work.
func CanTransition(from, to OrderStatus) error {
	if !to.Valid() {
		return ErrInvalidOrderStatus
	}
	if from == to {
		return nil
	}
	if from.Terminal() {
		return invalidTransition(from, to)
	}
	if to == OrderCancelled {
		if from == OrderOutForDelivery {
			return invalidTransition(from, to)
		}
		return nil
	}
	if statusRank[to] <= statusRank[from] {
		return invalidTransition(from, to)
	}
	return nil
}

// ValidTransitionsFrom lists the statuses reachable from s.
func ValidTransitionsFrom(s OrderStatus) []OrderStatus {
	var next []OrderStatus
	for _, to := range []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing, OrderOutForDelivery, OrderDelivered, OrderCancelled} {
		if to != s && CanTransition(s, to) == nil {
			next = append(next, to)
		}
	}
	return next
}

func invalidTransition(from, to OrderStatus) error {
	return &Error{
		Code:    EINVALID,
		Message: fmt.Sprintf("Cannot change order status from %s to %s", from, to),
	}
}

// Order-related domain errors.
var (
	ErrOrderNotFound        = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrInvalidOrderStatus   = &Error{Code: EINVALID, Message: "Invalid order status"}
	ErrInvalidPaymentStatus = &Error{Code: EINVALID, Message: "Invalid payment status"}
	ErrNothingToUpdate      = &Error{Code: EINVALID, Message: "Nothing to update"}
)

// Order is a placed order. Totals and item snapshots never change after creation.
type Order struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"userId"`
	Customer        *OrderCustomer `json:"user,omitempty"`
	VoucherID       *uuid.UUID     `json:"voucherId"`
	VoucherCode     string         `json:"voucherCode,omitempty"`
	Status          OrderStatus    `json:"status"`
	PaymentStatus   PaymentStatus  `json:"paymentStatus"`
	PaymentID       string         `json:"paymentId"`
	Address         string         `json:"address"`
	CurrentLocation string         `json:"currentLocation,omitempty"`
	Subtotal        money.Cents    `json:"subtotal"`
	Discount        money.Cents    `json:"discountAmount"`
	Tax             money.Cents    `json:"tax"`
	DeliveryFee     money.Cents    `json:"deliveryFee"`
	Total           money.Cents    `json:"totalAmount"`
	Items           []OrderItem    `json:"items"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// OrderCustomer is the account summary attached to admin order views.
type OrderCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// OrderItem is an order line with the dish name and price captured at order time.
// DishID is nil once the dish has been deleted.
type OrderItem struct {
	ID        uuid.UUID   `json:"id"`
	DishID    *uuid.UUID  `json:"dishId"`
	DishName  string      `json:"dishName"`
	UnitPrice money.Cents `json:"price"`
	Quantity  int32       `json:"quantity"`
	LineTotal money.Cents `json:"lineTotal"`
}

// OrderListParams filters the admin order listing.
type OrderListParams struct {
	Page   int
	Limit  int
	Status OrderStatus
	Search string
}

// OrderStatusUpdate changes status, payment status, or both.
type OrderStatusUpdate struct {
	Status        *OrderStatus   `json:"status"`
	PaymentStatus *PaymentStatus `json:"paymentStatus"`
}

// DeliveryUpdate changes the fulfilment status and optionally the courier location.
type DeliveryUpdate struct {
	Status   OrderStatus `json:"status" validate:"required"`
	Location string      `json:"location" validate:"omitempty,max=500"`
}

// OrderService provides order queries and admin mutations.
type OrderService interface {
	List(ctx context.Context, params OrderListParams) (*Page[Order], error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	Get(ctx context.Context, id uuid.UUID) (*Order, error)

	// GetForUser returns ErrOrderNotFound for orders owned by someone else.
	GetForUser(ctx context.Context, userID, id uuid.UUID) (*Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, update OrderStatusUpdate) (*Order, error)
	UpdateDelivery(ctx context.Context, id uuid.UUID, update DeliveryUpdate) (*Order, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// MarkPaid sets COMPLETED on the order with the given payment reference.
	// A reference with no order is not an error; found reports whether one matched.
	MarkPaid(ctx context.Context, paymentRef string) (found bool, err error)

	// MarkPaymentFailed sets FAILED on the order with the given payment reference.
	MarkPaymentFailed(ctx context.Context, paymentRef string) (found bool, err error)
}

// OrderEvent is published after an order is created or changes status.
type OrderEvent struct {
	Type      string      `json:"type"`
	OrderID   uuid.UUID   `json:"orderId"`
	UserID    uuid.UUID   `json:"userId"`
	Status    OrderStatus `json:"status"`
	Total     money.Cents `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

// Order event types.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)
