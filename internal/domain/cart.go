package domain

import (
	"context"

	"github.com/dukerupert/foodmania/internal/money"
	"github.com/google/uuid"
)

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

// MaxItemQuantity bounds a single cart or order line.
const MaxItemQuantity int32 = 99

var (
	ErrCartItemNotFound = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrInvalidQuantity  = &Error{Code: EINVALID, Message: "Quantity must be between 1 and 99"}
	ErrQuantityLimit    = &Error{Code: EINVALID, Message: "At most 99 of a dish fit in one cart"}
	ErrEmptyCart        = &Error{Code: EINVALID, Message: "Cart is empty"}
)

// ValidQuantity reports whether q is an allowed line quantity.
func ValidQuantity(q int32) bool {
	return q >= 1 && q <= MaxItemQuantity
}

// CartService manages the caller's transient cart. Every operation is scoped
// to the user that owns the cart.
type CartService interface {
	// GetCart returns the user's cart. A user without a cart gets an empty one.
	GetCart(ctx context.Context, userID uuid.UUID) (*Cart, error)

	// AddItem adds quantity of a dish, creating the cart if needed.
	// Adding a dish already in the cart increments its quantity.
	AddItem(ctx context.Context, userID, dishID uuid.UUID, quantity int32) (*AddItemResult, error)

	// UpdateItem sets an item's quantity. Returns ErrCartItemNotFound when the
	// item does not belong to the user.
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int32) (*CartItem, error)

	// RemoveItem deletes an item. Returns ErrCartItemNotFound when absent, which
	// a retrying caller may treat as success.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error

	// Clear deletes the cart and its items. Clearing a missing cart succeeds.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// Cart is the user's cart with dish details and a computed total.
type Cart struct {
	ID        *uuid.UUID  `json:"id"`
	Items     []CartItem  `json:"items"`
	Total     money.Cents `json:"total"`
	ItemCount int32       `json:"itemCount"`
}

// CartDish is the dish detail embedded in a cart item.
type CartDish struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Cents `json:"price"`
	ImageURL    string      `json:"image,omitempty"`
	Category    string      `json:"category,omitempty"`
}

// CartItem is a cart line.
type CartItem struct {
	ID        uuid.UUID   `json:"id"`
	DishID    uuid.UUID   `json:"dishId"`
	Quantity  int32       `json:"quantity"`
	Dish      CartDish    `json:"dish"`
	LineTotal money.Cents `json:"lineTotal"`
}

// AddItemResult reports whether AddItem inserted a new line or incremented one.
type AddItemResult struct {
	Item    CartItem
	Created bool
}
