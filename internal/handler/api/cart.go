package api

import (
	"net/http"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
	"github.com/dukerupert/foodmania/internal/telemetry"
	"github.com/google/uuid"
)

// CartHandler handles the caller's cart. All routes require authentication.
type CartHandler struct {
	carts domain.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts domain.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// AddItemRequest is the body of POST /api/cart. Quantity defaults to 1.
type AddItemRequest struct {
	DishID   uuid.UUID `json:"dishId" validate:"required"`
	Quantity *int32    `json:"quantity" validate:"omitempty,max=99"`
}

// UpdateItemRequest is the body of PUT /api/cart/{itemId}.
type UpdateItemRequest struct {
	Quantity int32 `json:"quantity" validate:"max=99"`
}

// Get handles GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetCart(r.Context(), domain.RequireUserID(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, cart)
}

// Add handles POST /api/cart
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := handler.Decode(r, "cart.add", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	quantity := int32(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	result, err := h.carts.AddItem(r.Context(), domain.RequireUserID(r.Context()), req.DishID, quantity)
	if err != nil {
		recordCartAdd("error")
		handler.ErrorResponse(w, r, err)
		return
	}

	if result.Created {
		recordCartAdd("created")
		handler.Created(w, result.Item, "Item added to cart")
		return
	}

	recordCartAdd("incremented")
	handler.JSON(w, http.StatusOK, handler.Envelope{
		Success: true,
		Data:    result.Item,
		Message: "Item quantity updated",
	})
}

func recordCartAdd(result string) {
	if telemetry.Business != nil {
		telemetry.Business.CartItemsAdded.WithLabelValues(result).Inc()
	}
}

// Update handles PUT /api/cart/{itemId}
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, err := handler.PathUUID(r, "itemId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req UpdateItemRequest
	if err := handler.Decode(r, "cart.update", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	item, err := h.carts.UpdateItem(r.Context(), domain.RequireUserID(r.Context()), itemID, req.Quantity)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, item)
}

// Remove handles DELETE /api/cart/{itemId}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	itemID, err := handler.PathUUID(r, "itemId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.carts.RemoveItem(r.Context(), domain.RequireUserID(r.Context()), itemID); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Message(w, "Item removed from cart")
}

// Clear handles DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), domain.RequireUserID(r.Context())); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.CartCleared.Inc()
	}
	handler.Message(w, "Cart cleared")
}
