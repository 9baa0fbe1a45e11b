package api

import (
	"net/http"
	"strings"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
	"github.com/dukerupert/foodmania/internal/telemetry"
)

// OrderHandler serves order history and the admin order routes.
type OrderHandler struct {
	orders domain.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders domain.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /api/orders (admin)
//
// Query: page, limit, status, search.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	params := domain.OrderListParams{
		Page:   handler.QueryInt(r, "page", 1),
		Limit:  handler.QueryInt(r, "limit", domain.DefaultPageLimit),
		Status: domain.OrderStatus(strings.ToUpper(r.URL.Query().Get("status"))),
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}

	page, err := h.orders.List(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, page)
}

// ListMine handles GET /api/orders/user
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListForUser(r.Context(), domain.RequireUserID(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, orders)
}

// Get handles GET /api/orders/{id} (admin)
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, order)
}

// UpdateStatus handles PUT /api/orders/{id} and PUT /api/admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var update domain.OrderStatusUpdate
	if err := handler.Decode(r, "order.update", &update); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), id, update)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if update.Status != nil && telemetry.Business != nil {
		telemetry.Business.OrderStatusChanges.WithLabelValues(string(order.Status)).Inc()
	}
	handler.OK(w, order)
}

// Delete handles DELETE /api/orders/{id} (admin)
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Message(w, "Order deleted successfully")
}
