package api

import (
	"net/http"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
	"github.com/dukerupert/foodmania/internal/telemetry"
)

// CheckoutHandler turns carts into orders and exposes order tracking.
type CheckoutHandler struct {
	checkout domain.CheckoutService
	orders   domain.OrderService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout domain.CheckoutService, orders domain.OrderService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, orders: orders}
}

// QuoteRequest is the body of POST /api/checkout/quote.
type QuoteRequest struct {
	VoucherCode string `json:"voucherCode" validate:"omitempty,max=50"`
}

// Quote handles POST /api/checkout/quote
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if r.ContentLength != 0 {
		if err := handler.Decode(r, "checkout.quote", &req); err != nil {
			handler.ErrorResponse(w, r, err)
			return
		}
	}

	quote, err := h.checkout.Quote(r.Context(), domain.RequireUserID(r.Context()), req.VoucherCode)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if req.VoucherCode != "" && telemetry.Business != nil {
		result := "applied"
		if quote.Voucher == nil {
			result = "rejected"
		}
		telemetry.Business.VoucherApplied.WithLabelValues(result).Inc()
	}

	handler.OK(w, quote)
}

// CreateSession handles POST /api/checkout/create-session
//
// A demo checkout answers 201 with the placed order; a gateway checkout
// answers 200 with the hosted payment page URL.
func (h *CheckoutHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := handler.Decode(r, "checkout.create", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	mode := "gateway"
	if req.Demo {
		mode = "demo"
	}
	if telemetry.Business != nil {
		telemetry.Business.CheckoutStarted.WithLabelValues(mode).Inc()
	}

	result, err := h.checkout.Checkout(r.Context(), domain.RequireUserID(r.Context()), req)
	if err != nil {
		if telemetry.Business != nil {
			telemetry.Business.CheckoutFailed.WithLabelValues(mode, domain.ErrorCode(err)).Inc()
		}
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.CheckoutCompleted.WithLabelValues(mode).Inc()
	}

	if result.Demo {
		recordOrderCreated("demo", result.Order)
		handler.Created(w, result, "Order placed successfully")
		return
	}
	handler.OK(w, result)
}

// PlaceOrder handles POST /api/orders
//
// The client has already created a payment intent with the gateway; the
// order is recorded PENDING and settled by the payment_intent webhooks.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.PlaceOrderRequest
	if err := handler.Decode(r, "order.place", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), domain.RequireUserID(r.Context()), req)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	recordOrderCreated("placed", order)
	handler.Created(w, order, "Order placed successfully")
}

// GetOrder handles GET /api/checkout/order/{orderId}
// Customers see their own orders; admins see any.
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "orderId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	ctx := r.Context()
	var order *domain.Order
	if domain.IsAdmin(ctx) {
		order, err = h.orders.Get(ctx, id)
	} else {
		order, err = h.orders.GetForUser(ctx, domain.RequireUserID(ctx), id)
	}
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, order)
}

// UpdateDelivery handles PUT /api/checkout/order/{orderId}/delivery
func (h *CheckoutHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "orderId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var update domain.DeliveryUpdate
	if err := handler.Decode(r, "order.delivery", &update); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	order, err := h.orders.UpdateDelivery(r.Context(), id, update)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.OrderStatusChanges.WithLabelValues(string(order.Status)).Inc()
	}
	handler.OK(w, order)
}

// recordOrderCreated records order volume and value. Source is "demo",
// "placed" or "webhook".
func recordOrderCreated(source string, order *domain.Order) {
	if telemetry.Business == nil || order == nil {
		return
	}
	telemetry.Business.OrdersCreated.WithLabelValues(source).Inc()
	telemetry.Business.OrderValue.WithLabelValues(source).Observe(float64(order.Total))
	telemetry.Business.OrderItemCount.Observe(float64(len(order.Items)))
}
