// Package webhook receives payment gateway callbacks.
package webhook

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/foodmania/internal/billing"
	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
	"github.com/dukerupert/foodmania/internal/middleware"
	"github.com/dukerupert/foodmania/internal/telemetry"
)

// MaxPayloadSize bounds the webhook body read before signature verification.
const MaxPayloadSize = 64 * 1024

// StripeHandler handles Stripe webhook events. It is mounted at both
// /api/webhook and /api/checkout/webhook.
type StripeHandler struct {
	provider billing.Provider
	checkout domain.CheckoutService
	orders   domain.OrderService
	logger   *slog.Logger
}

// NewStripeHandler creates a new Stripe webhook handler
func NewStripeHandler(provider billing.Provider, checkout domain.CheckoutService, orders domain.OrderService, logger *slog.Logger) *StripeHandler {
	return &StripeHandler{
		provider: provider,
		checkout: checkout,
		orders:   orders,
		logger:   logger,
	}
}

// HandleWebhook processes incoming Stripe webhook events.
//
// A verified event answers 200 {"received": true} once processed. A
// processing failure answers 500 so that Stripe redelivers; order creation
// is idempotent on the session ID.
//
// Stripe CLI testing:
//
//	stripe listen --forward-to localhost:3000/api/webhook
//	stripe trigger checkout.session.completed
func (h *StripeHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	logger := middleware.GetLogger(r.Context(), h.logger)

	payload, err := io.ReadAll(io.LimitReader(r.Body, MaxPayloadSize+1))
	var maxErr *http.MaxBytesError
	if err != nil && !errors.As(err, &maxErr) {
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "webhook.read", "Error reading request body"))
		return
	}
	if maxErr != nil || len(payload) > MaxPayloadSize {
		handler.ErrorResponse(w, r, domain.Errorf(domain.ETOOLARGE, "webhook.read", "Payload too large"))
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		recordFailure("unknown", "missing_signature")
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "webhook.verify", "Missing signature"))
		return
	}

	event, err := h.provider.VerifyWebhook(payload, signature)
	if err != nil {
		reason := "invalid_payload"
		if errors.Is(err, billing.ErrInvalidWebhookSignature) {
			reason = "invalid_signature"
		}
		recordFailure("unknown", reason)
		logger.Warn("webhook rejected", "reason", reason, "error", err)
		handler.ErrorResponse(w, r, domain.Errorf(domain.EINVALID, "webhook.verify", "Webhook signature verification failed"))
		return
	}

	logger = logger.With("event_id", event.ID, "event_type", event.Type)
	logger.Info("webhook received")

	if telemetry.Business != nil {
		telemetry.Business.WebhookReceived.WithLabelValues(event.Type).Inc()
		defer func() {
			telemetry.Business.WebhookLatency.WithLabelValues(event.Type).Observe(time.Since(startTime).Seconds())
		}()
	}

	// Finish processing even if Stripe hangs up; redelivery would repeat the work.
	ctx := context.WithoutCancel(r.Context())

	switch event.Type {
	case billing.EventCheckoutSessionCompleted:
		err = h.handleCheckoutCompleted(ctx, logger, event)
	case billing.EventPaymentIntentSucceeded:
		err = h.handlePaymentIntentSucceeded(ctx, logger, event)
	case billing.EventPaymentIntentFailed:
		err = h.handlePaymentIntentFailed(ctx, logger, event)
	default:
		logger.Debug("unhandled event type")
	}

	if err != nil {
		recordFailure(event.Type, "processing_failed")
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.WebhookProcessed.WithLabelValues(event.Type).Inc()
	}
	handler.JSON(w, http.StatusOK, map[string]bool{"received": true})
}

// handleCheckoutCompleted creates the order for a paid hosted checkout.
func (h *StripeHandler) handleCheckoutCompleted(ctx context.Context, logger *slog.Logger, event *billing.WebhookEvent) error {
	if event.SessionID == "" {
		logger.Warn("checkout session event without session id")
		return nil
	}

	order, created, err := h.checkout.ConfirmSession(ctx, event.SessionID)
	if err != nil {
		return err
	}
	if order == nil {
		logger.Warn("no order for completed session", "session_id", event.SessionID)
		return nil
	}
	if !created {
		logger.Info("order already exists for session", "session_id", event.SessionID, "order_id", order.ID)
		return nil
	}

	logger.Info("order created from checkout session",
		"session_id", event.SessionID,
		"order_id", order.ID,
		"total", order.Total.String(),
	)

	if telemetry.Business != nil {
		telemetry.Business.PaymentSucceeded.Inc()
		telemetry.Business.OrdersCreated.WithLabelValues("webhook").Inc()
		telemetry.Business.OrderValue.WithLabelValues("webhook").Observe(float64(order.Total))
		telemetry.Business.OrderItemCount.Observe(float64(len(order.Items)))
		telemetry.Business.RevenueCollected.Add(float64(order.Total))
	}
	return nil
}

func (h *StripeHandler) handlePaymentIntentSucceeded(ctx context.Context, logger *slog.Logger, event *billing.WebhookEvent) error {
	found, err := h.orders.MarkPaid(ctx, event.PaymentIntentID)
	if err != nil {
		return err
	}
	logger.Info("payment intent succeeded", "payment_intent_id", event.PaymentIntentID, "order_found", found)
	return nil
}

func (h *StripeHandler) handlePaymentIntentFailed(ctx context.Context, logger *slog.Logger, event *billing.WebhookEvent) error {
	found, err := h.orders.MarkPaymentFailed(ctx, event.PaymentIntentID)
	if err != nil {
		return err
	}
	if telemetry.Business != nil {
		telemetry.Business.PaymentFailed.Inc()
	}
	logger.Warn("payment intent failed", "payment_intent_id", event.PaymentIntentID, "order_found", found)
	return nil
}

func recordFailure(eventType, reason string) {
	if telemetry.Business != nil {
		telemetry.Business.WebhookFailed.WithLabelValues(eventType, reason).Inc()
	}
}
