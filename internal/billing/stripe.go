package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dukerupert/foodmania/internal/telemetry"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeProvider implements Provider using Stripe Checkout.
type StripeProvider struct {
	api    *client.API
	config StripeConfig
}

var _ Provider = (*StripeProvider)(nil)

// NewStripeProvider creates a Stripe-backed provider. Each call has its own
// client so tests and multiple configs don't share the global stripe.Key.
func NewStripeProvider(config StripeConfig) (*StripeProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
	}
	config.applyDefaults()

	httpClient := &http.Client{
		Timeout:   time.Duration(config.TimeoutSeconds) * time.Second,
		Transport: config.Transport,
	}
	api := &client.API{}
	api.Init(config.APIKey, stripe.NewBackends(httpClient))

	return &StripeProvider{api: api, config: config}, nil
}

// Currency returns the configured settlement currency.
func (p *StripeProvider) Currency() string {
	return p.config.Currency
}

// CreateCheckoutSession creates a payment-mode Checkout Session.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, params CreateCheckoutSessionParams) (*CheckoutSession, error) {
	if len(params.LineItems) == 0 {
		return nil, ErrNoLineItems
	}

	currency := params.Currency
	if currency == "" {
		currency = p.config.Currency
	}

	sp := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
		Metadata:   params.Metadata,
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: params.Metadata,
		},
	}
	sp.Context = ctx
	if params.CustomerEmail != "" {
		sp.CustomerEmail = stripe.String(params.CustomerEmail)
	}
	if params.ClientReferenceID != "" {
		sp.ClientReferenceID = stripe.String(params.ClientReferenceID)
	}
	if params.IdempotencyKey != "" {
		sp.SetIdempotencyKey(params.IdempotencyKey)
	}

	for _, li := range params.LineItems {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(li.Name),
		}
		if li.Description != "" {
			product.Description = stripe.String(li.Description)
		}
		if li.ImageURL != "" {
			product.Images = []*string{stripe.String(li.ImageURL)}
		}
		sp.LineItems = append(sp.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(li.UnitAmount),
			},
			Quantity: stripe.Int64(li.Quantity),
		})
	}

	if params.DiscountAmount > 0 {
		coupon, err := p.createCoupon(ctx, params, currency)
		if err != nil {
			return nil, err
		}
		sp.Discounts = []*stripe.CheckoutSessionDiscountParams{{Coupon: stripe.String(coupon)}}
	}

	start := time.Now()
	s, err := p.api.CheckoutSessions.New(sp)
	observe("checkout_session_create", start, err)
	if err != nil {
		return nil, mapStripeError(err)
	}

	return &CheckoutSession{
		ID:          s.ID,
		URL:         s.URL,
		AmountTotal: s.AmountTotal,
		Currency:    string(s.Currency),
		ExpiresAt:   time.Unix(s.ExpiresAt, 0),
	}, nil
}

// createCoupon makes a single-use fixed amount coupon carrying the voucher discount.
func (p *StripeProvider) createCoupon(ctx context.Context, params CreateCheckoutSessionParams, currency string) (string, error) {
	name := params.DiscountName
	if name == "" {
		name = "Discount"
	}
	cp := &stripe.CouponParams{
		AmountOff:      stripe.Int64(params.DiscountAmount),
		Currency:       stripe.String(currency),
		Duration:       stripe.String(string(stripe.CouponDurationOnce)),
		MaxRedemptions: stripe.Int64(1),
		Name:           stripe.String(name),
	}
	cp.Context = ctx
	if params.IdempotencyKey != "" {
		cp.SetIdempotencyKey(params.IdempotencyKey + "-coupon")
	}

	start := time.Now()
	c, err := p.api.Coupons.New(cp)
	observe("coupon_create", start, err)
	if err != nil {
		return "", mapStripeError(err)
	}
	return c.ID, nil
}

// VerifyWebhook validates the Stripe-Signature header and decodes the event.
func (p *StripeProvider) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, p.config.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWebhookSignature, err)
	}
	return decodeEvent(event)
}

// decodeEvent flattens the event object we care about into a WebhookEvent.
// Unknown types are returned with only ID and Type set.
func decodeEvent(event stripe.Event) (*WebhookEvent, error) {
	out := &WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data == nil {
		return out, nil
	}

	switch out.Type {
	case EventCheckoutSessionCompleted, EventCheckoutSessionExpired:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedEvent, err)
		}
		out.SessionID = s.ID
		out.PaymentStatus = string(s.PaymentStatus)
		out.AmountTotal = s.AmountTotal
		out.Metadata = s.Metadata
		if s.PaymentIntent != nil {
			out.PaymentIntentID = s.PaymentIntent.ID
		}

	case EventPaymentIntentSucceeded, EventPaymentIntentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedEvent, err)
		}
		out.PaymentIntentID = pi.ID
		out.PaymentStatus = string(pi.Status)
		out.AmountTotal = pi.Amount
		out.Metadata = pi.Metadata
	}

	return out, nil
}

func observe(operation string, start time.Time, err error) {
	if telemetry.Business == nil {
		return
	}
	telemetry.Business.StripeAPIDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		telemetry.Business.StripeAPIErrors.WithLabelValues(operation).Inc()
	}
}

// mapStripeError converts SDK errors into StripeError. Network failures
// (timeouts, DNS) are not *stripe.Error and are wrapped as unavailable.
func mapStripeError(err error) error {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	return &StripeError{
		Message:        se.Msg,
		Code:           string(se.Code),
		Type:           string(se.Type),
		HTTPStatusCode: se.HTTPStatusCode,
		RequestID:      se.RequestID,
		OriginalError:  err,
	}
}
