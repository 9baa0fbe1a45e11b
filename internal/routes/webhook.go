package routes

import (
	"github.com/dukerupert/foodmania/internal/middleware"
	"github.com/dukerupert/foodmania/internal/router"
)

// RegisterWebhookRoutes registers the payment webhook.
//
// Webhook routes do NOT have authentication middleware. The handler
// verifies the Stripe signature before touching any state. The same
// handler serves both paths.
func RegisterWebhookRoutes(r *router.Router, deps WebhookDeps) {
	hooks := r.Group(middleware.MaxBodySize(middleware.WebhookMaxBodySize))
	hooks.Post("/api/webhook", deps.Stripe.HandleWebhook)
	hooks.Post("/api/checkout/webhook", deps.Stripe.HandleWebhook)
}
