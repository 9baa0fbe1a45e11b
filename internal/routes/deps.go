package routes

import (
	"github.com/dukerupert/foodmania/internal/handler/admin"
	"github.com/dukerupert/foodmania/internal/handler/api"
	"github.com/dukerupert/foodmania/internal/handler/webhook"
	"github.com/dukerupert/foodmania/internal/router"
)

// APIDeps contains dependencies for the public and customer API routes
type APIDeps struct {
	Auth     *api.AuthHandler
	Dishes   *api.DishHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Orders   *api.OrderHandler
	Reviews  *api.ReviewHandler
	Vouchers *api.VoucherHandler

	// StrictRateLimit guards login and signup.
	StrictRateLimit router.Middleware
}

// AdminDeps contains dependencies for admin routes
type AdminDeps struct {
	Dashboard  *admin.DashboardHandler
	Users      *admin.UserHandler
	Vouchers   *admin.VoucherHandler
	DishImages *admin.DishImageHandler

	// Dish and order management share the API handlers.
	Dishes   *api.DishHandler
	Orders   *api.OrderHandler
	Validate *api.VoucherHandler
}

// WebhookDeps contains dependencies for webhook routes
type WebhookDeps struct {
	Stripe *webhook.StripeHandler
}
