package routes

import (
	"net/http"

	"github.com/dukerupert/foodmania/internal/handler"
	"github.com/dukerupert/foodmania/internal/middleware"
	"github.com/dukerupert/foodmania/internal/router"
)

// RegisterAPIRoutes registers the JSON API under /api.
// Requests under /api that match no route get a JSON 404.
func RegisterAPIRoutes(r *router.Router, deps APIDeps) {
	apiRouter := r.Route("/api", middleware.MaxBodySize(middleware.DefaultMaxBodySize))

	// Auth
	limited := apiRouter.Group(deps.StrictRateLimit)
	limited.Post("/auth/signup", deps.Auth.Signup)
	limited.Post("/auth/signin", deps.Auth.Signup)
	limited.Post("/auth/login", deps.Auth.Login)
	apiRouter.Get("/auth/logout", deps.Auth.Logout)
	apiRouter.Post("/auth/logout", deps.Auth.Logout)
	apiRouter.Get("/auth/me", deps.Auth.Me, middleware.RequireAuth)

	// Dishes
	apiRouter.Get("/dishes", deps.Dishes.List)
	apiRouter.Get("/dishes/search", deps.Dishes.Search)
	apiRouter.Get("/dishes/{id}", deps.Dishes.Get)
	dishAdmin := apiRouter.Group(middleware.RequireAdmin)
	dishAdmin.Post("/dishes", deps.Dishes.Create)
	dishAdmin.Put("/dishes/{id}", deps.Dishes.Update)
	dishAdmin.Delete("/dishes/{id}", deps.Dishes.Delete)

	// Vouchers
	apiRouter.Post("/vouchers/validate/{code}", deps.Vouchers.Validate)

	// Customer routes
	user := apiRouter.Group(middleware.RequireAuth)

	user.Get("/cart", deps.Cart.Get)
	user.Post("/cart", deps.Cart.Add)
	user.Put("/cart/{itemId}", deps.Cart.Update)
	user.Delete("/cart/{itemId}", deps.Cart.Remove)
	user.Delete("/cart", deps.Cart.Clear)

	user.Post("/checkout/quote", deps.Checkout.Quote)
	user.Post("/checkout/create-session", deps.Checkout.CreateSession, middleware.Timeout(middleware.CheckoutTimeout))
	user.Get("/checkout/order/{orderId}", deps.Checkout.GetOrder)
	apiRouter.Put("/checkout/order/{orderId}/delivery", deps.Checkout.UpdateDelivery, middleware.RequireAdmin)

	user.Post("/orders", deps.Checkout.PlaceOrder)
	user.Get("/orders/user", deps.Orders.ListMine)

	user.Get("/reviews/{dishId}", deps.Reviews.List)
	user.Get("/reviews/avg/{dishId}", deps.Reviews.Average)
	user.Post("/reviews/{dishId}", deps.Reviews.Create)
	user.Put("/reviews/{reviewId}", deps.Reviews.Update)
	user.Delete("/reviews/{reviewId}", deps.Reviews.Delete)

	// Order management
	orders := apiRouter.Group(middleware.RequireAdmin)
	orders.Get("/orders", deps.Orders.List)
	orders.Get("/orders/{id}", deps.Orders.Get)
	orders.Put("/orders/{id}", deps.Orders.UpdateStatus)
	orders.Delete("/orders/{id}", deps.Orders.Delete)

	apiRouter.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handler.NotFoundResponse(w, r)
	})
}

// RegisterHealthRoutes registers liveness and metrics endpoints.
func RegisterHealthRoutes(r *router.Router, metrics http.Handler) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		handler.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if metrics != nil {
		r.Handle(http.MethodGet, "/metrics", metrics)
	}
}
