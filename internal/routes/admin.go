package routes

import (
	"github.com/dukerupert/foodmania/internal/middleware"
	"github.com/dukerupert/foodmania/internal/router"
)

// RegisterAdminRoutes registers the admin API under /api/admin.
// Everything except voucher validation requires the ADMIN role.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	base := r.Route("/api/admin")

	// Validation is open so the storefront can reuse it.
	base.Post("/vouchers/validate/{code}", deps.Validate.Validate, middleware.MaxBodySize(middleware.DefaultMaxBodySize))

	admin := base.Group(middleware.RequireAdmin)
	jsonBody := admin.Group(middleware.MaxBodySize(middleware.DefaultMaxBodySize))

	// Dashboard
	admin.Get("/analytics", deps.Dashboard.Analytics)

	// Users
	admin.Get("/users", deps.Users.List)
	jsonBody.Put("/users/{id}/role", deps.Users.UpdateRole)
	admin.Delete("/users/{id}", deps.Users.Delete)

	// Orders
	admin.Get("/orders", deps.Orders.List)
	jsonBody.Put("/orders/{id}/status", deps.Orders.UpdateStatus)

	// Dishes
	admin.Get("/dishes", deps.Dishes.List)
	admin.Get("/dishes/{id}", deps.Dishes.Get)
	jsonBody.Post("/dishes", deps.Dishes.Create)
	jsonBody.Put("/dishes/{id}", deps.Dishes.Update)
	admin.Delete("/dishes/{id}", deps.Dishes.Delete)
	admin.Post("/dishes/{id}/image", deps.DishImages.Upload, middleware.MaxBodySize(middleware.UploadMaxBodySize))

	// Vouchers
	admin.Get("/vouchers", deps.Vouchers.List)
	jsonBody.Post("/vouchers", deps.Vouchers.Create)
	admin.Get("/vouchers/{id}", deps.Vouchers.Get)
	jsonBody.Put("/vouchers/{id}", deps.Vouchers.Update)
	admin.Delete("/vouchers/{id}", deps.Vouchers.Delete)
}
