// Package admin contains the handlers of the /api/admin routes.
// Every route is mounted behind RequireAdmin.
package admin

import (
	"net/http"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
)

// DashboardHandler serves the admin analytics overview.
type DashboardHandler struct {
	admin domain.AdminService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(admin domain.AdminService) *DashboardHandler {
	return &DashboardHandler{admin: admin}
}

// Analytics handles GET /api/admin/analytics
func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.admin.Analytics(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, analytics)
}
