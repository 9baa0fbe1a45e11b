package admin

import (
	"net/http"
	"strings"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
)

// UserHandler handles account administration.
type UserHandler struct {
	admin domain.AdminService
}

// NewUserHandler creates a new user handler
func NewUserHandler(admin domain.AdminService) *UserHandler {
	return &UserHandler{admin: admin}
}

// UpdateRoleRequest is the body of PUT /api/admin/users/{id}/role.
type UpdateRoleRequest struct {
	Role domain.Role `json:"role" validate:"required"`
}

// List handles GET /api/admin/users
//
// Query: page, limit, search (matches email and names).
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	params := domain.UserListParams{
		Page:   handler.QueryInt(r, "page", 1),
		Limit:  handler.QueryInt(r, "limit", domain.DefaultPageLimit),
		Search: strings.TrimSpace(r.URL.Query().Get("search")),
	}

	page, err := h.admin.ListUsers(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, page)
}

// UpdateRole handles PUT /api/admin/users/{id}/role
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var req UpdateRoleRequest
	if err := handler.Decode(r, "admin.update_role", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	user, err := h.admin.UpdateUserRole(r.Context(), id, domain.Role(strings.ToUpper(string(req.Role))))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, user)
}

// Delete handles DELETE /api/admin/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.admin.DeleteUser(r.Context(), domain.RequireUserID(r.Context()), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Message(w, "User deleted successfully")
}
