// Package api contains the handlers of the public and customer-facing JSON routes.
package api

import (
	"net/http"
	"time"

	"github.com/dukerupert/foodmania/internal/cookie"
	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
	"github.com/dukerupert/foodmania/internal/middleware"
	"github.com/dukerupert/foodmania/internal/telemetry"
)

// AuthHandler handles signup, login, logout and the current user.
type AuthHandler struct {
	users   domain.UserService
	cookies *cookie.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users domain.UserService, cookies *cookie.Config) *AuthHandler {
	return &AuthHandler{users: users, cookies: cookies}
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login. The token is also set as
// an HttpOnly cookie.
type LoginResponse struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var params domain.SignupParams
	if err := handler.Decode(r, "auth.signup", &params); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	user, err := h.users.Signup(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.Signups.Inc()
	}

	handler.Created(w, user, "User created successfully")
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handler.Decode(r, "auth.login", &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	result, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if domain.IsCode(err, domain.EUNAUTHORIZED) {
			middleware.GetLogger(r.Context()).Warn("login failed")
			if telemetry.Business != nil {
				telemetry.Business.LoginFailed.Inc()
			}
		}
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.Logins.Inc()
	}

	h.cookies.SetToken(w, result.Token, result.ExpiresAt)
	handler.OK(w, LoginResponse{
		User:      result.User,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout handles GET and POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.ClearToken(w)
	handler.Message(w, "Logged out successfully")
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetUser(r.Context(), domain.RequireUserID(r.Context()))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, user)
}
