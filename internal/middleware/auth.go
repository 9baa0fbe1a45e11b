package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dukerupert/foodmania/internal/cookie"
	"github.com/dukerupert/foodmania/internal/domain"
)

type contextKey string

// authErrorContextKey records why a presented token was rejected, so that
// RequireAuth can distinguish "no token" (401) from "bad token" (403).
const authErrorContextKey contextKey = "auth_error"

// Authenticator resolves an access token to the caller.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

// WithUser resolves the access token from the "token" cookie or an
// Authorization: Bearer header and adds the caller to the request context.
// It never rejects a request; RequireAuth and RequireAdmin do that.
func WithUser(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				ctx := context.WithValue(r.Context(), authErrorContextKey, err)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			ctx := domain.NewContextWithUser(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromRequest returns the access token from the cookie, falling back
// to the Authorization header.
func TokenFromRequest(r *http.Request) string {
	if token := cookie.Token(r); token != "" {
		return token
	}
	header := r.Header.Get("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// RequireAuth rejects requests without an authenticated user.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !domain.IsAuthenticated(r.Context()) {
			respondWithError(w, r, authError(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose user is not an admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !domain.IsAuthenticated(r.Context()) {
			respondWithError(w, r, authError(r.Context()))
			return
		}
		if !domain.IsAdmin(r.Context()) {
			respondWithError(w, r, domain.ErrAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func authError(ctx context.Context) error {
	if err, ok := ctx.Value(authErrorContextKey).(error); ok {
		return err
	}
	return domain.ErrNoToken
}

// GetUserFromContext retrieves the caller from the request context.
// Returns nil if no user is authenticated.
func GetUserFromContext(ctx context.Context) *domain.Principal {
	return domain.UserFromContext(ctx)
}
