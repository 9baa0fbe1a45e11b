package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authenticatorFunc func(ctx context.Context, token string) (*domain.Principal, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	return f(ctx, token)
}

var (
	testUser  = &domain.Principal{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Email: "user@example.com", Role: domain.RoleUser}
	testAdmin = &domain.Principal{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Email: "admin@example.com", Role: domain.RoleAdmin}
)

func fakeAuth() Authenticator {
	return authenticatorFunc(func(_ context.Context, token string) (*domain.Principal, error) {
		switch token {
		case "user-token":
			return testUser, nil
		case "admin-token":
			return testAdmin, nil
		}
		return nil, domain.ErrInvalidToken
	})
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthChain(t *testing.T) {
	tests := []struct {
		name        string
		guard       func(http.Handler) http.Handler
		cookie      string
		bearer      string
		wantStatus  int
		wantMessage string
	}{
		{"no token", RequireAuth, "", "", http.StatusUnauthorized, "Not authorized, no token"},
		{"invalid token", RequireAuth, "garbage", "", http.StatusForbidden, "Invalid or expired token"},
		{"cookie token", RequireAuth, "user-token", "", http.StatusOK, ""},
		{"bearer token", RequireAuth, "", "user-token", http.StatusOK, ""},
		{"admin route as user", RequireAdmin, "user-token", "", http.StatusForbidden, "Access denied. Admins only."},
		{"admin route without token", RequireAdmin, "", "", http.StatusUnauthorized, "Not authorized, no token"},
		{"admin route as admin", RequireAdmin, "", "admin-token", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := WithUser(fakeAuth())(tt.guard(http.HandlerFunc(okHandler)))

			req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tt.wantMessage, body["message"])
			}
		})
	}
}

func TestWithUser_SetsPrincipal(t *testing.T) {
	var got *domain.Principal
	h := WithUser(fakeAuth())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer admin-token")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, testAdmin.ID, got.ID)
}

func TestTokenFromRequest_PrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")

	assert.Equal(t, "from-cookie", TokenFromRequest(req))
}
