package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler/admin"
	"github.com/dukerupert/foodmania/internal/handler/api"
	"github.com/dukerupert/foodmania/internal/handler/webhook"
	"github.com/dukerupert/foodmania/internal/middleware"
	"github.com/dukerupert/foodmania/internal/router"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type authenticatorFunc func(ctx context.Context, token string) (*domain.Principal, error)

func (f authenticatorFunc) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	return f(ctx, token)
}

type dishStub struct{ domain.DishService }

func (dishStub) List(ctx context.Context) ([]domain.Dish, error) {
	return []domain.Dish{}, nil
}

type adminStub struct{ domain.AdminService }

func (adminStub) Analytics(ctx context.Context) (*domain.Analytics, error) {
	return &domain.Analytics{}, nil
}

func newTestRouter() *router.Router {
	auth := authenticatorFunc(func(_ context.Context, token string) (*domain.Principal, error) {
		switch token {
		case "user-token":
			return &domain.Principal{ID: uuid.New(), Role: domain.RoleUser}, nil
		case "admin-token":
			return &domain.Principal{ID: uuid.New(), Role: domain.RoleAdmin}, nil
		}
		return nil, domain.ErrInvalidToken
	})

	r := router.New(middleware.WithUser(auth))
	r.Use(router.CORS(router.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}}))

	dishes := api.NewDishHandler(dishStub{})
	orders := api.NewOrderHandler(nil)
	vouchers := api.NewVoucherHandler(nil)

	RegisterHealthRoutes(r, nil)
	RegisterWebhookRoutes(r, WebhookDeps{Stripe: webhook.NewStripeHandler(nil, nil, nil, nil)})
	RegisterAdminRoutes(r, AdminDeps{
		Dashboard:  admin.NewDashboardHandler(adminStub{}),
		Users:      admin.NewUserHandler(nil),
		Vouchers:   admin.NewVoucherHandler(nil),
		DishImages: admin.NewDishImageHandler(nil),
		Dishes:     dishes,
		Orders:     orders,
		Validate:   vouchers,
	})
	RegisterAPIRoutes(r, APIDeps{
		Auth:            api.NewAuthHandler(nil, nil),
		Dishes:          dishes,
		Cart:            api.NewCartHandler(nil),
		Checkout:        api.NewCheckoutHandler(nil, nil),
		Orders:          orders,
		Reviews:         api.NewReviewHandler(nil),
		Vouchers:        vouchers,
		StrictRateLimit: func(next http.Handler) http.Handler { return next },
	})
	return r
}

func TestRoutes(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"public dish list", http.MethodGet, "/api/dishes", "", http.StatusOK},
		{"cart needs a token", http.MethodGet, "/api/cart", "", http.StatusUnauthorized},
		{"cart rejects a bad token", http.MethodGet, "/api/cart", "garbage", http.StatusForbidden},
		{"checkout needs a token", http.MethodPost, "/api/checkout/create-session", "", http.StatusUnauthorized},
		{"dish create is admin only", http.MethodPost, "/api/dishes", "user-token", http.StatusForbidden},
		{"order list is admin only", http.MethodGet, "/api/orders", "user-token", http.StatusForbidden},
		{"placing an order needs a token", http.MethodPost, "/api/orders", "", http.StatusUnauthorized},
		{"customers can place orders", http.MethodPost, "/api/orders", "user-token", http.StatusBadRequest},
		{"delivery update is admin only", http.MethodPut, "/api/checkout/order/" + uuid.NewString() + "/delivery", "user-token", http.StatusForbidden},
		{"analytics as user", http.MethodGet, "/api/admin/analytics", "user-token", http.StatusForbidden},
		{"analytics as admin", http.MethodGet, "/api/admin/analytics", "admin-token", http.StatusOK},
		{"unknown api route", http.MethodGet, "/api/nope", "", http.StatusNotFound},
		{"wrong method", http.MethodPatch, "/api/dishes", "", http.StatusNotFound},
		{"webhook without signature", http.MethodPost, "/api/webhook", "", http.StatusBadRequest},
		{"checkout webhook alias", http.MethodPost, "/api/checkout/webhook", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoutes_CORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
