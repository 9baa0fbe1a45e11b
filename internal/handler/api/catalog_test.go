package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDishHandler_Search(t *testing.T) {
	var got domain.DishSearchParams
	dishes := &mockDishService{
		searchFunc: func(ctx context.Context, params domain.DishSearchParams) ([]domain.RatedDish, error) {
			got = params
			return []domain.RatedDish{}, nil
		},
	}

	rec := httptest.NewRecorder()
	NewDishHandler(dishes).Search(rec, newRequest(http.MethodGet,
		"/api/dishes/search?keyword=%20curry%20&category=Thai&minPrice=5&maxPrice=20.50&sortBy=rating&sortOrder=desc", "", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "curry", got.Keyword)
	assert.Equal(t, "Thai", got.Category)
	require.NotNil(t, got.MinPrice)
	require.NotNil(t, got.MaxPrice)
	assert.Equal(t, money.Cents(500), *got.MinPrice)
	assert.Equal(t, money.Cents(2050), *got.MaxPrice)
	assert.Equal(t, domain.DishSortRating, got.SortBy)

	rec = httptest.NewRecorder()
	NewDishHandler(dishes).Search(rec, newRequest(http.MethodGet, "/api/dishes/search?minPrice=cheap", "", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDishHandler_Create(t *testing.T) {
	dishes := &mockDishService{
		createFunc: func(ctx context.Context, in domain.DishInput) (*domain.Dish, error) {
			if in.Name == "Pad Thai" {
				return nil, domain.ErrDishExists
			}
			return &domain.Dish{ID: uuid.New(), Name: in.Name, Price: in.Price}, nil
		},
	}
	h := NewDishHandler(dishes)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"created", `{"name":"Green Curry","description":"Spicy","price":12.5}`, http.StatusCreated},
		{"duplicate", `{"name":"Pad Thai","description":"Noodles","price":10}`, http.StatusConflict},
		{"free dish", `{"name":"Water","description":"Free","price":0}`, http.StatusCreated},
		{"negative price", `{"name":"Debt","description":"Nope","price":-1}`, http.StatusBadRequest},
		{"price above limit", `{"name":"Caviar","description":"Gold","price":10000.01}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Create(rec, newRequest(http.MethodPost, "/api/dishes", tt.body, domain.RoleAdmin))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestReviewHandler(t *testing.T) {
	dishID := uuid.New()
	reviews := &mockReviewService{
		createFunc: func(ctx context.Context, uid, did uuid.UUID, in domain.ReviewInput) (*domain.Review, error) {
			if in.Comment == "again" {
				return nil, domain.ErrReviewExists
			}
			return &domain.Review{ID: uuid.New(), UserID: uid, DishID: did, Rating: in.Rating}, nil
		},
		deleteFunc: func(ctx context.Context, uid, reviewID uuid.UUID) error {
			return domain.ErrNotReviewOwner
		},
	}
	h := NewReviewHandler(reviews)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"created", `{"rating":5,"comment":"great"}`, http.StatusCreated},
		{"duplicate", `{"rating":4,"comment":"again"}`, http.StatusConflict},
		{"rating out of range", `{"rating":6}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(http.MethodPost, "/api/reviews/"+dishID.String(), tt.body, domain.RoleUser)
			req.SetPathValue("dishId", dishID.String())
			rec := httptest.NewRecorder()
			h.Create(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("delete someone else's", func(t *testing.T) {
		reviewID := uuid.New()
		req := newRequest(http.MethodDelete, "/api/reviews/"+reviewID.String(), "", domain.RoleUser)
		req.SetPathValue("reviewId", reviewID.String())
		rec := httptest.NewRecorder()
		h.Delete(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestVoucherHandler_Validate(t *testing.T) {
	vouchers := &mockVoucherService{
		validateFunc: func(ctx context.Context, code string, amount money.Cents) (*domain.VoucherValidation, error) {
			switch code {
			case "SAVE15":
				if amount < 2000 {
					return nil, domain.BelowMinimum("voucher.validate", 2000)
				}
				return &domain.VoucherValidation{
					Voucher:        domain.VoucherSummary{Code: code, DiscountType: domain.DiscountPercentage},
					DiscountAmount: 375,
					FinalAmount:    amount - 375,
				}, nil
			}
			return nil, domain.ErrVoucherNotFound
		},
	}
	h := NewVoucherHandler(vouchers)

	tests := []struct {
		name       string
		code       string
		body       string
		wantStatus int
		wantInBody string
	}{
		{"valid", "SAVE15", `{"orderAmount":25}`, http.StatusOK, `"discountAmount":3.75`},
		{"below minimum", "SAVE15", `{"orderAmount":10}`, http.StatusBadRequest, "Minimum order amount of $20.00 required"},
		{"unknown", "NOPE", `{"orderAmount":25}`, http.StatusNotFound, "Invalid voucher code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(http.MethodPost, "/api/vouchers/validate/"+tt.code, tt.body, "")
			req.SetPathValue("code", tt.code)
			rec := httptest.NewRecorder()
			h.Validate(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantInBody)
		})
	}
}
