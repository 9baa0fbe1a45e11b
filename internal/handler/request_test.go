package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantCode   string
		wantFields map[string]string
	}{
		{
			name: "valid",
			body: `{"email":"ada@example.com","password":"longenough","firstName":"Ada","lastName":"Lovelace"}`,
		},
		{
			name:     "empty body",
			body:     "",
			wantCode: domain.EINVALID,
		},
		{
			name:     "malformed",
			body:     `{"email":`,
			wantCode: domain.EINVALID,
		},
		{
			name:     "field errors use json names",
			body:     `{"email":"nope","password":"short","firstName":"Ada"}`,
			wantCode: domain.EINVALID,
			wantFields: map[string]string{
				"email":    "must be a valid email",
				"password": "must be at least 8 characters",
				"lastName": "is required",
			},
		},
		{
			name:       "wrong type",
			body:       `{"email":42}`,
			wantCode:   domain.EINVALID,
			wantFields: map[string]string{"email": "has the wrong type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body))

			var params domain.SignupParams
			err := Decode(req, "auth.signup", &params)

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "Ada", params.FirstName)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
			if tt.wantFields != nil {
				assert.Equal(t, tt.wantFields, domain.GetValidationFields(err))
			}
		})
	}
}

func TestDecode_TooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"comment":"`+strings.Repeat("x", 100)+`"}`))
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	var in domain.ReviewInput
	err := Decode(req, "review.create", &in)
	assert.Equal(t, domain.ETOOLARGE, domain.ErrorCode(err))
}

func TestPathUUID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/dishes/x", nil)
	req.SetPathValue("id", "7c9e6679-7425-40de-944b-e07fc1f90ae7")

	id, err := PathUUID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", id.String())

	req.SetPathValue("id", "not-a-uuid")
	_, err = PathUUID(req, "id")
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/dishes/search?page=3&limit=abc&minPrice=12.5", nil)

	assert.Equal(t, 3, QueryInt(req, "page", 1))
	assert.Equal(t, 10, QueryInt(req, "limit", 10))

	minPrice, err := QueryCents(req, "minPrice")
	require.NoError(t, err)
	require.NotNil(t, minPrice)
	assert.Equal(t, money.Cents(1250), *minPrice)

	maxPrice, err := QueryCents(req, "maxPrice")
	require.NoError(t, err)
	assert.Nil(t, maxPrice)
}
