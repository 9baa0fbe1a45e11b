package api

import (
	"net/http"
	"strings"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
	"github.com/dukerupert/foodmania/internal/telemetry"
)

// DishHandler serves the menu. Mutating routes are mounted behind RequireAdmin.
type DishHandler struct {
	dishes domain.DishService
}

// NewDishHandler creates a new dish handler
func NewDishHandler(dishes domain.DishService) *DishHandler {
	return &DishHandler{dishes: dishes}
}

// List handles GET /api/dishes
func (h *DishHandler) List(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.dishes.List(r.Context())
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, dishes)
}

// Search handles GET /api/dishes/search
//
// Query: keyword, category, minPrice, maxPrice, sortBy (name|price|rating|newest), sortOrder (asc|desc).
func (h *DishHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := domain.DishSearchParams{
		Keyword:   strings.TrimSpace(q.Get("keyword")),
		Category:  strings.TrimSpace(q.Get("category")),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}

	var err error
	if params.MinPrice, err = handler.QueryCents(r, "minPrice"); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if params.MaxPrice, err = handler.QueryCents(r, "maxPrice"); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	dishes, err := h.dishes.Search(r.Context(), params)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if telemetry.Business != nil {
		sortBy := params.SortBy
		if sortBy == "" {
			sortBy = "default"
		}
		telemetry.Business.DishSearches.WithLabelValues(sortBy).Inc()
	}

	handler.OK(w, dishes)
}

// Get handles GET /api/dishes/{id}
func (h *DishHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	dish, err := h.dishes.Get(r.Context(), id)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, dish)
}

// Create handles POST /api/dishes
func (h *DishHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.DishInput
	if err := handler.Decode(r, "dish.create", &in); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	dish, err := h.dishes.Create(r.Context(), in)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Created(w, dish, "Dish created successfully")
}

// Update handles PUT /api/dishes/{id}
func (h *DishHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var in domain.DishUpdate
	if err := handler.Decode(r, "dish.update", &in); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	dish, err := h.dishes.Update(r.Context(), id, in)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, dish)
}

// Delete handles DELETE /api/dishes/{id}
func (h *DishHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.dishes.Delete(r.Context(), id); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Message(w, "Dish deleted successfully")
}
