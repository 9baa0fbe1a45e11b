package api

import (
	"net/http"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/handler"
)

// ReviewHandler handles dish reviews. Authors may only change their own.
type ReviewHandler struct {
	reviews domain.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews domain.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List handles GET /api/reviews/{dishId}
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	dishID, err := handler.PathUUID(r, "dishId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	reviews, err := h.reviews.ListForDish(r.Context(), dishID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, reviews)
}

// Average handles GET /api/reviews/avg/{dishId}
func (h *ReviewHandler) Average(w http.ResponseWriter, r *http.Request) {
	dishID, err := handler.PathUUID(r, "dishId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	summary, err := h.reviews.Average(r.Context(), dishID)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, summary)
}

// Create handles POST /api/reviews/{dishId}
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	dishID, err := handler.PathUUID(r, "dishId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var in domain.ReviewInput
	if err := handler.Decode(r, "review.create", &in); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	review, err := h.reviews.Create(r.Context(), domain.RequireUserID(r.Context()), dishID, in)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Created(w, review, "Review added")
}

// Update handles PUT /api/reviews/{reviewId}
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handler.PathUUID(r, "reviewId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var in domain.ReviewInput
	if err := handler.Decode(r, "review.update", &in); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	review, err := h.reviews.Update(r.Context(), domain.RequireUserID(r.Context()), reviewID, in)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.OK(w, review)
}

// Delete handles DELETE /api/reviews/{reviewId}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handler.PathUUID(r, "reviewId")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := h.reviews.Delete(r.Context(), domain.RequireUserID(r.Context()), reviewID); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.Message(w, "Review deleted")
}
