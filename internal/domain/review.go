package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Review-related domain errors.
var (
	ErrReviewNotFound = &Error{Code: ENOTFOUND, Message: "Review not found"}
	ErrReviewExists   = &Error{Code: ECONFLICT, Message: "You have already reviewed this dish"}
	ErrNoReviews      = &Error{Code: ENOTFOUND, Message: "No reviews found for this dish"}
	ErrNotReviewOwner = &Error{Code: EFORBIDDEN, Message: "You can only modify your own reviews"}
)

// Review is a user's rating of a dish.
type Review struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"userId"`
	DishID    uuid.UUID     `json:"dishId"`
	Rating    int32         `json:"rating"`
	Comment   string        `json:"comment,omitempty"`
	Author    *ReviewAuthor `json:"user,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ReviewAuthor is the public name of a reviewer.
type ReviewAuthor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ReviewInput contains the fields for creating or updating a review.
type ReviewInput struct {
	Rating  int32  `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// RatingSummary is the average rating of a dish, rounded to two decimals.
type RatingSummary struct {
	DishID        uuid.UUID `json:"dishId"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int64     `json:"reviewCount"`
}

// ReviewService provides dish reviews.
type ReviewService interface {
	ListForDish(ctx context.Context, dishID uuid.UUID) ([]Review, error)

	// Average returns ErrNoReviews when the dish has none.
	Average(ctx context.Context, dishID uuid.UUID) (*RatingSummary, error)

	// Create allows one review per user and dish.
	Create(ctx context.Context, userID, dishID uuid.UUID, in ReviewInput) (*Review, error)
	Update(ctx context.Context, userID, reviewID uuid.UUID, in ReviewInput) (*Review, error)
	Delete(ctx context.Context, userID, reviewID uuid.UUID) error
}
