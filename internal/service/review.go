package service

import (
	"context"
	"strings"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReviewService implements domain.ReviewService.
type ReviewService struct {
	repo repository.Querier
}

var _ domain.ReviewService = (*ReviewService)(nil)

// NewReviewService creates a new ReviewService instance
func NewReviewService(repo repository.Querier) *ReviewService {
	return &ReviewService{repo: repo}
}

// ListForDish returns a dish's reviews with author names, newest first.
func (s *ReviewService) ListForDish(ctx context.Context, dishID uuid.UUID) ([]domain.Review, error) {
	rows, err := s.repo.ListReviewsByDish(ctx, postgres.UUID(dishID))
	if err != nil {
		return nil, domain.Internal(err, "review.list", "failed to list reviews")
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, r := range rows {
		reviews = append(reviews, domain.Review{
			ID:        postgres.FromUUID(r.ID),
			UserID:    postgres.FromUUID(r.UserID),
			DishID:    postgres.FromUUID(r.DishID),
			Rating:    int32(r.Rating),
			Comment:   r.Comment.String,
			Author:    &domain.ReviewAuthor{FirstName: r.UserFirstName, LastName: r.UserLastName},
			CreatedAt: r.CreatedAt.Time,
			UpdatedAt: r.UpdatedAt.Time,
		})
	}
	return reviews, nil
}

// Average returns the mean rating rounded to two decimals.
func (s *ReviewService) Average(ctx context.Context, dishID uuid.UUID) (*domain.RatingSummary, error) {
	const op = "review.average"

	row, err := s.repo.GetDishRating(ctx, postgres.UUID(dishID))
	if err != nil {
		return nil, domain.Internal(err, op, "failed to compute rating")
	}
	if row.ReviewCount == 0 {
		return nil, domain.WithOp(domain.ErrNoReviews, op)
	}

	return &domain.RatingSummary{
		DishID:        dishID,
		AverageRating: decimal.NewFromFloat(row.AvgRating).Round(2).InexactFloat64(),
		ReviewCount:   row.ReviewCount,
	}, nil
}

// Create adds the user's review of a dish. A user reviews a dish at most once.
func (s *ReviewService) Create(ctx context.Context, userID, dishID uuid.UUID, in domain.ReviewInput) (*domain.Review, error) {
	const op = "review.create"

	if err := validateRating(in.Rating, op); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetDish(ctx, postgres.UUID(dishID)); err != nil {
		return nil, dbErr(err, domain.ErrDishNotFound, op, "failed to get dish")
	}

	row, err := s.repo.CreateReview(ctx, repository.CreateReviewParams{
		UserID:  postgres.UUID(userID),
		DishID:  postgres.UUID(dishID),
		Rating:  int16(in.Rating),
		Comment: postgres.Text(strings.TrimSpace(in.Comment)),
	})
	if err != nil {
		if postgres.IsUniqueViolation(err, "reviews_user_dish_key") {
			return nil, domain.WithOp(domain.ErrReviewExists, op)
		}
		return nil, domain.Internal(err, op, "failed to create review")
	}
	return reviewFromRepo(row), nil
}

// Update replaces the rating and comment of the user's own review.
func (s *ReviewService) Update(ctx context.Context, userID, reviewID uuid.UUID, in domain.ReviewInput) (*domain.Review, error) {
	const op = "review.update"

	if err := validateRating(in.Rating, op); err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, userID, reviewID, op); err != nil {
		return nil, err
	}

	row, err := s.repo.UpdateReview(ctx, repository.UpdateReviewParams{
		ID:      postgres.UUID(reviewID),
		Rating:  int16(in.Rating),
		Comment: postgres.Text(strings.TrimSpace(in.Comment)),
	})
	if err != nil {
		return nil, dbErr(err, domain.ErrReviewNotFound, op, "failed to update review")
	}
	return reviewFromRepo(row), nil
}

// Delete removes the user's own review.
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID uuid.UUID) error {
	const op = "review.delete"

	if err := s.checkOwner(ctx, userID, reviewID, op); err != nil {
		return err
	}

	n, err := s.repo.DeleteReview(ctx, postgres.UUID(reviewID))
	if err != nil {
		return domain.Internal(err, op, "failed to delete review")
	}
	if n == 0 {
		return domain.WithOp(domain.ErrReviewNotFound, op)
	}
	return nil
}

func (s *ReviewService) checkOwner(ctx context.Context, userID, reviewID uuid.UUID, op string) error {
	review, err := s.repo.GetReview(ctx, postgres.UUID(reviewID))
	if err != nil {
		return dbErr(err, domain.ErrReviewNotFound, op, "failed to get review")
	}
	if postgres.FromUUID(review.UserID) != userID {
		return domain.WithOp(domain.ErrNotReviewOwner, op)
	}
	return nil
}

func validateRating(rating int32, op string) error {
	if rating < 1 || rating > 5 {
		return domain.NewValidationError(op, "rating", "must be between 1 and 5")
	}
	return nil
}

func reviewFromRepo(r repository.Review) *domain.Review {
	return &domain.Review{
		ID:        postgres.FromUUID(r.ID),
		UserID:    postgres.FromUUID(r.UserID),
		DishID:    postgres.FromUUID(r.DishID),
		Rating:    int32(r.Rating),
		Comment:   r.Comment.String,
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
}
