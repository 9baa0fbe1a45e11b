package service

import (
	"context"
	"testing"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewService_Average(t *testing.T) {
	tests := []struct {
		name    string
		row     repository.GetDishRatingRow
		want    float64
		wantErr error
	}{
		{name: "rounded", row: repository.GetDishRatingRow{AvgRating: 4.3333333, ReviewCount: 3}, want: 4.33},
		{name: "round half up", row: repository.GetDishRatingRow{AvgRating: 3.675, ReviewCount: 4}, want: 3.68},
		{name: "no reviews", row: repository.GetDishRatingRow{}, wantErr: domain.ErrNoReviews},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repository.NewMockQuerier(ctrl)
			svc := NewReviewService(repo)

			repo.EXPECT().GetDishRating(gomock.Any(), gomock.Any()).Return(tt.row, nil)

			got, err := svc.Average(context.Background(), uuid.New())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.AverageRating)
			assert.Equal(t, tt.row.ReviewCount, got.ReviewCount)
		})
	}
}

func TestReviewService_Create(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockQuerier(ctrl)
		svc := NewReviewService(repo)

		repo.EXPECT().GetDish(gomock.Any(), gomock.Any()).Return(repository.Dish{}, nil)
		repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(repository.Review{}, uniqueViolation("reviews_user_dish_key"))

		_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), domain.ReviewInput{Rating: 5})
		assert.ErrorIs(t, err, domain.ErrReviewExists)
	})

	t.Run("unknown dish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockQuerier(ctrl)
		svc := NewReviewService(repo)

		repo.EXPECT().GetDish(gomock.Any(), gomock.Any()).Return(repository.Dish{}, pgx.ErrNoRows)

		_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), domain.ReviewInput{Rating: 4})
		assert.ErrorIs(t, err, domain.ErrDishNotFound)
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc := NewReviewService(repository.NewMockQuerier(gomock.NewController(t)))

		_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), domain.ReviewInput{Rating: 6})
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewMockQuerier(ctrl)
		svc := NewReviewService(repo)
		userID, dishID := uuid.New(), uuid.New()

		repo.EXPECT().GetDish(gomock.Any(), postgres.UUID(dishID)).Return(repository.Dish{}, nil)
		repo.EXPECT().CreateReview(gomock.Any(), repository.CreateReviewParams{
			UserID:  postgres.UUID(userID),
			DishID:  postgres.UUID(dishID),
			Rating:  4,
			Comment: postgres.Text("Great broth"),
		}).Return(repository.Review{
			ID: postgres.UUID(uuid.New()), UserID: postgres.UUID(userID), DishID: postgres.UUID(dishID),
			Rating: 4, Comment: postgres.Text("Great broth"),
		}, nil)

		r, err := svc.Create(context.Background(), userID, dishID, domain.ReviewInput{Rating: 4, Comment: " Great broth "})
		require.NoError(t, err)
		assert.Equal(t, int32(4), r.Rating)
		assert.Equal(t, "Great broth", r.Comment)
	})
}

func TestReviewService_OwnerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	svc := NewReviewService(repo)

	reviewID := uuid.New()
	owner := uuid.New()
	repo.EXPECT().GetReview(gomock.Any(), postgres.UUID(reviewID)).
		Return(repository.Review{ID: postgres.UUID(reviewID), UserID: postgres.UUID(owner)}, nil).Times(2)

	_, err := svc.Update(context.Background(), uuid.New(), reviewID, domain.ReviewInput{Rating: 1})
	assert.ErrorIs(t, err, domain.ErrNotReviewOwner)

	err = svc.Delete(context.Background(), uuid.New(), reviewID)
	assert.ErrorIs(t, err, domain.ErrNotReviewOwner)
}

func TestReviewService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	svc := NewReviewService(repo)

	reviewID, owner := uuid.New(), uuid.New()
	repo.EXPECT().GetReview(gomock.Any(), postgres.UUID(reviewID)).
		Return(repository.Review{ID: postgres.UUID(reviewID), UserID: postgres.UUID(owner)}, nil)
	repo.EXPECT().DeleteReview(gomock.Any(), postgres.UUID(reviewID)).Return(int64(1), nil)

	assert.NoError(t, svc.Delete(context.Background(), owner, reviewID))
}
