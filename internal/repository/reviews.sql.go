package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countReviews = `-- name: CountReviews :one
SELECT count(*) FROM reviews
`

func (q *Queries) CountReviews(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countReviews)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createReview = `-- name: CreateReview :one
INSERT INTO reviews (user_id, dish_id, rating, comment)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, dish_id, rating, comment, created_at, updated_at
`

type CreateReviewParams struct {
	UserID  pgtype.UUID `json:"user_id"`
	DishID  pgtype.UUID `json:"dish_id"`
	Rating  int16       `json:"rating"`
	Comment pgtype.Text `json:"comment"`
}

func (q *Queries) CreateReview(ctx context.Context, arg CreateReviewParams) (Review, error) {
	row := q.db.QueryRow(ctx, createReview,
		arg.UserID,
		arg.DishID,
		arg.Rating,
		arg.Comment,
	)
	var i Review
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.DishID,
		&i.Rating,
		&i.Comment,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteReview = `-- name: DeleteReview :execrows
DELETE FROM reviews WHERE id = $1
`

func (q *Queries) DeleteReview(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteReview, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getDishRating = `-- name: GetDishRating :one
SELECT COALESCE(avg(rating), 0)::float8 AS avg_rating, count(*)::bigint AS review_count
FROM reviews
WHERE dish_id = $1
`

type GetDishRatingRow struct {
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int64   `json:"review_count"`
}

func (q *Queries) GetDishRating(ctx context.Context, dishID pgtype.UUID) (GetDishRatingRow, error) {
	row := q.db.QueryRow(ctx, getDishRating, dishID)
	var i GetDishRatingRow
	err := row.Scan(&i.AvgRating, &i.ReviewCount)
	return i, err
}

const getReview = `-- name: GetReview :one
SELECT id, user_id, dish_id, rating, comment, created_at, updated_at FROM reviews WHERE id = $1
`

func (q *Queries) GetReview(ctx context.Context, id pgtype.UUID) (Review, error) {
	row := q.db.QueryRow(ctx, getReview, id)
	var i Review
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.DishID,
		&i.Rating,
		&i.Comment,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listReviewsByDish = `-- name: ListReviewsByDish :many
SELECT r.id, r.user_id, r.dish_id, r.rating, r.comment, r.created_at, r.updated_at,
    u.first_name AS user_first_name, u.last_name AS user_last_name
FROM reviews r
JOIN users u ON u.id = r.user_id
WHERE r.dish_id = $1
ORDER BY r.created_at DESC
`

type ListReviewsByDishRow struct {
	ID            pgtype.UUID        `json:"id"`
	UserID        pgtype.UUID        `json:"user_id"`
	DishID        pgtype.UUID        `json:"dish_id"`
	Rating        int16              `json:"rating"`
	Comment       pgtype.Text        `json:"comment"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
	UserFirstName string             `json:"user_first_name"`
	UserLastName  string             `json:"user_last_name"`
}

func (q *Queries) ListReviewsByDish(ctx context.Context, dishID pgtype.UUID) ([]ListReviewsByDishRow, error) {
	rows, err := q.db.Query(ctx, listReviewsByDish, dishID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListReviewsByDishRow
	for rows.Next() {
		var i ListReviewsByDishRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.DishID,
			&i.Rating,
			&i.Comment,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.UserFirstName,
			&i.UserLastName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateReview = `-- name: UpdateReview :one
UPDATE reviews SET rating = $2, comment = $3, updated_at = now()
WHERE id = $1
RETURNING id, user_id, dish_id, rating, comment, created_at, updated_at
`

type UpdateReviewParams struct {
	ID      pgtype.UUID `json:"id"`
	Rating  int16       `json:"rating"`
	Comment pgtype.Text `json:"comment"`
}

func (q *Queries) UpdateReview(ctx context.Context, arg UpdateReviewParams) (Review, error) {
	row := q.db.QueryRow(ctx, updateReview, arg.ID, arg.Rating, arg.Comment)
	var i Review
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.DishID,
		&i.Rating,
		&i.Comment,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
