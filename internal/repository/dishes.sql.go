package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countDishes = `-- name: CountDishes :one
SELECT count(*) FROM dishes
`

func (q *Queries) CountDishes(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countDishes)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createDish = `-- name: CreateDish :one
INSERT INTO dishes (name, description, price_cents, image_url, category)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, description, price_cents, image_url, category, created_at, updated_at
`

type CreateDishParams struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PriceCents  int64       `json:"price_cents"`
	ImageUrl    pgtype.Text `json:"image_url"`
	Category    pgtype.Text `json:"category"`
}

func (q *Queries) CreateDish(ctx context.Context, arg CreateDishParams) (Dish, error) {
	row := q.db.QueryRow(ctx, createDish,
		arg.Name,
		arg.Description,
		arg.PriceCents,
		arg.ImageUrl,
		arg.Category,
	)
	var i Dish
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.PriceCents,
		&i.ImageUrl,
		&i.Category,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteDish = `-- name: DeleteDish :execrows
DELETE FROM dishes WHERE id = $1
`

func (q *Queries) DeleteDish(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteDish, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getDish = `-- name: GetDish :one
SELECT id, name, description, price_cents, image_url, category, created_at, updated_at
FROM dishes
WHERE id = $1
`

func (q *Queries) GetDish(ctx context.Context, id pgtype.UUID) (Dish, error) {
	row := q.db.QueryRow(ctx, getDish, id)
	var i Dish
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.PriceCents,
		&i.ImageUrl,
		&i.Category,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listDishes = `-- name: ListDishes :many
SELECT id, name, description, price_cents, image_url, category, created_at, updated_at
FROM dishes
ORDER BY created_at DESC
`

func (q *Queries) ListDishes(ctx context.Context) ([]Dish, error) {
	rows, err := q.db.Query(ctx, listDishes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Dish
	for rows.Next() {
		var i Dish
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.PriceCents,
			&i.ImageUrl,
			&i.Category,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const searchDishes = `-- name: SearchDishes :many
SELECT d.id, d.name, d.description, d.price_cents, d.image_url, d.category, d.created_at, d.updated_at,
    avg(r.rating)::float8 AS avg_rating,
    count(r.id)::bigint AS review_count
FROM dishes d
LEFT JOIN reviews r ON r.dish_id = d.id
WHERE ($1::text = '' OR d.name ILIKE '%' || $1 || '%' OR d.description ILIKE '%' || $1 || '%')
  AND ($2::text = '' OR d.category ILIKE $2)
  AND ($3::bigint IS NULL OR d.price_cents >= $3)
  AND ($4::bigint IS NULL OR d.price_cents <= $4)
GROUP BY d.id
ORDER BY
    CASE WHEN $5::text = 'price_asc' THEN d.price_cents END ASC,
    CASE WHEN $5::text = 'price_desc' THEN d.price_cents END DESC,
    CASE WHEN $5::text = 'name_asc' THEN d.name END ASC,
    CASE WHEN $5::text = 'name_desc' THEN d.name END DESC,
    CASE WHEN $5::text = 'rating_asc' THEN avg(r.rating) END ASC NULLS FIRST,
    CASE WHEN $5::text = 'rating_desc' THEN avg(r.rating) END DESC NULLS LAST,
    CASE WHEN $5::text = 'newest_asc' THEN d.created_at END ASC,
    d.created_at DESC
`

type SearchDishesParams struct {
	Keyword  string      `json:"keyword"`
	Category string      `json:"category"`
	MinPrice pgtype.Int8 `json:"min_price"`
	MaxPrice pgtype.Int8 `json:"max_price"`
	Sort     string      `json:"sort"`
}

type SearchDishesRow struct {
	ID          pgtype.UUID        `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	PriceCents  int64              `json:"price_cents"`
	ImageUrl    pgtype.Text        `json:"image_url"`
	Category    pgtype.Text        `json:"category"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
	AvgRating   pgtype.Float8      `json:"avg_rating"`
	ReviewCount int64              `json:"review_count"`
}

func (q *Queries) SearchDishes(ctx context.Context, arg SearchDishesParams) ([]SearchDishesRow, error) {
	rows, err := q.db.Query(ctx, searchDishes,
		arg.Keyword,
		arg.Category,
		arg.MinPrice,
		arg.MaxPrice,
		arg.Sort,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SearchDishesRow
	for rows.Next() {
		var i SearchDishesRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.PriceCents,
			&i.ImageUrl,
			&i.Category,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.AvgRating,
			&i.ReviewCount,
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

const setDishImage = `-- name: SetDishImage :one
UPDATE dishes SET image_url = $2, updated_at = now()
WHERE id = $1
RETURNING id, name, description, price_cents, image_url, category, created_at, updated_at
`

type SetDishImageParams struct {
	ID       pgtype.UUID `json:"id"`
	ImageUrl pgtype.Text `json:"image_url"`
}

func (q *Queries) SetDishImage(ctx context.Context, arg SetDishImageParams) (Dish, error) {
	row := q.db.QueryRow(ctx, setDishImage, arg.ID, arg.ImageUrl)
	var i Dish
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.PriceCents,
		&i.ImageUrl,
		&i.Category,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateDish = `-- name: UpdateDish :one
UPDATE dishes SET
    name = COALESCE($2, name),
    description = COALESCE($3, description),
    price_cents = COALESCE($4, price_cents),
    image_url = COALESCE($5, image_url),
    category = COALESCE($6, category),
    updated_at = now()
WHERE id = $1
RETURNING id, name, description, price_cents, image_url, category, created_at, updated_at
`

type UpdateDishParams struct {
	ID          pgtype.UUID `json:"id"`
	Name        pgtype.Text `json:"name"`
	Description pgtype.Text `json:"description"`
	PriceCents  pgtype.Int8 `json:"price_cents"`
	ImageUrl    pgtype.Text `json:"image_url"`
	Category    pgtype.Text `json:"category"`
}

func (q *Queries) UpdateDish(ctx context.Context, arg UpdateDishParams) (Dish, error) {
	row := q.db.QueryRow(ctx, updateDish,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.PriceCents,
		arg.ImageUrl,
		arg.Category,
	)
	var i Dish
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.PriceCents,
		&i.ImageUrl,
		&i.Category,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
