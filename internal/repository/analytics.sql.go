package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countOrdersByStatus = `-- name: CountOrdersByStatus :many
SELECT status, count(*)::bigint AS count
FROM orders
GROUP BY status
ORDER BY status
`

type CountOrdersByStatusRow struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func (q *Queries) CountOrdersByStatus(ctx context.Context) ([]CountOrdersByStatusRow, error) {
	rows, err := q.db.Query(ctx, countOrdersByStatus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CountOrdersByStatusRow
	for rows.Next() {
		var i CountOrdersByStatusRow
		if err := rows.Scan(&i.Status, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countOrdersPerDay = `-- name: CountOrdersPerDay :many
SELECT (created_at AT TIME ZONE 'UTC')::date AS day, count(*)::bigint AS count
FROM orders
WHERE created_at >= $1
GROUP BY day
ORDER BY day
`

type CountOrdersPerDayRow struct {
	Day   pgtype.Date `json:"day"`
	Count int64       `json:"count"`
}

func (q *Queries) CountOrdersPerDay(ctx context.Context, since pgtype.Timestamptz) ([]CountOrdersPerDayRow, error) {
	rows, err := q.db.Query(ctx, countOrdersPerDay, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CountOrdersPerDayRow
	for rows.Next() {
		var i CountOrdersPerDayRow
		if err := rows.Scan(&i.Day, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const sumRevenue = `-- name: SumRevenue :one
SELECT COALESCE(sum(total_cents), 0)::bigint FROM orders WHERE status <> 'CANCELLED'
`

func (q *Queries) SumRevenue(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, sumRevenue)
	var total int64
	err := row.Scan(&total)
	return total, err
}

const topDishes = `-- name: TopDishes :many
SELECT d.id AS dish_id, d.name, d.price_cents, d.image_url,
    count(DISTINCT oi.order_id)::bigint AS order_count,
    sum(oi.quantity)::bigint AS total_quantity
FROM order_items oi
JOIN dishes d ON d.id = oi.dish_id
GROUP BY d.id
ORDER BY order_count DESC, total_quantity DESC, d.name
LIMIT $1
`

type TopDishesRow struct {
	DishID        pgtype.UUID `json:"dish_id"`
	Name          string      `json:"name"`
	PriceCents    int64       `json:"price_cents"`
	ImageUrl      pgtype.Text `json:"image_url"`
	OrderCount    int64       `json:"order_count"`
	TotalQuantity int64       `json:"total_quantity"`
}

func (q *Queries) TopDishes(ctx context.Context, limit int32) ([]TopDishesRow, error) {
	rows, err := q.db.Query(ctx, topDishes, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TopDishesRow
	for rows.Next() {
		var i TopDishesRow
		if err := rows.Scan(
			&i.DishID,
			&i.Name,
			&i.PriceCents,
			&i.ImageUrl,
			&i.OrderCount,
			&i.TotalQuantity,
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
