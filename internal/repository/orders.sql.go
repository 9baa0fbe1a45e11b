package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `o.id, o.user_id, o.voucher_id, o.status, o.payment_status, o.payment_id, o.address,
    o.current_location, o.subtotal_cents, o.discount_cents, o.tax_cents, o.delivery_fee_cents,
    o.total_cents, o.created_at, o.updated_at`

const orderDetailColumns = orderColumns + `,
    u.first_name AS user_first_name, u.last_name AS user_last_name, u.email AS user_email,
    v.code AS voucher_code`

const orderDetailFrom = `
FROM orders o
JOIN users u ON u.id = o.user_id
LEFT JOIN vouchers v ON v.id = o.voucher_id`

func scanOrder(row interface{ Scan(...any) error }, i *Order, extra ...any) error {
	dest := []any{
		&i.ID,
		&i.UserID,
		&i.VoucherID,
		&i.Status,
		&i.PaymentStatus,
		&i.PaymentID,
		&i.Address,
		&i.CurrentLocation,
		&i.SubtotalCents,
		&i.DiscountCents,
		&i.TaxCents,
		&i.DeliveryFeeCents,
		&i.TotalCents,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

// OrderDetailRow is an order joined with its customer and voucher code.
type OrderDetailRow struct {
	Order         Order       `json:"order"`
	UserFirstName string      `json:"user_first_name"`
	UserLastName  string      `json:"user_last_name"`
	UserEmail     string      `json:"user_email"`
	VoucherCode   pgtype.Text `json:"voucher_code"`
}

func scanOrderDetail(row interface{ Scan(...any) error }, i *OrderDetailRow) error {
	return scanOrder(row, &i.Order, &i.UserFirstName, &i.UserLastName, &i.UserEmail, &i.VoucherCode)
}

func (q *Queries) queryOrderDetails(ctx context.Context, sql string, args ...interface{}) ([]OrderDetailRow, error) {
	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderDetailRow
	for rows.Next() {
		var i OrderDetailRow
		if err := scanOrderDetail(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// orderFilter matches the admin listing filters: $1 status, $2 search.
const orderFilter = `
WHERE ($1::text = '' OR o.status = $1)
  AND ($2::text = ''
    OR o.id::text = $2
    OR o.payment_id = $2
    OR u.email ILIKE '%' || $2 || '%'
    OR u.first_name ILIKE '%' || $2 || '%'
    OR u.last_name ILIKE '%' || $2 || '%')
`

const countOrders = `-- name: CountOrders :one
SELECT count(*)` + orderDetailFrom + orderFilter

type CountOrdersParams struct {
	Status string `json:"status"`
	Search string `json:"search"`
}

func (q *Queries) CountOrders(ctx context.Context, arg CountOrdersParams) (int64, error) {
	row := q.db.QueryRow(ctx, countOrders, arg.Status, arg.Search)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createOrder = `-- name: CreateOrder :one
INSERT INTO orders AS o (user_id, voucher_id, status, payment_status, payment_id, address,
    subtotal_cents, discount_cents, tax_cents, delivery_fee_cents, total_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + orderColumns

type CreateOrderParams struct {
	UserID           pgtype.UUID `json:"user_id"`
	VoucherID        pgtype.UUID `json:"voucher_id"`
	Status           string      `json:"status"`
	PaymentStatus    string      `json:"payment_status"`
	PaymentID        string      `json:"payment_id"`
	Address          string      `json:"address"`
	SubtotalCents    int64       `json:"subtotal_cents"`
	DiscountCents    int64       `json:"discount_cents"`
	TaxCents         int64       `json:"tax_cents"`
	DeliveryFeeCents int64       `json:"delivery_fee_cents"`
	TotalCents       int64       `json:"total_cents"`
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.UserID,
		arg.VoucherID,
		arg.Status,
		arg.PaymentStatus,
		arg.PaymentID,
		arg.Address,
		arg.SubtotalCents,
		arg.DiscountCents,
		arg.TaxCents,
		arg.DeliveryFeeCents,
		arg.TotalCents,
	)
	var i Order
	err := scanOrder(row, &i)
	return i, err
}

const createOrderItem = `-- name: CreateOrderItem :one
INSERT INTO order_items (order_id, dish_id, dish_name, unit_price_cents, quantity, line_total_cents)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, order_id, dish_id, dish_name, unit_price_cents, quantity, line_total_cents, created_at
`

type CreateOrderItemParams struct {
	OrderID        pgtype.UUID `json:"order_id"`
	DishID         pgtype.UUID `json:"dish_id"`
	DishName       string      `json:"dish_name"`
	UnitPriceCents int64       `json:"unit_price_cents"`
	Quantity       int32       `json:"quantity"`
	LineTotalCents int64       `json:"line_total_cents"`
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, createOrderItem,
		arg.OrderID,
		arg.DishID,
		arg.DishName,
		arg.UnitPriceCents,
		arg.Quantity,
		arg.LineTotalCents,
	)
	var i OrderItem
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.DishID,
		&i.DishName,
		&i.UnitPriceCents,
		&i.Quantity,
		&i.LineTotalCents,
		&i.CreatedAt,
	)
	return i, err
}

const deleteOrder = `-- name: DeleteOrder :execrows
DELETE FROM orders WHERE id = $1
`

func (q *Queries) DeleteOrder(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteOrder, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getOrder = `-- name: GetOrder :one
SELECT ` + orderDetailColumns + orderDetailFrom + `
WHERE o.id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id pgtype.UUID) (OrderDetailRow, error) {
	row := q.db.QueryRow(ctx, getOrder, id)
	var i OrderDetailRow
	err := scanOrderDetail(row, &i)
	return i, err
}

const getOrderByPaymentID = `-- name: GetOrderByPaymentID :one
SELECT ` + orderColumns + ` FROM orders o WHERE o.payment_id = $1
`

func (q *Queries) GetOrderByPaymentID(ctx context.Context, paymentID string) (Order, error) {
	row := q.db.QueryRow(ctx, getOrderByPaymentID, paymentID)
	var i Order
	err := scanOrder(row, &i)
	return i, err
}

const getOrderForUser = `-- name: GetOrderForUser :one
SELECT ` + orderDetailColumns + orderDetailFrom + `
WHERE o.id = $1 AND o.user_id = $2
`

type GetOrderForUserParams struct {
	ID     pgtype.UUID `json:"id"`
	UserID pgtype.UUID `json:"user_id"`
}

func (q *Queries) GetOrderForUser(ctx context.Context, arg GetOrderForUserParams) (OrderDetailRow, error) {
	row := q.db.QueryRow(ctx, getOrderForUser, arg.ID, arg.UserID)
	var i OrderDetailRow
	err := scanOrderDetail(row, &i)
	return i, err
}

const listActiveDeliveries = `-- name: ListActiveDeliveries :many
SELECT ` + orderDetailColumns + orderDetailFrom + `
WHERE o.status = ANY($1::text[])
ORDER BY o.created_at DESC
`

func (q *Queries) ListActiveDeliveries(ctx context.Context, statuses []string) ([]OrderDetailRow, error) {
	return q.queryOrderDetails(ctx, listActiveDeliveries, statuses)
}

const listOrderItems = `-- name: ListOrderItems :many
SELECT id, order_id, dish_id, dish_name, unit_price_cents, quantity, line_total_cents, created_at
FROM order_items
WHERE order_id = ANY($1::uuid[])
ORDER BY created_at, id
`

// ListOrderItems loads the items of several orders in one round trip.
func (q *Queries) ListOrderItems(ctx context.Context, orderIds []pgtype.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, listOrderItems, orderIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderItem
	for rows.Next() {
		var i OrderItem
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.DishID,
			&i.DishName,
			&i.UnitPriceCents,
			&i.Quantity,
			&i.LineTotalCents,
			&i.CreatedAt,
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

const listOrders = `-- name: ListOrders :many
SELECT ` + orderDetailColumns + orderDetailFrom + orderFilter + `
ORDER BY o.created_at DESC
LIMIT $3 OFFSET $4
`

type ListOrdersParams struct {
	Status string `json:"status"`
	Search string `json:"search"`
	Limit  int32  `json:"limit"`
	Offset int32  `json:"offset"`
}

func (q *Queries) ListOrders(ctx context.Context, arg ListOrdersParams) ([]OrderDetailRow, error) {
	return q.queryOrderDetails(ctx, listOrders, arg.Status, arg.Search, arg.Limit, arg.Offset)
}

const listOrdersByUser = `-- name: ListOrdersByUser :many
SELECT ` + orderDetailColumns + orderDetailFrom + `
WHERE o.user_id = $1
ORDER BY o.created_at DESC
`

func (q *Queries) ListOrdersByUser(ctx context.Context, userID pgtype.UUID) ([]OrderDetailRow, error) {
	return q.queryOrderDetails(ctx, listOrdersByUser, userID)
}

const listRecentOrders = `-- name: ListRecentOrders :many
SELECT ` + orderDetailColumns + orderDetailFrom + `
ORDER BY o.created_at DESC
LIMIT $1
`

func (q *Queries) ListRecentOrders(ctx context.Context, limit int32) ([]OrderDetailRow, error) {
	return q.queryOrderDetails(ctx, listRecentOrders, limit)
}

const updateOrderDelivery = `-- name: UpdateOrderDelivery :one
UPDATE orders AS o SET
    status = $2,
    current_location = COALESCE($3, current_location),
    updated_at = now()
WHERE o.id = $1
RETURNING ` + orderColumns

type UpdateOrderDeliveryParams struct {
	ID              pgtype.UUID `json:"id"`
	Status          string      `json:"status"`
	CurrentLocation pgtype.Text `json:"current_location"`
}

func (q *Queries) UpdateOrderDelivery(ctx context.Context, arg UpdateOrderDeliveryParams) (Order, error) {
	row := q.db.QueryRow(ctx, updateOrderDelivery, arg.ID, arg.Status, arg.CurrentLocation)
	var i Order
	err := scanOrder(row, &i)
	return i, err
}

const updateOrderStatus = `-- name: UpdateOrderStatus :one
UPDATE orders AS o SET
    status = COALESCE($2, status),
    payment_status = COALESCE($3, payment_status),
    updated_at = now()
WHERE o.id = $1
RETURNING ` + orderColumns

type UpdateOrderStatusParams struct {
	ID            pgtype.UUID `json:"id"`
	Status        pgtype.Text `json:"status"`
	PaymentStatus pgtype.Text `json:"payment_status"`
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	row := q.db.QueryRow(ctx, updateOrderStatus, arg.ID, arg.Status, arg.PaymentStatus)
	var i Order
	err := scanOrder(row, &i)
	return i, err
}

const updatePaymentStatusByPaymentID = `-- name: UpdatePaymentStatusByPaymentID :execrows
UPDATE orders SET payment_status = $2, updated_at = now()
WHERE payment_id = $1
`

type UpdatePaymentStatusByPaymentIDParams struct {
	PaymentID     string `json:"payment_id"`
	PaymentStatus string `json:"payment_status"`
}

func (q *Queries) UpdatePaymentStatusByPaymentID(ctx context.Context, arg UpdatePaymentStatusByPaymentIDParams) (int64, error) {
	result, err := q.db.Exec(ctx, updatePaymentStatusByPaymentID, arg.PaymentID, arg.PaymentStatus)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const lockOrder = `-- name: LockOrder :one
SELECT ` + orderColumns + ` FROM orders o WHERE o.id = $1 FOR UPDATE
`

// LockOrder reads an order for a status change.
func (q *Queries) LockOrder(ctx context.Context, id pgtype.UUID) (Order, error) {
	row := q.db.QueryRow(ctx, lockOrder, id)
	var i Order
	err := scanOrder(row, &i)
	return i, err
}
