package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const deleteCart = `-- name: DeleteCart :execrows
DELETE FROM carts WHERE id = $1
`

func (q *Queries) DeleteCart(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCart, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCartByUser = `-- name: DeleteCartByUser :execrows
DELETE FROM carts WHERE user_id = $1
`

func (q *Queries) DeleteCartByUser(ctx context.Context, userID pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCartByUser, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCartItemForUser = `-- name: DeleteCartItemForUser :execrows
DELETE FROM cart_items ci
USING carts c
WHERE ci.id = $1
  AND ci.cart_id = c.id
  AND c.user_id = $2
`

type DeleteCartItemForUserParams struct {
	ID     pgtype.UUID `json:"id"`
	UserID pgtype.UUID `json:"user_id"`
}

func (q *Queries) DeleteCartItemForUser(ctx context.Context, arg DeleteCartItemForUserParams) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCartItemForUser, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getCartByUser = `-- name: GetCartByUser :one
SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1
`

func (q *Queries) GetCartByUser(ctx context.Context, userID pgtype.UUID) (Cart, error) {
	row := q.db.QueryRow(ctx, getCartByUser, userID)
	var i Cart
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const lockCartByUser = `-- name: LockCartByUser :one
SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id = $1 FOR UPDATE
`

// LockCartByUser serializes concurrent checkouts of the same cart.
func (q *Queries) LockCartByUser(ctx context.Context, userID pgtype.UUID) (Cart, error) {
	row := q.db.QueryRow(ctx, lockCartByUser, userID)
	var i Cart
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getCartItemForUser = `-- name: GetCartItemForUser :one
SELECT ci.id, ci.cart_id, ci.dish_id, ci.quantity,
    d.name AS dish_name, d.description AS dish_description, d.price_cents AS dish_price_cents,
    d.image_url AS dish_image_url, d.category AS dish_category
FROM cart_items ci
JOIN carts c ON c.id = ci.cart_id
JOIN dishes d ON d.id = ci.dish_id
WHERE ci.id = $1 AND c.user_id = $2
`

type GetCartItemForUserParams struct {
	ID     pgtype.UUID `json:"id"`
	UserID pgtype.UUID `json:"user_id"`
}

func (q *Queries) GetCartItemForUser(ctx context.Context, arg GetCartItemForUserParams) (ListCartItemsRow, error) {
	row := q.db.QueryRow(ctx, getCartItemForUser, arg.ID, arg.UserID)
	var i ListCartItemsRow
	err := row.Scan(
		&i.ID,
		&i.CartID,
		&i.DishID,
		&i.Quantity,
		&i.DishName,
		&i.DishDescription,
		&i.DishPriceCents,
		&i.DishImageUrl,
		&i.DishCategory,
	)
	return i, err
}

const listCartItems = `-- name: ListCartItems :many
SELECT ci.id, ci.cart_id, ci.dish_id, ci.quantity,
    d.name AS dish_name, d.description AS dish_description, d.price_cents AS dish_price_cents,
    d.image_url AS dish_image_url, d.category AS dish_category
FROM cart_items ci
JOIN dishes d ON d.id = ci.dish_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at, ci.id
`

type ListCartItemsRow struct {
	ID              pgtype.UUID `json:"id"`
	CartID          pgtype.UUID `json:"cart_id"`
	DishID          pgtype.UUID `json:"dish_id"`
	Quantity        int32       `json:"quantity"`
	DishName        string      `json:"dish_name"`
	DishDescription string      `json:"dish_description"`
	DishPriceCents  int64       `json:"dish_price_cents"`
	DishImageUrl    pgtype.Text `json:"dish_image_url"`
	DishCategory    pgtype.Text `json:"dish_category"`
}

func (q *Queries) ListCartItems(ctx context.Context, cartID pgtype.UUID) ([]ListCartItemsRow, error) {
	rows, err := q.db.Query(ctx, listCartItems, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCartItemsRow
	for rows.Next() {
		var i ListCartItemsRow
		if err := rows.Scan(
			&i.ID,
			&i.CartID,
			&i.DishID,
			&i.Quantity,
			&i.DishName,
			&i.DishDescription,
			&i.DishPriceCents,
			&i.DishImageUrl,
			&i.DishCategory,
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

const updateCartItemQuantity = `-- name: UpdateCartItemQuantity :one
UPDATE cart_items ci
SET quantity = $3, updated_at = now()
FROM carts c
WHERE ci.id = $1
  AND ci.cart_id = c.id
  AND c.user_id = $2
RETURNING ci.id, ci.cart_id, ci.dish_id, ci.quantity, ci.created_at, ci.updated_at
`

type UpdateCartItemQuantityParams struct {
	ID       pgtype.UUID `json:"id"`
	UserID   pgtype.UUID `json:"user_id"`
	Quantity int32       `json:"quantity"`
}

func (q *Queries) UpdateCartItemQuantity(ctx context.Context, arg UpdateCartItemQuantityParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, updateCartItemQuantity, arg.ID, arg.UserID, arg.Quantity)
	var i CartItem
	err := row.Scan(
		&i.ID,
		&i.CartID,
		&i.DishID,
		&i.Quantity,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertCart = `-- name: UpsertCart :one
INSERT INTO carts (user_id) VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
RETURNING id, user_id, created_at, updated_at
`

// UpsertCart returns the user's cart, creating it if needed. Safe under
// concurrent first adds.
func (q *Queries) UpsertCart(ctx context.Context, userID pgtype.UUID) (Cart, error) {
	row := q.db.QueryRow(ctx, upsertCart, userID)
	var i Cart
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertCartItem = `-- name: UpsertCartItem :one
INSERT INTO cart_items (cart_id, dish_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, dish_id) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()
WHERE cart_items.quantity + EXCLUDED.quantity <= $4
RETURNING id, cart_id, dish_id, quantity, created_at, updated_at, (xmax = 0) AS inserted
`

type UpsertCartItemParams struct {
	CartID      pgtype.UUID `json:"cart_id"`
	DishID      pgtype.UUID `json:"dish_id"`
	Quantity    int32       `json:"quantity"`
	MaxQuantity int32       `json:"max_quantity"`
}

type UpsertCartItemRow struct {
	ID        pgtype.UUID        `json:"id"`
	CartID    pgtype.UUID        `json:"cart_id"`
	DishID    pgtype.UUID        `json:"dish_id"`
	Quantity  int32              `json:"quantity"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
	Inserted  bool               `json:"inserted"`
}

// UpsertCartItem adds quantity to the line for (cart, dish) in a single
// statement. Inserted is true when the line did not exist before. When the
// sum would exceed MaxQuantity no row is returned.
func (q *Queries) UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) (UpsertCartItemRow, error) {
	row := q.db.QueryRow(ctx, upsertCartItem,
		arg.CartID,
		arg.DishID,
		arg.Quantity,
		arg.MaxQuantity,
	)
	var i UpsertCartItemRow
	err := row.Scan(
		&i.ID,
		&i.CartID,
		&i.DishID,
		&i.Quantity,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.Inserted,
	)
	return i, err
}
