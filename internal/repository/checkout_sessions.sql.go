package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const checkoutSessionColumns = `id, user_id, cart_id, voucher_id, address, subtotal_cents, discount_cents,
    tax_cents, delivery_fee_cents, total_cents, items, status, created_at, completed_at`

func scanCheckoutSession(row interface{ Scan(...any) error }, i *CheckoutSession) error {
	return row.Scan(
		&i.ID,
		&i.UserID,
		&i.CartID,
		&i.VoucherID,
		&i.Address,
		&i.SubtotalCents,
		&i.DiscountCents,
		&i.TaxCents,
		&i.DeliveryFeeCents,
		&i.TotalCents,
		&i.Items,
		&i.Status,
		&i.CreatedAt,
		&i.CompletedAt,
	)
}

const completeCheckoutSession = `-- name: CompleteCheckoutSession :execrows
UPDATE checkout_sessions SET status = 'COMPLETED', completed_at = now()
WHERE id = $1 AND status = 'OPEN'
`

func (q *Queries) CompleteCheckoutSession(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, completeCheckoutSession, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createCheckoutSession = `-- name: CreateCheckoutSession :one
INSERT INTO checkout_sessions (id, user_id, cart_id, voucher_id, address, subtotal_cents,
    discount_cents, tax_cents, delivery_fee_cents, total_cents, items)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + checkoutSessionColumns

type CreateCheckoutSessionParams struct {
	ID               string      `json:"id"`
	UserID           pgtype.UUID `json:"user_id"`
	CartID           pgtype.UUID `json:"cart_id"`
	VoucherID        pgtype.UUID `json:"voucher_id"`
	Address          string      `json:"address"`
	SubtotalCents    int64       `json:"subtotal_cents"`
	DiscountCents    int64       `json:"discount_cents"`
	TaxCents         int64       `json:"tax_cents"`
	DeliveryFeeCents int64       `json:"delivery_fee_cents"`
	TotalCents       int64       `json:"total_cents"`
	Items            []byte      `json:"items"`
}

func (q *Queries) CreateCheckoutSession(ctx context.Context, arg CreateCheckoutSessionParams) (CheckoutSession, error) {
	row := q.db.QueryRow(ctx, createCheckoutSession,
		arg.ID,
		arg.UserID,
		arg.CartID,
		arg.VoucherID,
		arg.Address,
		arg.SubtotalCents,
		arg.DiscountCents,
		arg.TaxCents,
		arg.DeliveryFeeCents,
		arg.TotalCents,
		arg.Items,
	)
	var i CheckoutSession
	err := scanCheckoutSession(row, &i)
	return i, err
}

const lockCheckoutSession = `-- name: LockCheckoutSession :one
SELECT ` + checkoutSessionColumns + ` FROM checkout_sessions WHERE id = $1 FOR UPDATE
`

// LockCheckoutSession serializes concurrent deliveries of the same webhook.
func (q *Queries) LockCheckoutSession(ctx context.Context, id string) (CheckoutSession, error) {
	row := q.db.QueryRow(ctx, lockCheckoutSession, id)
	var i CheckoutSession
	err := scanCheckoutSession(row, &i)
	return i, err
}
