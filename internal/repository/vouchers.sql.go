package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const voucherColumns = `id, code, name, description, discount_type, discount_value, min_order_cents,
    max_discount_cents, usage_limit, used_count, is_active, expires_at, created_at, updated_at`

func scanVoucher(row interface{ Scan(...any) error }, i *Voucher, extra ...any) error {
	dest := []any{
		&i.ID,
		&i.Code,
		&i.Name,
		&i.Description,
		&i.DiscountType,
		&i.DiscountValue,
		&i.MinOrderCents,
		&i.MaxDiscountCents,
		&i.UsageLimit,
		&i.UsedCount,
		&i.IsActive,
		&i.ExpiresAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

const countOrdersForVoucher = `-- name: CountOrdersForVoucher :one
SELECT count(*) FROM orders WHERE voucher_id = $1
`

func (q *Queries) CountOrdersForVoucher(ctx context.Context, voucherID pgtype.UUID) (int64, error) {
	row := q.db.QueryRow(ctx, countOrdersForVoucher, voucherID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

// voucherFilter matches the admin listing filters: $1 search, $2 status.
const voucherFilter = `
WHERE ($1::text = '' OR code ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%')
  AND ($2::text = ''
    OR ($2 = 'active' AND is_active AND (expires_at IS NULL OR expires_at > now()))
    OR ($2 = 'expired' AND (NOT is_active OR expires_at <= now())))
`

const countVouchers = `-- name: CountVouchers :one
SELECT count(*) FROM vouchers` + voucherFilter

type CountVouchersParams struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

func (q *Queries) CountVouchers(ctx context.Context, arg CountVouchersParams) (int64, error) {
	row := q.db.QueryRow(ctx, countVouchers, arg.Search, arg.Status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createVoucher = `-- name: CreateVoucher :one
INSERT INTO vouchers (code, name, description, discount_type, discount_value, min_order_cents,
    max_discount_cents, usage_limit, is_active, expires_at)
VALUES (upper($1), $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + voucherColumns

type CreateVoucherParams struct {
	Code             string             `json:"code"`
	Name             string             `json:"name"`
	Description      pgtype.Text        `json:"description"`
	DiscountType     string             `json:"discount_type"`
	DiscountValue    int64              `json:"discount_value"`
	MinOrderCents    int64              `json:"min_order_cents"`
	MaxDiscountCents pgtype.Int8        `json:"max_discount_cents"`
	UsageLimit       pgtype.Int4        `json:"usage_limit"`
	IsActive         bool               `json:"is_active"`
	ExpiresAt        pgtype.Timestamptz `json:"expires_at"`
}

func (q *Queries) CreateVoucher(ctx context.Context, arg CreateVoucherParams) (Voucher, error) {
	row := q.db.QueryRow(ctx, createVoucher,
		arg.Code,
		arg.Name,
		arg.Description,
		arg.DiscountType,
		arg.DiscountValue,
		arg.MinOrderCents,
		arg.MaxDiscountCents,
		arg.UsageLimit,
		arg.IsActive,
		arg.ExpiresAt,
	)
	var i Voucher
	err := scanVoucher(row, &i)
	return i, err
}

const deleteVoucher = `-- name: DeleteVoucher :execrows
DELETE FROM vouchers WHERE id = $1
`

func (q *Queries) DeleteVoucher(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteVoucher, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getVoucher = `-- name: GetVoucher :one
SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1
`

func (q *Queries) GetVoucher(ctx context.Context, id pgtype.UUID) (Voucher, error) {
	row := q.db.QueryRow(ctx, getVoucher, id)
	var i Voucher
	err := scanVoucher(row, &i)
	return i, err
}

const getVoucherByCode = `-- name: GetVoucherByCode :one
SELECT ` + voucherColumns + ` FROM vouchers WHERE code = upper($1)
`

func (q *Queries) GetVoucherByCode(ctx context.Context, code string) (Voucher, error) {
	row := q.db.QueryRow(ctx, getVoucherByCode, code)
	var i Voucher
	err := scanVoucher(row, &i)
	return i, err
}

const listVouchers = `-- name: ListVouchers :many
SELECT ` + voucherColumns + `,
    (SELECT count(*) FROM orders o WHERE o.voucher_id = vouchers.id)::bigint AS order_count
FROM vouchers` + voucherFilter + `
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

type ListVouchersParams struct {
	Search string `json:"search"`
	Status string `json:"status"`
	Limit  int32  `json:"limit"`
	Offset int32  `json:"offset"`
}

type ListVouchersRow struct {
	Voucher    Voucher `json:"voucher"`
	OrderCount int64   `json:"order_count"`
}

func (q *Queries) ListVouchers(ctx context.Context, arg ListVouchersParams) ([]ListVouchersRow, error) {
	rows, err := q.db.Query(ctx, listVouchers, arg.Search, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListVouchersRow
	for rows.Next() {
		var i ListVouchersRow
		if err := scanVoucher(rows, &i.Voucher, &i.OrderCount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const redeemVoucher = `-- name: RedeemVoucher :one
UPDATE vouchers
SET used_count = used_count + 1, updated_at = now()
WHERE id = $1
  AND is_active
  AND (expires_at IS NULL OR expires_at > now())
  AND (usage_limit IS NULL OR used_count < usage_limit)
RETURNING used_count
`

// RedeemVoucher is the only statement that increments used_count. The
// predicate repeats the eligibility checks so concurrent redemptions can never
// exceed usage_limit; it returns pgx.ErrNoRows when the voucher is no longer
// redeemable.
func (q *Queries) RedeemVoucher(ctx context.Context, id pgtype.UUID) (int32, error) {
	row := q.db.QueryRow(ctx, redeemVoucher, id)
	var usedCount int32
	err := row.Scan(&usedCount)
	return usedCount, err
}

const updateVoucher = `-- name: UpdateVoucher :one
UPDATE vouchers SET
    name = COALESCE($2, name),
    description = COALESCE($3, description),
    discount_value = COALESCE($4, discount_value),
    min_order_cents = COALESCE($5, min_order_cents),
    max_discount_cents = COALESCE($6, max_discount_cents),
    usage_limit = COALESCE($7, usage_limit),
    is_active = COALESCE($8, is_active),
    expires_at = COALESCE($9, expires_at),
    updated_at = now()
WHERE id = $1
RETURNING ` + voucherColumns

type UpdateVoucherParams struct {
	ID               pgtype.UUID        `json:"id"`
	Name             pgtype.Text        `json:"name"`
	Description      pgtype.Text        `json:"description"`
	DiscountValue    pgtype.Int8        `json:"discount_value"`
	MinOrderCents    pgtype.Int8        `json:"min_order_cents"`
	MaxDiscountCents pgtype.Int8        `json:"max_discount_cents"`
	UsageLimit       pgtype.Int4        `json:"usage_limit"`
	IsActive         pgtype.Bool        `json:"is_active"`
	ExpiresAt        pgtype.Timestamptz `json:"expires_at"`
}

func (q *Queries) UpdateVoucher(ctx context.Context, arg UpdateVoucherParams) (Voucher, error) {
	row := q.db.QueryRow(ctx, updateVoucher,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.DiscountValue,
		arg.MinOrderCents,
		arg.MaxDiscountCents,
		arg.UsageLimit,
		arg.IsActive,
		arg.ExpiresAt,
	)
	var i Voucher
	err := scanVoucher(row, &i)
	return i, err
}
