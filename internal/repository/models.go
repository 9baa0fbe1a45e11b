package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Cart struct {
	ID        pgtype.UUID        `json:"id"`
	UserID    pgtype.UUID        `json:"user_id"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type CartItem struct {
	ID        pgtype.UUID        `json:"id"`
	CartID    pgtype.UUID        `json:"cart_id"`
	DishID    pgtype.UUID        `json:"dish_id"`
	Quantity  int32              `json:"quantity"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type CheckoutSession struct {
	ID               string             `json:"id"`
	UserID           pgtype.UUID        `json:"user_id"`
	CartID           pgtype.UUID        `json:"cart_id"`
	VoucherID        pgtype.UUID        `json:"voucher_id"`
	Address          string             `json:"address"`
	SubtotalCents    int64              `json:"subtotal_cents"`
	DiscountCents    int64              `json:"discount_cents"`
	TaxCents         int64              `json:"tax_cents"`
	DeliveryFeeCents int64              `json:"delivery_fee_cents"`
	TotalCents       int64              `json:"total_cents"`
	Items            []byte             `json:"items"`
	Status           string             `json:"status"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	CompletedAt      pgtype.Timestamptz `json:"completed_at"`
}

type Dish struct {
	ID          pgtype.UUID        `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	PriceCents  int64              `json:"price_cents"`
	ImageUrl    pgtype.Text        `json:"image_url"`
	Category    pgtype.Text        `json:"category"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type Order struct {
	ID               pgtype.UUID        `json:"id"`
	UserID           pgtype.UUID        `json:"user_id"`
	VoucherID        pgtype.UUID        `json:"voucher_id"`
	Status           string             `json:"status"`
	PaymentStatus    string             `json:"payment_status"`
	PaymentID        string             `json:"payment_id"`
	Address          string             `json:"address"`
	CurrentLocation  pgtype.Text        `json:"current_location"`
	SubtotalCents    int64              `json:"subtotal_cents"`
	DiscountCents    int64              `json:"discount_cents"`
	TaxCents         int64              `json:"tax_cents"`
	DeliveryFeeCents int64              `json:"delivery_fee_cents"`
	TotalCents       int64              `json:"total_cents"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type OrderItem struct {
	ID             pgtype.UUID        `json:"id"`
	OrderID        pgtype.UUID        `json:"order_id"`
	DishID         pgtype.UUID        `json:"dish_id"`
	DishName       string             `json:"dish_name"`
	UnitPriceCents int64              `json:"unit_price_cents"`
	Quantity       int32              `json:"quantity"`
	LineTotalCents int64              `json:"line_total_cents"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

type Review struct {
	ID        pgtype.UUID        `json:"id"`
	UserID    pgtype.UUID        `json:"user_id"`
	DishID    pgtype.UUID        `json:"dish_id"`
	Rating    int16              `json:"rating"`
	Comment   pgtype.Text        `json:"comment"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type User struct {
	ID           pgtype.UUID        `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	FirstName    string             `json:"first_name"`
	LastName     string             `json:"last_name"`
	Phone        pgtype.Text        `json:"phone"`
	Role         string             `json:"role"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Voucher struct {
	ID               pgtype.UUID        `json:"id"`
	Code             string             `json:"code"`
	Name             string             `json:"name"`
	Description      pgtype.Text        `json:"description"`
	DiscountType     string             `json:"discount_type"`
	DiscountValue    int64              `json:"discount_value"`
	MinOrderCents    int64              `json:"min_order_cents"`
	MaxDiscountCents pgtype.Int8        `json:"max_discount_cents"`
	UsageLimit       pgtype.Int4        `json:"usage_limit"`
	UsedCount        int32              `json:"used_count"`
	IsActive         bool               `json:"is_active"`
	ExpiresAt        pgtype.Timestamptz `json:"expires_at"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}
