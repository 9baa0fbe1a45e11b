package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

//go:generate mockgen -source=querier.go -destination=mock_querier.go -package=repository

// Querier is every statement in the package. *Queries implements it over a
// pool or a transaction.
type Querier interface {
	CompleteCheckoutSession(ctx context.Context, id string) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
	CountDishes(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context, arg CountOrdersParams) (int64, error)
	CountOrdersByStatus(ctx context.Context) ([]CountOrdersByStatusRow, error)
	CountOrdersForVoucher(ctx context.Context, voucherID pgtype.UUID) (int64, error)
	CountOrdersPerDay(ctx context.Context, since pgtype.Timestamptz) ([]CountOrdersPerDayRow, error)
	CountReviews(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context, search string) (int64, error)
	CountVouchers(ctx context.Context, arg CountVouchersParams) (int64, error)
	CreateCheckoutSession(ctx context.Context, arg CreateCheckoutSessionParams) (CheckoutSession, error)
	CreateDish(ctx context.Context, arg CreateDishParams) (Dish, error)
	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error)
	CreateReview(ctx context.Context, arg CreateReviewParams) (Review, error)
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	CreateVoucher(ctx context.Context, arg CreateVoucherParams) (Voucher, error)
	DeleteCart(ctx context.Context, id pgtype.UUID) (int64, error)
	DeleteCartByUser(ctx context.Context, userID pgtype.UUID) (int64, error)
	DeleteCartItemForUser(ctx context.Context, arg DeleteCartItemForUserParams) (int64, error)
	DeleteDish(ctx context.Context, id pgtype.UUID) (int64, error)
	DeleteOrder(ctx context.Context, id pgtype.UUID) (int64, error)
	DeleteReview(ctx context.Context, id pgtype.UUID) (int64, error)
	DeleteUser(ctx context.Context, id pgtype.UUID) (int64, error)
	DeleteVoucher(ctx context.Context, id pgtype.UUID) (int64, error)
	GetCartByUser(ctx context.Context, userID pgtype.UUID) (Cart, error)
	GetCartItemForUser(ctx context.Context, arg GetCartItemForUserParams) (ListCartItemsRow, error)
	GetDish(ctx context.Context, id pgtype.UUID) (Dish, error)
	GetDishRating(ctx context.Context, dishID pgtype.UUID) (GetDishRatingRow, error)
	GetOrder(ctx context.Context, id pgtype.UUID) (OrderDetailRow, error)
	GetOrderByPaymentID(ctx context.Context, paymentID string) (Order, error)
	GetOrderForUser(ctx context.Context, arg GetOrderForUserParams) (OrderDetailRow, error)
	GetReview(ctx context.Context, id pgtype.UUID) (Review, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id pgtype.UUID) (User, error)
	GetVoucher(ctx context.Context, id pgtype.UUID) (Voucher, error)
	GetVoucherByCode(ctx context.Context, code string) (Voucher, error)
	ListActiveDeliveries(ctx context.Context, statuses []string) ([]OrderDetailRow, error)
	ListCartItems(ctx context.Context, cartID pgtype.UUID) ([]ListCartItemsRow, error)
	ListDishes(ctx context.Context) ([]Dish, error)
	ListOrderItems(ctx context.Context, orderIds []pgtype.UUID) ([]OrderItem, error)
	ListOrders(ctx context.Context, arg ListOrdersParams) ([]OrderDetailRow, error)
	ListOrdersByUser(ctx context.Context, userID pgtype.UUID) ([]OrderDetailRow, error)
	ListRecentOrders(ctx context.Context, limit int32) ([]OrderDetailRow, error)
	ListReviewsByDish(ctx context.Context, dishID pgtype.UUID) ([]ListReviewsByDishRow, error)
	ListUsers(ctx context.Context, arg ListUsersParams) ([]ListUsersRow, error)
	ListVouchers(ctx context.Context, arg ListVouchersParams) ([]ListVouchersRow, error)
	LockCartByUser(ctx context.Context, userID pgtype.UUID) (Cart, error)
	LockCheckoutSession(ctx context.Context, id string) (CheckoutSession, error)
	LockOrder(ctx context.Context, id pgtype.UUID) (Order, error)
	RedeemVoucher(ctx context.Context, id pgtype.UUID) (int32, error)
	SearchDishes(ctx context.Context, arg SearchDishesParams) ([]SearchDishesRow, error)
	SetDishImage(ctx context.Context, arg SetDishImageParams) (Dish, error)
	SumRevenue(ctx context.Context) (int64, error)
	TopDishes(ctx context.Context, limit int32) ([]TopDishesRow, error)
	UpdateCartItemQuantity(ctx context.Context, arg UpdateCartItemQuantityParams) (CartItem, error)
	UpdateDish(ctx context.Context, arg UpdateDishParams) (Dish, error)
	UpdateOrderDelivery(ctx context.Context, arg UpdateOrderDeliveryParams) (Order, error)
	UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error)
	UpdatePaymentStatusByPaymentID(ctx context.Context, arg UpdatePaymentStatusByPaymentIDParams) (int64, error)
	UpdateReview(ctx context.Context, arg UpdateReviewParams) (Review, error)
	UpdateUserPassword(ctx context.Context, arg UpdateUserPasswordParams) error
	UpdateUserRole(ctx context.Context, arg UpdateUserRoleParams) (User, error)
	UpdateVoucher(ctx context.Context, arg UpdateVoucherParams) (Voucher, error)
	UpsertCart(ctx context.Context, userID pgtype.UUID) (Cart, error)
	UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) (UpsertCartItemRow, error)
}

var _ Querier = (*Queries)(nil)
