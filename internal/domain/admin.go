package domain

import (
	"context"

	"github.com/dukerupert/foodmania/internal/money"
	"github.com/google/uuid"
)

// Analytics is the admin dashboard snapshot.
type Analytics struct {
	TotalUsers       int64         `json:"totalUsers"`
	TotalDishes      int64         `json:"totalDishes"`
	TotalOrders      int64         `json:"totalOrders"`
	TotalReviews     int64         `json:"totalReviews"`
	TotalRevenue     money.Cents   `json:"totalRevenue"`
	OrderStatusStats []StatusCount `json:"orderStatusStats"`
	OrdersPerDay     []DailyCount  `json:"ordersPerDay"`
	RecentOrders     []Order       `json:"recentOrders"`
	TopDishes        []TopDish     `json:"topDishes"`
	ActiveDeliveries []Order       `json:"activeDeliveries"`
}

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int64       `json:"count"`
}

// DailyCount is the number of orders placed on one day (YYYY-MM-DD, UTC).
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// TopDish is a best seller by number of orders.
type TopDish struct {
	DishID        uuid.UUID   `json:"dishId"`
	Name          string      `json:"name"`
	Price         money.Cents `json:"price"`
	ImageURL      string      `json:"image,omitempty"`
	OrderCount    int64       `json:"orderCount"`
	TotalQuantity int64       `json:"totalQuantity"`
}

// AdminService provides dashboard and user management operations.
type AdminService interface {
	Analytics(ctx context.Context) (*Analytics, error)
	ListUsers(ctx context.Context, params UserListParams) (*Page[User], error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role Role) (*User, error)

	// DeleteUser removes an account with its cart, orders and reviews.
	// Admins cannot delete themselves.
	DeleteUser(ctx context.Context, actorID, id uuid.UUID) error
}
