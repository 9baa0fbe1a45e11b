package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Dashboard sizes.
const (
	analyticsDays         = 7
	analyticsRecentOrders = 5
	analyticsTopDishes    = 5
)

// AdminService implements domain.AdminService.
type AdminService struct {
	repo   repository.Querier
	logger *slog.Logger
	now    func() time.Time
}

var _ domain.AdminService = (*AdminService)(nil)

// NewAdminService creates a new AdminService instance
func NewAdminService(repo repository.Querier, logger *slog.Logger) *AdminService {
	return &AdminService{repo: repo, logger: logger, now: time.Now}
}

// Analytics builds the dashboard snapshot. The independent queries run
// concurrently on the pool.
func (s *AdminService) Analytics(ctx context.Context) (*domain.Analytics, error) {
	const op = "admin.analytics"

	a := &domain.Analytics{}
	var (
		byStatus   []repository.CountOrdersByStatusRow
		perDay     []repository.CountOrdersPerDayRow
		recent     []repository.OrderDetailRow
		top        []repository.TopDishesRow
		deliveries []repository.OrderDetailRow
		revenue    int64
	)

	today := s.now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(analyticsDays - 1))

	active := make([]string, 0, len(domain.ActiveDeliveryStatuses))
	for _, st := range domain.ActiveDeliveryStatuses {
		active = append(active, string(st))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { a.TotalUsers, err = s.repo.CountUsers(gctx, ""); return })
	g.Go(func() (err error) { a.TotalDishes, err = s.repo.CountDishes(gctx); return })
	g.Go(func() (err error) {
		a.TotalOrders, err = s.repo.CountOrders(gctx, repository.CountOrdersParams{})
		return
	})
	g.Go(func() (err error) { a.TotalReviews, err = s.repo.CountReviews(gctx); return })
	g.Go(func() (err error) { revenue, err = s.repo.SumRevenue(gctx); return })
	g.Go(func() (err error) { byStatus, err = s.repo.CountOrdersByStatus(gctx); return })
	g.Go(func() (err error) { perDay, err = s.repo.CountOrdersPerDay(gctx, postgres.Timestamptz(since)); return })
	g.Go(func() (err error) { recent, err = s.repo.ListRecentOrders(gctx, analyticsRecentOrders); return })
	g.Go(func() (err error) { top, err = s.repo.TopDishes(gctx, analyticsTopDishes); return })
	g.Go(func() (err error) { deliveries, err = s.repo.ListActiveDeliveries(gctx, active); return })
	if err := g.Wait(); err != nil {
		return nil, domain.Internal(err, op, "failed to load analytics")
	}

	a.TotalRevenue = money.Cents(revenue)

	a.OrderStatusStats = make([]domain.StatusCount, 0, len(byStatus))
	for _, r := range byStatus {
		a.OrderStatusStats = append(a.OrderStatusStats, domain.StatusCount{Status: domain.OrderStatus(r.Status), Count: r.Count})
	}

	a.OrdersPerDay = fillDays(perDay, since, analyticsDays)

	a.TopDishes = make([]domain.TopDish, 0, len(top))
	for _, r := range top {
		a.TopDishes = append(a.TopDishes, domain.TopDish{
			DishID:        postgres.FromUUID(r.DishID),
			Name:          r.Name,
			Price:         money.Cents(r.PriceCents),
			ImageURL:      r.ImageUrl.String,
			OrderCount:    r.OrderCount,
			TotalQuantity: r.TotalQuantity,
		})
	}

	recentOrders := ordersFromDetails(recent)
	activeOrders := ordersFromDetails(deliveries)
	if err := attachItems(ctx, s.repo, append(append([]*domain.Order{}, recentOrders...), activeOrders...)); err != nil {
		return nil, domain.Internal(err, op, "failed to list order items")
	}
	a.RecentOrders = derefOrders(recentOrders)
	a.ActiveDeliveries = derefOrders(activeOrders)

	return a, nil
}

// fillDays returns one entry per day starting at since, with zero counts for
// days without orders.
func fillDays(rows []repository.CountOrdersPerDayRow, since time.Time, days int) []domain.DailyCount {
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		if r.Day.Valid {
			counts[r.Day.Time.Format(time.DateOnly)] = r.Count
		}
	}

	out := make([]domain.DailyCount, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i).Format(time.DateOnly)
		out = append(out, domain.DailyCount{Date: day, Count: counts[day]})
	}
	return out
}

func (s *AdminService) ListUsers(ctx context.Context, params domain.UserListParams) (*domain.Page[domain.User], error) {
	const op = "admin.list_users"

	page, limit := domain.NormalizePage(params.Page, params.Limit)
	search := strings.TrimSpace(params.Search)

	total, err := s.repo.CountUsers(ctx, search)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to count users")
	}

	rows, err := s.repo.ListUsers(ctx, repository.ListUsersParams{
		Search: search,
		Limit:  int32(limit),
		Offset: int32(domain.Offset(page, limit)),
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list users")
	}

	users := make([]domain.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, domain.User{
			ID:         postgres.FromUUID(r.ID),
			Email:      r.Email,
			FirstName:  r.FirstName,
			LastName:   r.LastName,
			Phone:      r.Phone.String,
			Role:       domain.Role(r.Role),
			OrderCount: r.OrderCount,
			CreatedAt:  r.CreatedAt.Time,
			UpdatedAt:  r.UpdatedAt.Time,
		})
	}

	return domain.NewPage(users, page, limit, total), nil
}

func (s *AdminService) UpdateUserRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.User, error) {
	const op = "admin.update_role"

	if !role.Valid() {
		return nil, domain.WithOp(domain.ErrInvalidRole, op)
	}

	u, err := s.repo.UpdateUserRole(ctx, repository.UpdateUserRoleParams{
		ID:   postgres.UUID(id),
		Role: string(role),
	})
	if err != nil {
		return nil, dbErr(err, domain.ErrUserNotFound, op, "failed to update role")
	}

	s.logger.InfoContext(ctx, "user role changed", "user_id", id, "role", role)

	return &domain.User{
		ID:        postgres.FromUUID(u.ID),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone.String,
		Role:      domain.Role(u.Role),
		CreatedAt: u.CreatedAt.Time,
		UpdatedAt: u.UpdatedAt.Time,
	}, nil
}

// DeleteUser removes an account. Carts, orders and reviews cascade.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, id uuid.UUID) error {
	const op = "admin.delete_user"

	if actorID == id {
		return domain.WithOp(domain.ErrCannotDeleteSelf, op)
	}

	n, err := s.repo.DeleteUser(ctx, postgres.UUID(id))
	if err != nil {
		return domain.Internal(err, op, "failed to delete user")
	}
	if n == 0 {
		return domain.WithOp(domain.ErrUserNotFound, op)
	}

	s.logger.InfoContext(ctx, "user deleted", "user_id", id, "by", actorID)
	return nil
}
