package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/events"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// OrderService implements domain.OrderService.
type OrderService struct {
	repo      repository.Querier
	tx        postgres.TxRunner
	publisher events.Publisher
	logger    *slog.Logger
}

var _ domain.OrderService = (*OrderService)(nil)

// NewOrderService creates a new OrderService instance
func NewOrderService(repo repository.Querier, tx postgres.TxRunner, publisher events.Publisher, logger *slog.Logger) *OrderService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &OrderService{repo: repo, tx: tx, publisher: publisher, logger: logger}
}

// List returns a page of orders, newest first.
func (s *OrderService) List(ctx context.Context, params domain.OrderListParams) (*domain.Page[domain.Order], error) {
	const op = "order.list"

	if params.Status != "" && !params.Status.Valid() {
		return nil, domain.WithOp(domain.ErrInvalidOrderStatus, op)
	}

	page, limit := domain.NormalizePage(params.Page, params.Limit)
	search := strings.TrimSpace(params.Search)

	total, err := s.repo.CountOrders(ctx, repository.CountOrdersParams{
		Status: string(params.Status),
		Search: search,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to count orders")
	}

	rows, err := s.repo.ListOrders(ctx, repository.ListOrdersParams{
		Status: string(params.Status),
		Search: search,
		Limit:  int32(limit),
		Offset: int32(domain.Offset(page, limit)),
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list orders")
	}

	orders := ordersFromDetails(rows)
	if err := attachItems(ctx, s.repo, orders); err != nil {
		return nil, domain.Internal(err, op, "failed to list order items")
	}

	return domain.NewPage(derefOrders(orders), page, limit, total), nil
}

// ListForUser returns all of the user's orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	const op = "order.list_for_user"

	rows, err := s.repo.ListOrdersByUser(ctx, postgres.UUID(userID))
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list orders")
	}

	orders := ordersFromDetails(rows)
	if err := attachItems(ctx, s.repo, orders); err != nil {
		return nil, domain.Internal(err, op, "failed to list order items")
	}
	return derefOrders(orders), nil
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	const op = "order.get"

	row, err := s.repo.GetOrder(ctx, postgres.UUID(id))
	if err != nil {
		return nil, dbErr(err, domain.ErrOrderNotFound, op, "failed to get order")
	}
	return s.withItems(ctx, orderFromDetail(row), op)
}

func (s *OrderService) GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Order, error) {
	const op = "order.get_for_user"

	row, err := s.repo.GetOrderForUser(ctx, repository.GetOrderForUserParams{
		ID:     postgres.UUID(id),
		UserID: postgres.UUID(userID),
	})
	if err != nil {
		return nil, dbErr(err, domain.ErrOrderNotFound, op, "failed to get order")
	}
	return s.withItems(ctx, orderFromDetail(row), op)
}

func (s *OrderService) withItems(ctx context.Context, o *domain.Order, op string) (*domain.Order, error) {
	if err := attachItems(ctx, s.repo, []*domain.Order{o}); err != nil {
		return nil, domain.Internal(err, op, "failed to list order items")
	}
	return o, nil
}

// UpdateStatus changes the fulfilment status, the payment status, or both.
// Status changes must follow the order lifecycle.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, update domain.OrderStatusUpdate) (*domain.Order, error) {
	const op = "order.update_status"

	if update.Status == nil && update.PaymentStatus == nil {
		return nil, domain.WithOp(domain.ErrNothingToUpdate, op)
	}
	if update.PaymentStatus != nil && !update.PaymentStatus.Valid() {
		return nil, domain.WithOp(domain.ErrInvalidPaymentStatus, op)
	}

	var prev domain.OrderStatus
	var updated repository.Order

	err := s.tx.InTx(ctx, func(q repository.Querier) error {
		current, err := q.LockOrder(ctx, postgres.UUID(id))
		if err != nil {
			return dbErr(err, domain.ErrOrderNotFound, op, "failed to lock order")
		}
		prev = domain.OrderStatus(current.Status)

		params := repository.UpdateOrderStatusParams{ID: current.ID}
		if update.Status != nil {
			if err := domain.CanTransition(prev, *update.Status); err != nil {
				return withOp(err, op)
			}
			params.Status = postgres.Text(string(*update.Status))
		}
		if update.PaymentStatus != nil {
			params.PaymentStatus = postgres.Text(string(*update.PaymentStatus))
		}

		updated, err = q.UpdateOrderStatus(ctx, params)
		if err != nil {
			return dbErr(err, domain.ErrOrderNotFound, op, "failed to update order")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.afterUpdate(ctx, prev, updated, op)
}

// UpdateDelivery changes the fulfilment status and courier location together.
func (s *OrderService) UpdateDelivery(ctx context.Context, id uuid.UUID, update domain.DeliveryUpdate) (*domain.Order, error) {
	const op = "order.update_delivery"

	var prev domain.OrderStatus
	var updated repository.Order

	err := s.tx.InTx(ctx, func(q repository.Querier) error {
		current, err := q.LockOrder(ctx, postgres.UUID(id))
		if err != nil {
			return dbErr(err, domain.ErrOrderNotFound, op, "failed to lock order")
		}
		prev = domain.OrderStatus(current.Status)

		if err := domain.CanTransition(prev, update.Status); err != nil {
			return withOp(err, op)
		}

		location := current.CurrentLocation
		if loc := strings.TrimSpace(update.Location); loc != "" {
			location = pgtype.Text{String: loc, Valid: true}
		}

		updated, err = q.UpdateOrderDelivery(ctx, repository.UpdateOrderDeliveryParams{
			ID:              current.ID,
			Status:          string(update.Status),
			CurrentLocation: location,
		})
		if err != nil {
			return dbErr(err, domain.ErrOrderNotFound, op, "failed to update delivery")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.afterUpdate(ctx, prev, updated, op)
}

// afterUpdate reloads the full order view and publishes a status change.
func (s *OrderService) afterUpdate(ctx context.Context, prev domain.OrderStatus, updated repository.Order, op string) (*domain.Order, error) {
	order, err := s.Get(ctx, postgres.FromUUID(updated.ID))
	if err != nil {
		return nil, err
	}

	if order.Status != prev {
		s.logger.InfoContext(ctx, "order status changed",
			"order_id", order.ID,
			"from", prev,
			"to", order.Status,
		)
		event := domain.OrderEvent{
			Type:      domain.EventOrderStatusChanged,
			OrderID:   order.ID,
			UserID:    order.UserID,
			Status:    order.Status,
			Total:     order.Total,
			Timestamp: time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "failed to publish order event",
				"op", op, "order_id", order.ID, "error", err)
		}
	}
	return order, nil
}

// Delete removes an order and its items.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.DeleteOrder(ctx, postgres.UUID(id))
	if err != nil {
		return domain.Internal(err, "order.delete", "failed to delete order")
	}
	if n == 0 {
		return domain.WithOp(domain.ErrOrderNotFound, "order.delete")
	}
	return nil
}

func (s *OrderService) MarkPaid(ctx context.Context, paymentRef string) (bool, error) {
	return s.setPaymentStatus(ctx, paymentRef, domain.PaymentCompleted, "order.mark_paid")
}

func (s *OrderService) MarkPaymentFailed(ctx context.Context, paymentRef string) (bool, error) {
	return s.setPaymentStatus(ctx, paymentRef, domain.PaymentFailed, "order.mark_failed")
}

func (s *OrderService) setPaymentStatus(ctx context.Context, paymentRef string, status domain.PaymentStatus, op string) (bool, error) {
	if paymentRef == "" {
		return false, nil
	}

	n, err := s.repo.UpdatePaymentStatusByPaymentID(ctx, repository.UpdatePaymentStatusByPaymentIDParams{
		PaymentID:     paymentRef,
		PaymentStatus: string(status),
	})
	if err != nil {
		return false, domain.Internal(err, op, "failed to update payment status")
	}
	if n == 0 {
		s.logger.DebugContext(ctx, "no order for payment reference", "payment_ref", paymentRef, "status", status)
		return false, nil
	}

	s.logger.InfoContext(ctx, "payment status updated", "payment_ref", paymentRef, "status", status)
	return true, nil
}

// withOp annotates a domain error with op; other errors pass through.
func withOp(err error, op string) error {
	if de, ok := err.(*domain.Error); ok {
		return domain.WithOp(de, op)
	}
	return err
}
