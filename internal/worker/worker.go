// Package worker consumes order events and sends customer notifications.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/email"
	"github.com/dukerupert/foodmania/internal/events"
	"github.com/dukerupert/foodmania/internal/telemetry"
)

// Config holds worker configuration
type Config struct {
	// WorkerID uniquely identifies this worker instance
	WorkerID string

	// SubjectPrefix must match the publisher's prefix.
	SubjectPrefix string

	// QueueGroup spreads events across worker replicas; each event is
	// delivered to one member of the group.
	QueueGroup string

	// MaxConcurrency is the maximum number of events handled at once
	MaxConcurrency int

	// Timeout bounds the handling of a single event.
	Timeout time.Duration
}

// OrderReader loads an order with its customer and items.
type OrderReader interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
}

// Mailer sends order notifications.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, data email.OrderConfirmationEmail) error
	SendOrderStatus(ctx context.Context, data email.OrderStatusEmail) error
}

// Worker processes order events
type Worker struct {
	config Config
	conn   *nats.Conn
	orders OrderReader
	mailer Mailer
	logger *slog.Logger
}

// NewWorker creates a new event worker
func NewWorker(conn *nats.Conn, orders OrderReader, mailer Mailer, config Config, logger *slog.Logger) *Worker {
	if config.WorkerID == "" {
		config.WorkerID = fmt.Sprintf("worker-%s", uuid.New().String()[:8])
	}
	if config.SubjectPrefix == "" {
		config.SubjectPrefix = events.DefaultSubjectPrefix
	}
	if config.QueueGroup == "" {
		config.QueueGroup = "notifications"
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 5
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return &Worker{
		config: config,
		conn:   conn,
		orders: orders,
		mailer: mailer,
		logger: logger,
	}
}

// Subject is the wildcard subject the worker listens on.
func (w *Worker) Subject() string {
	return events.Subject(w.config.SubjectPrefix, "order.>")
}

// Start consumes events until the context is cancelled, then drains the
// subscription and waits for in-flight events.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("worker starting",
		"worker_id", w.config.WorkerID,
		"subject", w.Subject(),
		"queue", w.config.QueueGroup,
		"max_concurrency", w.config.MaxConcurrency,
	)

	sem := make(chan struct{}, w.config.MaxConcurrency)
	var wg sync.WaitGroup

	sub, err := w.conn.QueueSubscribe(w.Subject(), w.config.QueueGroup, func(msg *nats.Msg) {
		// nats delivers on one goroutine per subscription; blocking here
		// applies back pressure once every slot is busy
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			msgCtx := ctx
			if rid := msg.Header.Get("X-Request-ID"); rid != "" {
				msgCtx = domain.NewContextWithRequestID(ctx, rid)
			}
			if err := w.Handle(msgCtx, msg.Data); err != nil {
				w.logger.ErrorContext(msgCtx, "event failed",
					"subject", msg.Subject,
					"error", err,
				)
				telemetry.CaptureJobError(msgCtx, msg.Subject, err)
			}
		}()
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", w.Subject(), err)
	}

	<-ctx.Done()
	w.logger.Info("worker shutting down", "worker_id", w.config.WorkerID)

	if err := sub.Drain(); err != nil {
		w.logger.Warn("failed to drain subscription", "error", err)
	}
	wg.Wait()
	return nil
}

// Handle processes a single encoded event.
func (w *Worker) Handle(ctx context.Context, data []byte) error {
	var event domain.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal order event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, w.config.Timeout)
	defer cancel()

	switch event.Type {
	case domain.EventOrderCreated, domain.EventOrderStatusChanged:
	default:
		w.logger.DebugContext(ctx, "ignoring event", "type", event.Type)
		return nil
	}

	order, err := w.orders.Get(ctx, event.OrderID)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			w.logger.WarnContext(ctx, "order gone before notification", "order_id", event.OrderID)
			return nil
		}
		return fmt.Errorf("failed to load order %s: %w", event.OrderID, err)
	}
	if order.Customer == nil || order.Customer.Email == "" {
		w.logger.WarnContext(ctx, "order has no customer email", "order_id", order.ID)
		return nil
	}

	if event.Type == domain.EventOrderCreated {
		err = w.mailer.SendOrderConfirmation(ctx, email.NewOrderConfirmation(order, *order.Customer))
	} else {
		// the order may have moved on since the event; notify about the
		// status in the event
		if event.Status != "" {
			order.Status = event.Status
		}
		err = w.mailer.SendOrderStatus(ctx, email.NewOrderStatus(order, *order.Customer))
	}
	recordEmail(event.Type, err)
	if err != nil {
		return err
	}

	w.logger.InfoContext(ctx, "notification sent",
		"type", event.Type,
		"order_id", order.ID,
	)
	return nil
}

func recordEmail(eventType string, err error) {
	if telemetry.Business == nil {
		return
	}
	result := "sent"
	if err != nil {
		result = "failed"
	}
	telemetry.Business.EmailsSent.WithLabelValues(eventType, result).Inc()
}
