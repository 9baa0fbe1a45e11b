package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dukerupert/foodmania/internal/billing"
	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/events"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/pricing"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/dukerupert/foodmania/internal/voucher"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Metadata keys attached to gateway checkout sessions.
const (
	MetaUserID      = "user_id"
	MetaCartID      = "cart_id"
	MetaVoucherID   = "voucher_id"
	MetaAddress     = "address"
	MetaSubtotal    = "subtotal"
	MetaDiscount    = "discount"
	MetaTax         = "tax"
	MetaDeliveryFee = "delivery_fee"
	MetaTotal       = "total"
)

// Stripe caps metadata values at 500 characters.
const maxMetadataValue = 500

// DemoPaymentPrefix prefixes the payment reference of demo orders.
const DemoPaymentPrefix = "DEMO_"

// sessionPaymentPrefix prefixes gateway checkout session IDs, which are
// stored as the payment reference of orders confirmed from a session.
const sessionPaymentPrefix = "cs_"

// CheckoutConfig holds checkout settings.
type CheckoutConfig struct {
	SuccessURL string
	CancelURL  string

	// DemoPaymentStatus is the payment status given to demo orders.
	DemoPaymentStatus domain.PaymentStatus

	// DisableDemo rejects demo checkouts.
	DisableDemo bool
}

// CheckoutService implements domain.CheckoutService.
type CheckoutService struct {
	repo      repository.Querier
	tx        postgres.TxRunner
	engine    *pricing.Engine
	billing   billing.Provider
	publisher events.Publisher
	logger    *slog.Logger
	config    CheckoutConfig
	now       func() time.Time
}

var _ domain.CheckoutService = (*CheckoutService)(nil)

// NewCheckoutService creates a new CheckoutService instance. billingProvider
// may be nil, in which case only demo checkout is available.
func NewCheckoutService(
	repo repository.Querier,
	tx postgres.TxRunner,
	engine *pricing.Engine,
	billingProvider billing.Provider,
	publisher events.Publisher,
	logger *slog.Logger,
	config CheckoutConfig,
) *CheckoutService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if !config.DemoPaymentStatus.Valid() {
		config.DemoPaymentStatus = domain.PaymentPending
	}
	return &CheckoutService{
		repo:      repo,
		tx:        tx,
		engine:    engine,
		billing:   billingProvider,
		publisher: publisher,
		logger:    logger,
		config:    config,
		now:       time.Now,
	}
}

// pricedCart is a cart with its totals and the voucher applied to them.
type pricedCart struct {
	cartID  pgtype.UUID
	rows    []repository.ListCartItemsRow
	totals  pricing.Totals
	voucher *domain.Voucher

	// voucherErr is the reason a requested voucher was not applied.
	voucherErr error
}

// Quote prices the user's cart without writing anything.
func (s *CheckoutService) Quote(ctx context.Context, userID uuid.UUID, voucherCode string) (*domain.Quote, error) {
	const op = "checkout.quote"

	cart, err := s.repo.GetCartByUser(ctx, postgres.UUID(userID))
	if err != nil {
		return nil, dbErr(err, domain.ErrEmptyCart, op, "failed to get cart")
	}

	priced, err := s.price(ctx, s.repo, cart.ID, voucherCode, false, op)
	if err != nil {
		return nil, err
	}

	items := cartFromRows(nil, priced.rows).Items
	q := &domain.Quote{
		Items:   items,
		Totals:  priced.totals,
		Voucher: voucherSummary(priced.voucher),
	}
	if priced.voucherErr != nil {
		q.VoucherError = domain.ErrorMessage(priced.voucherErr)
	}
	return q, nil
}

// price loads the cart items and prices them. An empty cart is ErrEmptyCart.
// A voucher that fails validation is dropped unless required.
func (s *CheckoutService) price(ctx context.Context, q repository.Querier, cartID pgtype.UUID, voucherCode string, required bool, op string) (*pricedCart, error) {
	rows, err := q.ListCartItems(ctx, cartID)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list cart items")
	}
	if len(rows) == 0 {
		return nil, domain.WithOp(domain.ErrEmptyCart, op)
	}

	lines := pricingLines(rows)
	subtotal, err := pricing.Subtotal(lines)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to compute subtotal")
	}

	priced := &pricedCart{cartID: cartID, rows: rows}

	var discount money.Cents
	if voucher.NormalizeCode(voucherCode) != "" {
		v, d, err := s.applyVoucher(ctx, q, voucherCode, subtotal, op)
		switch {
		case err == nil:
			priced.voucher, discount = v, d
		case required:
			return nil, err
		case domain.IsCode(err, domain.EINTERNAL):
			return nil, err
		default:
			priced.voucherErr = err
		}
	}

	priced.totals, err = s.engine.Compute(ctx, lines, discount)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to price cart")
	}
	return priced, nil
}

func (s *CheckoutService) applyVoucher(ctx context.Context, q repository.Querier, code string, subtotal money.Cents, op string) (*domain.Voucher, money.Cents, error) {
	row, err := q.GetVoucherByCode(ctx, voucher.NormalizeCode(code))
	if err != nil {
		return nil, 0, dbErr(err, domain.ErrVoucherNotFound, op, "failed to get voucher")
	}
	v := voucherFromRepo(row)

	discount, err := voucher.Validate(v, subtotal, s.now())
	if err != nil {
		return nil, 0, err
	}
	return v, discount, nil
}

// Checkout turns the user's cart into a demo order or a gateway session.
func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	const op = "checkout.create"

	req.DeliveryAddress = strings.TrimSpace(req.DeliveryAddress)
	if req.DeliveryAddress == "" {
		return nil, domain.WithOp(domain.ErrAddressRequired, op)
	}

	if req.Demo {
		if s.config.DisableDemo {
			return nil, domain.WithOp(domain.ErrDemoCheckoutDisabled, op)
		}
		return s.demoCheckout(ctx, userID, req)
	}
	return s.gatewayCheckout(ctx, userID, req)
}

// demoCheckout commits the order in a single transaction. The cart row lock
// serializes concurrent checkouts of the same cart; the loser finds the cart
// gone and gets ErrEmptyCart.
func (s *CheckoutService) demoCheckout(ctx context.Context, userID uuid.UUID, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	const op = "checkout.demo"

	var order *domain.Order
	var priced *pricedCart

	err := s.tx.InTx(ctx, func(q repository.Querier) error {
		cart, err := q.LockCartByUser(ctx, postgres.UUID(userID))
		if err != nil {
			return dbErr(err, domain.ErrEmptyCart, op, "failed to lock cart")
		}

		priced, err = s.price(ctx, q, cart.ID, req.VoucherCode, req.RequireVoucher, op)
		if err != nil {
			return err
		}

		// Redeem before the order insert so the stored totals match the
		// voucher actually consumed.
		if priced.voucher != nil {
			if _, err := q.RedeemVoucher(ctx, postgres.UUID(priced.voucher.ID)); err != nil {
				if !postgres.IsNoRows(err) {
					return domain.Internal(err, op, "failed to redeem voucher")
				}
				if req.RequireVoucher {
					return domain.WithOp(domain.ErrVoucherLimitReached, op)
				}
				s.logger.InfoContext(ctx, "voucher exhausted during checkout, pricing without it",
					"voucher_id", priced.voucher.ID, "user_id", userID)

				priced.voucherErr = domain.WithOp(domain.ErrVoucherLimitReached, op)
				priced.voucher = nil
				priced.totals, err = s.engine.Compute(ctx, pricingLines(priced.rows), 0)
				if err != nil {
					return domain.Internal(err, op, "failed to price cart")
				}
			}
		}

		order, err = insertOrder(ctx, q, newOrderParams{
			userID:        userID,
			voucher:       priced.voucher,
			paymentStatus: s.config.DemoPaymentStatus,
			paymentID:     DemoPaymentPrefix + uuid.NewString(),
			address:       req.DeliveryAddress,
			totals:        priced.totals,
			items:         snapshotItems(priced.rows),
		}, op)
		if err != nil {
			return err
		}

		n, err := q.DeleteCart(ctx, cart.ID)
		if err != nil {
			return domain.Internal(err, op, "failed to clear cart")
		}
		if n == 0 {
			return domain.WithOp(domain.ErrEmptyCart, op)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "demo order placed",
		"order_id", order.ID,
		"user_id", userID,
		"total_cents", order.Total.Int64(),
	)
	s.publish(ctx, domain.EventOrderCreated, order)

	return &domain.CheckoutResult{
		Demo:    true,
		Order:   order,
		Totals:  priced.totals,
		Voucher: voucherSummary(priced.voucher),
	}, nil
}

// gatewayCheckout creates a hosted payment session and stores a snapshot of
// the priced cart for the webhook. The cart itself is left untouched.
func (s *CheckoutService) gatewayCheckout(ctx context.Context, userID uuid.UUID, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	const op = "checkout.session"

	if s.billing == nil {
		return nil, domain.WithOp(ErrGatewayDisabled, op)
	}

	cart, err := s.repo.GetCartByUser(ctx, postgres.UUID(userID))
	if err != nil {
		return nil, dbErr(err, domain.ErrEmptyCart, op, "failed to get cart")
	}

	priced, err := s.price(ctx, s.repo, cart.ID, req.VoucherCode, req.RequireVoucher, op)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByID(ctx, postgres.UUID(userID))
	if err != nil {
		return nil, dbErr(err, domain.ErrUserNotFound, op, "failed to get user")
	}

	params := s.sessionParams(userID, user.Email, req.DeliveryAddress, priced)

	session, err := s.billing.CreateCheckoutSession(ctx, params)
	if err != nil {
		return nil, domain.Upstream(err, op, "failed to create checkout session")
	}

	items, err := json.Marshal(snapshotItems(priced.rows))
	if err != nil {
		return nil, domain.Internal(err, op, "failed to encode session items")
	}

	var voucherID pgtype.UUID
	if priced.voucher != nil {
		voucherID = postgres.UUID(priced.voucher.ID)
	}

	_, err = s.repo.CreateCheckoutSession(ctx, repository.CreateCheckoutSessionParams{
		ID:               session.ID,
		UserID:           postgres.UUID(userID),
		CartID:           priced.cartID,
		VoucherID:        voucherID,
		Address:          req.DeliveryAddress,
		SubtotalCents:    priced.totals.Subtotal.Int64(),
		DiscountCents:    priced.totals.Discount.Int64(),
		TaxCents:         priced.totals.Tax.Int64(),
		DeliveryFeeCents: priced.totals.DeliveryFee.Int64(),
		TotalCents:       priced.totals.Total.Int64(),
		Items:            items,
	})
	// The gateway returns the same session for a repeated idempotency key.
	if err != nil && !postgres.IsUniqueViolation(err, "checkout_sessions_pkey") {
		return nil, domain.Internal(err, op, "failed to store checkout session")
	}

	s.logger.InfoContext(ctx, "checkout session created",
		"session_id", session.ID,
		"user_id", userID,
		"total_cents", priced.totals.Total.Int64(),
	)

	return &domain.CheckoutResult{
		SessionID:  session.ID,
		SessionURL: session.URL,
		Totals:     priced.totals,
		Voucher:    voucherSummary(priced.voucher),
	}, nil
}

func (s *CheckoutService) sessionParams(userID uuid.UUID, email, address string, priced *pricedCart) billing.CreateCheckoutSessionParams {
	lineItems := make([]billing.LineItem, 0, len(priced.rows)+2)
	for _, r := range priced.rows {
		lineItems = append(lineItems, billing.LineItem{
			Name:        r.DishName,
			Description: r.DishDescription,
			ImageURL:    r.DishImageUrl.String,
			UnitAmount:  r.DishPriceCents,
			Quantity:    int64(r.Quantity),
		})
	}
	if priced.totals.Tax > 0 {
		lineItems = append(lineItems, billing.LineItem{Name: "Tax", UnitAmount: priced.totals.Tax.Int64(), Quantity: 1})
	}
	if priced.totals.DeliveryFee > 0 {
		lineItems = append(lineItems, billing.LineItem{Name: "Delivery Fee", UnitAmount: priced.totals.DeliveryFee.Int64(), Quantity: 1})
	}

	meta := map[string]string{
		MetaUserID:      userID.String(),
		MetaCartID:      postgres.FromUUID(priced.cartID).String(),
		MetaAddress:     truncate(address, maxMetadataValue),
		MetaSubtotal:    strconv.FormatInt(priced.totals.Subtotal.Int64(), 10),
		MetaDiscount:    strconv.FormatInt(priced.totals.Discount.Int64(), 10),
		MetaTax:         strconv.FormatInt(priced.totals.Tax.Int64(), 10),
		MetaDeliveryFee: strconv.FormatInt(priced.totals.DeliveryFee.Int64(), 10),
		MetaTotal:       strconv.FormatInt(priced.totals.Total.Int64(), 10),
	}

	var discountName string
	if priced.voucher != nil {
		meta[MetaVoucherID] = priced.voucher.ID.String()
		discountName = priced.voucher.Code
	}

	return billing.CreateCheckoutSessionParams{
		Currency:          s.engine.Currency(),
		CustomerEmail:     email,
		LineItems:         lineItems,
		DiscountAmount:    priced.totals.Discount.Int64(),
		DiscountName:      discountName,
		SuccessURL:        s.config.SuccessURL,
		CancelURL:         s.config.CancelURL,
		ClientReferenceID: userID.String(),
		Metadata:          meta,
		IdempotencyKey:    sessionIdempotencyKey(priced, address),
	}
}

// sessionIdempotencyKey identifies a cart state. Retrying checkout for an
// unchanged cart reuses the gateway session instead of opening another.
func sessionIdempotencyKey(priced *pricedCart, address string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%x|%s|", priced.cartID.Bytes, address)
	for _, r := range priced.rows {
		fmt.Fprintf(h, "%x:%d:%d|", r.DishID.Bytes, r.Quantity, r.DishPriceCents)
	}
	t := priced.totals
	fmt.Fprintf(h, "%d|%d|%d|%d|%d", t.Subtotal, t.Discount, t.Tax, t.DeliveryFee, t.Total)
	return "checkout-" + hex.EncodeToString(h.Sum(nil))[:32]
}

// ConfirmSession creates the order for a paid gateway session from its
// stored snapshot. Redelivered events return the existing order. Sessions
// without a snapshot are acknowledged with a nil order.
func (s *CheckoutService) ConfirmSession(ctx context.Context, sessionID string) (*domain.Order, bool, error) {
	const op = "checkout.confirm"

	if sessionID == "" {
		return nil, false, domain.WithOp(ErrMissingSessionID, op)
	}

	var order *domain.Order
	var created bool

	err := s.tx.InTx(ctx, func(q repository.Querier) error {
		snap, err := q.LockCheckoutSession(ctx, sessionID)
		if err != nil {
			if postgres.IsNoRows(err) {
				// Not created here, or already pruned. Nothing to confirm.
				s.logger.WarnContext(ctx, "no snapshot for checkout session", "session_id", sessionID)
				return nil
			}
			return domain.Internal(err, op, "failed to lock checkout session")
		}

		existing, err := q.GetOrderByPaymentID(ctx, sessionID)
		if err == nil {
			order = orderFromRepo(existing)
			return nil
		}
		if !postgres.IsNoRows(err) {
			return domain.Internal(err, op, "failed to look up order")
		}

		if snap.Status == sessionCompleted {
			// Completed earlier but the order has since been deleted by an admin.
			s.logger.WarnContext(ctx, "checkout session already completed without an order",
				"session_id", sessionID)
			return nil
		}

		var items []sessionItem
		if err := json.Unmarshal(snap.Items, &items); err != nil {
			return domain.Internal(err, op, "failed to decode session items")
		}

		voucherID := snap.VoucherID
		if voucherID.Valid {
			if _, err := q.RedeemVoucher(ctx, voucherID); err != nil {
				if !postgres.IsNoRows(err) {
					return domain.Internal(err, op, "failed to redeem voucher")
				}
				s.logger.WarnContext(ctx, "voucher no longer redeemable, recording order without it",
					"session_id", sessionID,
					"voucher_id", postgres.FromUUID(voucherID),
				)
				voucherID = pgtype.UUID{}
			}
		}

		order, err = insertOrder(ctx, q, newOrderParams{
			userID:        postgres.FromUUID(snap.UserID),
			voucherID:     voucherID,
			paymentStatus: domain.PaymentCompleted,
			paymentID:     sessionID,
			address:       snap.Address,
			totals: pricing.Totals{
				Subtotal:    money.Cents(snap.SubtotalCents),
				Discount:    money.Cents(snap.DiscountCents),
				Tax:         money.Cents(snap.TaxCents),
				DeliveryFee: money.Cents(snap.DeliveryFeeCents),
				Total:       money.Cents(snap.TotalCents),
			},
			items: items,
		}, op)
		if err != nil {
			return err
		}

		if _, err := q.DeleteCart(ctx, snap.CartID); err != nil {
			return domain.Internal(err, op, "failed to clear cart")
		}
		if _, err := q.CompleteCheckoutSession(ctx, sessionID); err != nil {
			return domain.Internal(err, op, "failed to complete checkout session")
		}

		created = true
		return nil
	})
	if err != nil {
		// A concurrent delivery of the same event committed first.
		if postgres.IsUniqueViolation(err, "orders_payment_id_key") {
			existing, lookupErr := s.repo.GetOrderByPaymentID(ctx, sessionID)
			if lookupErr != nil {
				return nil, false, domain.Internal(lookupErr, op, "failed to look up order")
			}
			return orderFromRepo(existing), false, nil
		}
		return nil, false, err
	}

	if created {
		s.logger.InfoContext(ctx, "order created from checkout session",
			"order_id", order.ID,
			"session_id", sessionID,
			"total_cents", order.Total.Int64(),
		)
		s.publish(ctx, domain.EventOrderCreated, order)
	}

	return order, created, nil
}

// PlaceOrder prices the requested dishes from the menu and records a PENDING
// order under a payment intent the client created. The payment_intent
// webhook events later settle its payment status.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, req domain.PlaceOrderRequest) (*domain.Order, error) {
	const op = "order.place"

	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, domain.WithOp(domain.ErrAddressRequired, op)
	}
	paymentID := strings.TrimSpace(req.PaymentID)
	if paymentID == "" {
		return nil, domain.WithOp(domain.ErrPaymentIDRequired, op)
	}
	if strings.HasPrefix(paymentID, DemoPaymentPrefix) || strings.HasPrefix(paymentID, sessionPaymentPrefix) {
		return nil, domain.WithOp(domain.ErrPaymentIDReserved, op)
	}
	if len(req.Items) == 0 {
		return nil, domain.WithOp(domain.ErrNoOrderItems, op)
	}

	// One line per dish, in first-seen order.
	quantities := make(map[uuid.UUID]int32, len(req.Items))
	var dishIDs []uuid.UUID
	for _, it := range req.Items {
		if !domain.ValidQuantity(it.Quantity) {
			return nil, domain.WithOp(domain.ErrInvalidQuantity, op)
		}
		if _, seen := quantities[it.DishID]; !seen {
			dishIDs = append(dishIDs, it.DishID)
		}
		quantities[it.DishID] += it.Quantity
		if !domain.ValidQuantity(quantities[it.DishID]) {
			return nil, domain.WithOp(domain.ErrInvalidQuantity, op)
		}
	}

	items := make([]sessionItem, 0, len(dishIDs))
	lines := make([]pricing.Line, 0, len(dishIDs))
	for _, id := range dishIDs {
		dish, err := s.repo.GetDish(ctx, postgres.UUID(id))
		if err != nil {
			return nil, dbErr(err, domain.ErrDishNotFound, op, "failed to get dish")
		}
		price := money.Cents(dish.PriceCents)
		items = append(items, sessionItem{
			DishID:    id,
			Name:      dish.Name,
			UnitPrice: price,
			Quantity:  quantities[id],
		})
		lines = append(lines, pricing.Line{UnitPrice: price, Quantity: quantities[id]})
	}

	totals, err := s.engine.Compute(ctx, lines, 0)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to price order")
	}

	var order *domain.Order
	err = s.tx.InTx(ctx, func(q repository.Querier) error {
		var err error
		order, err = insertOrder(ctx, q, newOrderParams{
			userID:        userID,
			paymentStatus: domain.PaymentPending,
			paymentID:     paymentID,
			address:       address,
			totals:        totals,
			items:         items,
		}, op)
		return err
	})
	if err != nil {
		if postgres.IsUniqueViolation(err, "orders_payment_id_key") {
			return nil, domain.WithOp(domain.ErrPaymentIDInUse, op)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "order placed",
		"order_id", order.ID,
		"user_id", userID,
		"payment_ref", paymentID,
		"total_cents", order.Total.Int64(),
	)
	s.publish(ctx, domain.EventOrderCreated, order)

	return order, nil
}

const sessionCompleted = "COMPLETED"

// sessionItem is the price snapshot of one cart line stored with a checkout session.
type sessionItem struct {
	DishID    uuid.UUID   `json:"dishId"`
	Name      string      `json:"name"`
	UnitPrice money.Cents `json:"unitPriceCents"`
	Quantity  int32       `json:"quantity"`
}

func snapshotItems(rows []repository.ListCartItemsRow) []sessionItem {
	items := make([]sessionItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, sessionItem{
			DishID:    postgres.FromUUID(r.DishID),
			Name:      r.DishName,
			UnitPrice: money.Cents(r.DishPriceCents),
			Quantity:  r.Quantity,
		})
	}
	return items
}

type newOrderParams struct {
	userID        uuid.UUID
	voucher       *domain.Voucher
	voucherID     pgtype.UUID
	paymentStatus domain.PaymentStatus
	paymentID     string
	address       string
	totals        pricing.Totals
	items         []sessionItem
}

// insertOrder writes an order and its item snapshots with the given querier.
func insertOrder(ctx context.Context, q repository.Querier, p newOrderParams, op string) (*domain.Order, error) {
	voucherID := p.voucherID
	if p.voucher != nil {
		voucherID = postgres.UUID(p.voucher.ID)
	}

	row, err := q.CreateOrder(ctx, repository.CreateOrderParams{
		UserID:           postgres.UUID(p.userID),
		VoucherID:        voucherID,
		Status:           string(domain.OrderPending),
		PaymentStatus:    string(p.paymentStatus),
		PaymentID:        p.paymentID,
		Address:          p.address,
		SubtotalCents:    p.totals.Subtotal.Int64(),
		DiscountCents:    p.totals.Discount.Int64(),
		TaxCents:         p.totals.Tax.Int64(),
		DeliveryFeeCents: p.totals.DeliveryFee.Int64(),
		TotalCents:       p.totals.Total.Int64(),
	})
	if err != nil {
		if postgres.IsUniqueViolation(err, "orders_payment_id_key") {
			return nil, err
		}
		return nil, domain.Internal(err, op, "failed to create order")
	}

	order := orderFromRepo(row)
	if p.voucher != nil {
		order.VoucherCode = p.voucher.Code
	}

	for _, it := range p.items {
		item, err := q.CreateOrderItem(ctx, repository.CreateOrderItemParams{
			OrderID:        row.ID,
			DishID:         postgres.UUID(it.DishID),
			DishName:       it.Name,
			UnitPriceCents: it.UnitPrice.Int64(),
			Quantity:       it.Quantity,
			LineTotalCents: it.UnitPrice.Int64() * int64(it.Quantity),
		})
		if err != nil {
			return nil, domain.Internal(err, op, "failed to create order item")
		}
		order.Items = append(order.Items, orderItemFromRepo(item))
	}

	return order, nil
}

func (s *CheckoutService) publish(ctx context.Context, eventType string, order *domain.Order) {
	event := domain.OrderEvent{
		Type:      eventType,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Status:    order.Status,
		Total:     order.Total,
		Timestamp: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order event",
			"event", eventType, "order_id", order.ID, "error", err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	for len(string(r)) > n {
		r = r[:len(r)-1]
	}
	return string(r)
}
