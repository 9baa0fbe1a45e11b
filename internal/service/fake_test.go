package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dukerupert/foodmania/internal/delivery"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/pricing"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/dukerupert/foodmania/internal/tax"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testEngine prices with 8% tax and a 5.00 delivery fee waived above 50.00.
func testEngine(t *testing.T) *pricing.Engine {
	t.Helper()
	taxCalc, err := tax.NewPercentageCalculator(decimal.RequireFromString("0.08"))
	require.NoError(t, err)
	flat, err := delivery.NewFlatRateProvider(500, 5000)
	require.NoError(t, err)
	return pricing.NewEngine(taxCalc, flat, "usd")
}

// fakeTx runs fn directly against q. When serialize is set, transactions
// run one at a time, which models row locks taken at the start of each one.
type fakeTx struct {
	q         repository.Querier
	serialize bool
	mu        sync.Mutex
	calls     int
}

var _ postgres.TxRunner = (*fakeTx)(nil)

func (f *fakeTx) InTx(ctx context.Context, fn func(q repository.Querier) error) error {
	if f.serialize {
		f.mu.Lock()
		defer f.mu.Unlock()
	}
	f.calls++
	return fn(f.q)
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// memStore is an in-memory Querier covering the cart, voucher, order and
// checkout session statements. Each method runs atomically and mirrors the
// predicates of the SQL it stands in for.
type memStore struct {
	repository.Querier

	mu       sync.Mutex
	dishes   map[uuid.UUID]repository.Dish
	carts    map[uuid.UUID]repository.Cart // by user
	items    map[uuid.UUID]repository.CartItem
	vouchers map[uuid.UUID]repository.Voucher
	orders   map[uuid.UUID]repository.Order
	lines    []repository.OrderItem
	sessions map[string]repository.CheckoutSession
}

func newMemStore() *memStore {
	return &memStore{
		dishes:   map[uuid.UUID]repository.Dish{},
		carts:    map[uuid.UUID]repository.Cart{},
		items:    map[uuid.UUID]repository.CartItem{},
		vouchers: map[uuid.UUID]repository.Voucher{},
		orders:   map[uuid.UUID]repository.Order{},
		sessions: map[string]repository.CheckoutSession{},
	}
}

func (m *memStore) addDish(name string, price money.Cents) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.dishes[id] = repository.Dish{ID: postgres.UUID(id), Name: name, PriceCents: price.Int64()}
	return id
}

func (m *memStore) addVoucher(v repository.Voucher) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	v.ID = postgres.UUID(id)
	m.vouchers[id] = v
	return id
}

func (m *memStore) voucher(id uuid.UUID) repository.Voucher {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vouchers[id]
}

func (m *memStore) orderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

func (m *memStore) cartItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *memStore) GetDish(_ context.Context, id pgtype.UUID) (repository.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.dishes[postgres.FromUUID(id)]
	if !ok {
		return repository.Dish{}, pgx.ErrNoRows
	}
	return d, nil
}

func (m *memStore) GetCartByUser(_ context.Context, userID pgtype.UUID) (repository.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[postgres.FromUUID(userID)]
	if !ok {
		return repository.Cart{}, pgx.ErrNoRows
	}
	return c, nil
}

func (m *memStore) LockCartByUser(ctx context.Context, userID pgtype.UUID) (repository.Cart, error) {
	return m.GetCartByUser(ctx, userID)
}

// INSERT ... ON CONFLICT (user_id) DO UPDATE
func (m *memStore) UpsertCart(_ context.Context, userID pgtype.UUID) (repository.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	uid := postgres.FromUUID(userID)
	if c, ok := m.carts[uid]; ok {
		return c, nil
	}
	c := repository.Cart{ID: postgres.UUID(uuid.New()), UserID: userID}
	m.carts[uid] = c
	return c, nil
}

// INSERT ... ON CONFLICT (cart_id, dish_id) DO UPDATE SET quantity = quantity + excluded.quantity
// WHERE quantity + excluded.quantity <= $4
func (m *memStore) UpsertCartItem(_ context.Context, arg repository.UpsertCartItemParams) (repository.UpsertCartItemRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.cartExists(arg.CartID) {
		return repository.UpsertCartItemRow{}, &pgconn.PgError{Code: "23503", ConstraintName: "cart_items_cart_id_fkey"}
	}
	for id, it := range m.items {
		if it.CartID == arg.CartID && it.DishID == arg.DishID {
			if it.Quantity+arg.Quantity > arg.MaxQuantity {
				return repository.UpsertCartItemRow{}, pgx.ErrNoRows
			}
			it.Quantity += arg.Quantity
			m.items[id] = it
			return repository.UpsertCartItemRow{ID: it.ID, CartID: it.CartID, DishID: it.DishID, Quantity: it.Quantity}, nil
		}
	}
	id := uuid.New()
	it := repository.CartItem{ID: postgres.UUID(id), CartID: arg.CartID, DishID: arg.DishID, Quantity: arg.Quantity}
	m.items[id] = it
	return repository.UpsertCartItemRow{ID: it.ID, CartID: it.CartID, DishID: it.DishID, Quantity: it.Quantity, Inserted: true}, nil
}

// cartOwnedBy reports whether cartID belongs to userID. Callers hold m.mu.
func (m *memStore) cartOwnedBy(cartID, userID pgtype.UUID) bool {
	c, ok := m.carts[postgres.FromUUID(userID)]
	return ok && c.ID == cartID
}

// UPDATE cart_items SET quantity = $3 FROM carts WHERE id = $1 AND user_id = $2
func (m *memStore) UpdateCartItemQuantity(_ context.Context, arg repository.UpdateCartItemQuantityParams) (repository.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := postgres.FromUUID(arg.ID)
	it, ok := m.items[id]
	if !ok || !m.cartOwnedBy(it.CartID, arg.UserID) {
		return repository.CartItem{}, pgx.ErrNoRows
	}
	it.Quantity = arg.Quantity
	m.items[id] = it
	return it, nil
}

func (m *memStore) GetCartItemForUser(_ context.Context, arg repository.GetCartItemForUserParams) (repository.ListCartItemsRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[postgres.FromUUID(arg.ID)]
	if !ok || !m.cartOwnedBy(it.CartID, arg.UserID) {
		return repository.ListCartItemsRow{}, pgx.ErrNoRows
	}
	d := m.dishes[postgres.FromUUID(it.DishID)]
	return repository.ListCartItemsRow{
		ID:             it.ID,
		CartID:         it.CartID,
		DishID:         it.DishID,
		Quantity:       it.Quantity,
		DishName:       d.Name,
		DishPriceCents: d.PriceCents,
	}, nil
}

// DELETE FROM cart_items USING carts WHERE id = $1 AND user_id = $2
func (m *memStore) DeleteCartItemForUser(_ context.Context, arg repository.DeleteCartItemForUserParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := postgres.FromUUID(arg.ID)
	it, ok := m.items[id]
	if !ok || !m.cartOwnedBy(it.CartID, arg.UserID) {
		return 0, nil
	}
	delete(m.items, id)
	return 1, nil
}

func (m *memStore) cartExists(id pgtype.UUID) bool {
	for _, c := range m.carts {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (m *memStore) ListCartItems(_ context.Context, cartID pgtype.UUID) ([]repository.ListCartItemsRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var rows []repository.ListCartItemsRow
	for _, it := range m.items {
		if it.CartID != cartID {
			continue
		}
		d := m.dishes[postgres.FromUUID(it.DishID)]
		rows = append(rows, repository.ListCartItemsRow{
			ID:             it.ID,
			CartID:         it.CartID,
			DishID:         it.DishID,
			Quantity:       it.Quantity,
			DishName:       d.Name,
			DishPriceCents: d.PriceCents,
		})
	}
	return rows, nil
}

// DELETE FROM carts WHERE id = $1; items cascade.
func (m *memStore) DeleteCart(_ context.Context, id pgtype.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for uid, c := range m.carts {
		if c.ID != id {
			continue
		}
		delete(m.carts, uid)
		for iid, it := range m.items {
			if it.CartID == id {
				delete(m.items, iid)
			}
		}
		return 1, nil
	}
	return 0, nil
}

func (m *memStore) GetVoucherByCode(_ context.Context, code string) (repository.Voucher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.vouchers {
		if v.Code == code {
			return v, nil
		}
	}
	return repository.Voucher{}, pgx.ErrNoRows
}

// UPDATE vouchers SET used_count = used_count + 1
// WHERE id = $1 AND is_active AND (usage_limit IS NULL OR used_count < usage_limit)
func (m *memStore) RedeemVoucher(_ context.Context, id pgtype.UUID) (int32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	vid := postgres.FromUUID(id)
	v, ok := m.vouchers[vid]
	if !ok || !v.IsActive || (v.UsageLimit.Valid && v.UsedCount >= v.UsageLimit.Int32) {
		return 0, pgx.ErrNoRows
	}
	v.UsedCount++
	m.vouchers[vid] = v
	return v.UsedCount, nil
}

func (m *memStore) CreateOrder(_ context.Context, arg repository.CreateOrderParams) (repository.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.PaymentID == arg.PaymentID {
			return repository.Order{}, uniqueViolation("orders_payment_id_key")
		}
	}
	id := uuid.New()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	o := repository.Order{
		ID:               postgres.UUID(id),
		UserID:           arg.UserID,
		VoucherID:        arg.VoucherID,
		Status:           arg.Status,
		PaymentStatus:    arg.PaymentStatus,
		PaymentID:        arg.PaymentID,
		Address:          arg.Address,
		SubtotalCents:    arg.SubtotalCents,
		DiscountCents:    arg.DiscountCents,
		TaxCents:         arg.TaxCents,
		DeliveryFeeCents: arg.DeliveryFeeCents,
		TotalCents:       arg.TotalCents,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	m.orders[id] = o
	return o, nil
}

func (m *memStore) CreateOrderItem(_ context.Context, arg repository.CreateOrderItemParams) (repository.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it := repository.OrderItem{
		ID:             postgres.UUID(uuid.New()),
		OrderID:        arg.OrderID,
		DishID:         arg.DishID,
		DishName:       arg.DishName,
		UnitPriceCents: arg.UnitPriceCents,
		Quantity:       arg.Quantity,
		LineTotalCents: arg.LineTotalCents,
	}
	m.lines = append(m.lines, it)
	return it, nil
}

func (m *memStore) GetOrderByPaymentID(_ context.Context, paymentID string) (repository.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.PaymentID == paymentID {
			return o, nil
		}
	}
	return repository.Order{}, pgx.ErrNoRows
}

// UPDATE orders SET payment_status = $2 WHERE payment_id = $1
func (m *memStore) UpdatePaymentStatusByPaymentID(_ context.Context, arg repository.UpdatePaymentStatusByPaymentIDParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, o := range m.orders {
		if o.PaymentID != arg.PaymentID {
			continue
		}
		o.PaymentStatus = arg.PaymentStatus
		m.orders[id] = o
		n++
	}
	return n, nil
}

func (m *memStore) CreateCheckoutSession(_ context.Context, arg repository.CreateCheckoutSessionParams) (repository.CheckoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[arg.ID]; ok {
		return repository.CheckoutSession{}, uniqueViolation("checkout_sessions_pkey")
	}
	s := repository.CheckoutSession{
		ID:               arg.ID,
		UserID:           arg.UserID,
		CartID:           arg.CartID,
		VoucherID:        arg.VoucherID,
		Address:          arg.Address,
		SubtotalCents:    arg.SubtotalCents,
		DiscountCents:    arg.DiscountCents,
		TaxCents:         arg.TaxCents,
		DeliveryFeeCents: arg.DeliveryFeeCents,
		TotalCents:       arg.TotalCents,
		Items:            arg.Items,
		Status:           "OPEN",
	}
	m.sessions[arg.ID] = s
	return s, nil
}

func (m *memStore) LockCheckoutSession(_ context.Context, id string) (repository.CheckoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return repository.CheckoutSession{}, pgx.ErrNoRows
	}
	return s, nil
}

func (m *memStore) CompleteCheckoutSession(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.Status != "OPEN" {
		return 0, nil
	}
	s.Status = "COMPLETED"
	m.sessions[id] = s
	return 1, nil
}

func (m *memStore) GetUserByID(_ context.Context, id pgtype.UUID) (repository.User, error) {
	return repository.User{ID: id, Email: "diner@example.com", Role: "USER"}, nil
}
