package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/google/uuid"
)

var (
	userID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	adminID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

// newRequest builds a request authenticated as role (empty for anonymous).
func newRequest(method, target, body string, role domain.Role) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	switch role {
	case domain.RoleUser:
		req = req.WithContext(domain.NewContextWithUser(req.Context(), &domain.Principal{ID: userID, Role: domain.RoleUser}))
	case domain.RoleAdmin:
		req = req.WithContext(domain.NewContextWithUser(req.Context(), &domain.Principal{ID: adminID, Role: domain.RoleAdmin}))
	}
	return req
}

type mockUserService struct {
	signupFunc       func(ctx context.Context, params domain.SignupParams) (*domain.User, error)
	loginFunc        func(ctx context.Context, email, password string) (*domain.LoginResult, error)
	getUserFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	authenticateFunc func(ctx context.Context, token string) (*domain.Principal, error)
}

func (m *mockUserService) Signup(ctx context.Context, params domain.SignupParams) (*domain.User, error) {
	return m.signupFunc(ctx, params)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockUserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getUserFunc(ctx, id)
}

func (m *mockUserService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	return m.authenticateFunc(ctx, token)
}

type mockCartService struct {
	getCartFunc    func(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	addItemFunc    func(ctx context.Context, userID, dishID uuid.UUID, quantity int32) (*domain.AddItemResult, error)
	updateItemFunc func(ctx context.Context, userID, itemID uuid.UUID, quantity int32) (*domain.CartItem, error)
	removeItemFunc func(ctx context.Context, userID, itemID uuid.UUID) error
	clearFunc      func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockCartService) GetCart(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	return m.getCartFunc(ctx, userID)
}

func (m *mockCartService) AddItem(ctx context.Context, userID, dishID uuid.UUID, quantity int32) (*domain.AddItemResult, error) {
	return m.addItemFunc(ctx, userID, dishID, quantity)
}

func (m *mockCartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int32) (*domain.CartItem, error) {
	return m.updateItemFunc(ctx, userID, itemID, quantity)
}

func (m *mockCartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return m.removeItemFunc(ctx, userID, itemID)
}

func (m *mockCartService) Clear(ctx context.Context, userID uuid.UUID) error {
	return m.clearFunc(ctx, userID)
}

type mockCheckoutService struct {
	quoteFunc          func(ctx context.Context, userID uuid.UUID, voucherCode string) (*domain.Quote, error)
	checkoutFunc       func(ctx context.Context, userID uuid.UUID, req domain.CheckoutRequest) (*domain.CheckoutResult, error)
	confirmSessionFunc func(ctx context.Context, sessionID string) (*domain.Order, bool, error)
	placeOrderFunc     func(ctx context.Context, userID uuid.UUID, req domain.PlaceOrderRequest) (*domain.Order, error)
}

func (m *mockCheckoutService) Quote(ctx context.Context, userID uuid.UUID, voucherCode string) (*domain.Quote, error) {
	return m.quoteFunc(ctx, userID, voucherCode)
}

func (m *mockCheckoutService) Checkout(ctx context.Context, userID uuid.UUID, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	return m.checkoutFunc(ctx, userID, req)
}

func (m *mockCheckoutService) ConfirmSession(ctx context.Context, sessionID string) (*domain.Order, bool, error) {
	return m.confirmSessionFunc(ctx, sessionID)
}

func (m *mockCheckoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, req domain.PlaceOrderRequest) (*domain.Order, error) {
	return m.placeOrderFunc(ctx, userID, req)
}

// mockOrderService embeds the interface so tests only stub what they call.
type mockOrderService struct {
	domain.OrderService
	getFunc            func(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	getForUserFunc     func(ctx context.Context, userID, id uuid.UUID) (*domain.Order, error)
	listFunc           func(ctx context.Context, params domain.OrderListParams) (*domain.Page[domain.Order], error)
	updateDeliveryFunc func(ctx context.Context, id uuid.UUID, update domain.DeliveryUpdate) (*domain.Order, error)
}

func (m *mockOrderService) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return m.getFunc(ctx, id)
}

func (m *mockOrderService) GetForUser(ctx context.Context, userID, id uuid.UUID) (*domain.Order, error) {
	return m.getForUserFunc(ctx, userID, id)
}

func (m *mockOrderService) List(ctx context.Context, params domain.OrderListParams) (*domain.Page[domain.Order], error) {
	return m.listFunc(ctx, params)
}

func (m *mockOrderService) UpdateDelivery(ctx context.Context, id uuid.UUID, update domain.DeliveryUpdate) (*domain.Order, error) {
	return m.updateDeliveryFunc(ctx, id, update)
}

type mockDishService struct {
	domain.DishService
	searchFunc func(ctx context.Context, params domain.DishSearchParams) ([]domain.RatedDish, error)
	createFunc func(ctx context.Context, in domain.DishInput) (*domain.Dish, error)
}

func (m *mockDishService) Search(ctx context.Context, params domain.DishSearchParams) ([]domain.RatedDish, error) {
	return m.searchFunc(ctx, params)
}

func (m *mockDishService) Create(ctx context.Context, in domain.DishInput) (*domain.Dish, error) {
	return m.createFunc(ctx, in)
}

type mockReviewService struct {
	domain.ReviewService
	createFunc func(ctx context.Context, userID, dishID uuid.UUID, in domain.ReviewInput) (*domain.Review, error)
	deleteFunc func(ctx context.Context, userID, reviewID uuid.UUID) error
}

func (m *mockReviewService) Create(ctx context.Context, userID, dishID uuid.UUID, in domain.ReviewInput) (*domain.Review, error) {
	return m.createFunc(ctx, userID, dishID, in)
}

func (m *mockReviewService) Delete(ctx context.Context, userID, reviewID uuid.UUID) error {
	return m.deleteFunc(ctx, userID, reviewID)
}

type mockVoucherService struct {
	domain.VoucherService
	validateFunc func(ctx context.Context, code string, orderAmount money.Cents) (*domain.VoucherValidation, error)
}

func (m *mockVoucherService) Validate(ctx context.Context, code string, orderAmount money.Cents) (*domain.VoucherValidation, error) {
	return m.validateFunc(ctx, code, orderAmount)
}
