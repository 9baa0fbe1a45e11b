package service

import (
	"context"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/pricing"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// =============================================================================
// Repository -> domain mapping
// =============================================================================

func cartItemFromRow(r repository.ListCartItemsRow) domain.CartItem {
	price := money.Cents(r.DishPriceCents)
	return domain.CartItem{
		ID:       postgres.FromUUID(r.ID),
		DishID:   postgres.FromUUID(r.DishID),
		Quantity: r.Quantity,
		Dish: domain.CartDish{
			ID:          postgres.FromUUID(r.DishID),
			Name:        r.DishName,
			Description: r.DishDescription,
			Price:       price,
			ImageURL:    r.DishImageUrl.String,
			Category:    r.DishCategory.String,
		},
		LineTotal: price * money.Cents(r.Quantity),
	}
}

// cartFromRows builds the cart view. A nil cartID is the "no cart yet" shape.
func cartFromRows(cartID *uuid.UUID, rows []repository.ListCartItemsRow) *domain.Cart {
	cart := &domain.Cart{ID: cartID, Items: make([]domain.CartItem, 0, len(rows))}
	for _, r := range rows {
		item := cartItemFromRow(r)
		cart.Items = append(cart.Items, item)
		cart.Total += item.LineTotal
		cart.ItemCount += item.Quantity
	}
	return cart
}

// pricingLines converts cart rows into pricing lines at current dish prices.
func pricingLines(rows []repository.ListCartItemsRow) []pricing.Line {
	lines := make([]pricing.Line, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, pricing.Line{UnitPrice: money.Cents(r.DishPriceCents), Quantity: r.Quantity})
	}
	return lines
}

func orderFromRepo(o repository.Order) *domain.Order {
	return &domain.Order{
		ID:              postgres.FromUUID(o.ID),
		UserID:          postgres.FromUUID(o.UserID),
		VoucherID:       postgres.FromNullUUID(o.VoucherID),
		Status:          domain.OrderStatus(o.Status),
		PaymentStatus:   domain.PaymentStatus(o.PaymentStatus),
		PaymentID:       o.PaymentID,
		Address:         o.Address,
		CurrentLocation: o.CurrentLocation.String,
		Subtotal:        money.Cents(o.SubtotalCents),
		Discount:        money.Cents(o.DiscountCents),
		Tax:             money.Cents(o.TaxCents),
		DeliveryFee:     money.Cents(o.DeliveryFeeCents),
		Total:           money.Cents(o.TotalCents),
		Items:           []domain.OrderItem{},
		CreatedAt:       o.CreatedAt.Time,
		UpdatedAt:       o.UpdatedAt.Time,
	}
}

func orderFromDetail(r repository.OrderDetailRow) *domain.Order {
	o := orderFromRepo(r.Order)
	o.VoucherCode = r.VoucherCode.String
	o.Customer = &domain.OrderCustomer{
		FirstName: r.UserFirstName,
		LastName:  r.UserLastName,
		Email:     r.UserEmail,
	}
	return o
}

func orderItemFromRepo(i repository.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ID:        postgres.FromUUID(i.ID),
		DishID:    postgres.FromNullUUID(i.DishID),
		DishName:  i.DishName,
		UnitPrice: money.Cents(i.UnitPriceCents),
		Quantity:  i.Quantity,
		LineTotal: money.Cents(i.LineTotalCents),
	}
}

// attachItems loads the items of every order with a single query.
func attachItems(ctx context.Context, q repository.Querier, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]pgtype.UUID, 0, len(orders))
	byID := make(map[uuid.UUID]*domain.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, postgres.UUID(o.ID))
		byID[o.ID] = o
	}

	items, err := q.ListOrderItems(ctx, ids)
	if err != nil {
		return err
	}
	for _, it := range items {
		if o, ok := byID[postgres.FromUUID(it.OrderID)]; ok {
			o.Items = append(o.Items, orderItemFromRepo(it))
		}
	}
	return nil
}

func ordersFromDetails(rows []repository.OrderDetailRow) []*domain.Order {
	out := make([]*domain.Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, orderFromDetail(r))
	}
	return out
}

func derefOrders(in []*domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(in))
	for _, o := range in {
		out = append(out, *o)
	}
	return out
}

func voucherFromRepo(v repository.Voucher) *domain.Voucher {
	return &domain.Voucher{
		ID:             postgres.FromUUID(v.ID),
		Code:           v.Code,
		Name:           v.Name,
		Description:    v.Description.String,
		DiscountType:   domain.DiscountType(v.DiscountType),
		DiscountValue:  money.Cents(v.DiscountValue),
		MinOrderAmount: money.Cents(v.MinOrderCents),
		MaxDiscount:    postgres.FromInt8Cents(v.MaxDiscountCents),
		UsageLimit:     postgres.FromInt4(v.UsageLimit),
		UsedCount:      v.UsedCount,
		IsActive:       v.IsActive,
		ExpiresAt:      postgres.FromTimestamptzPtr(v.ExpiresAt),
		CreatedAt:      v.CreatedAt.Time,
		UpdatedAt:      v.UpdatedAt.Time,
	}
}

func voucherSummary(v *domain.Voucher) *domain.VoucherSummary {
	if v == nil {
		return nil
	}
	return &domain.VoucherSummary{ID: v.ID, Code: v.Code, Name: v.Name, DiscountType: v.DiscountType}
}
