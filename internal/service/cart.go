package service

import (
	"context"
	"log/slog"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/google/uuid"
)

// CartService implements domain.CartService. Every write is a single SQL
// statement, so concurrent requests from the same user never lose updates.
type CartService struct {
	repo   repository.Querier
	logger *slog.Logger
}

var _ domain.CartService = (*CartService)(nil)

// NewCartService creates a new CartService instance
func NewCartService(repo repository.Querier, logger *slog.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

// GetCart returns the user's cart, or an empty cart shape when none exists.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	const op = "cart.get"

	cart, err := s.repo.GetCartByUser(ctx, postgres.UUID(userID))
	if err != nil {
		if postgres.IsNoRows(err) {
			return cartFromRows(nil, nil), nil
		}
		return nil, domain.Internal(err, op, "failed to get cart")
	}

	rows, err := s.repo.ListCartItems(ctx, cart.ID)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list cart items")
	}

	id := postgres.FromUUID(cart.ID)
	return cartFromRows(&id, rows), nil
}

// AddItem adds quantity of a dish, creating the cart on first use. Adding a
// dish already in the cart increments its line.
func (s *CartService) AddItem(ctx context.Context, userID, dishID uuid.UUID, quantity int32) (*domain.AddItemResult, error) {
	const op = "cart.add"

	if !domain.ValidQuantity(quantity) {
		return nil, domain.WithOp(domain.ErrInvalidQuantity, op)
	}

	dish, err := s.repo.GetDish(ctx, postgres.UUID(dishID))
	if err != nil {
		return nil, dbErr(err, domain.ErrDishNotFound, op, "failed to get dish")
	}

	// The cart can be deleted by a concurrent checkout between the two
	// statements; the item insert then fails its foreign key and we retry once.
	var row repository.UpsertCartItemRow
	for attempt := 0; ; attempt++ {
		cart, err := s.repo.UpsertCart(ctx, postgres.UUID(userID))
		if err != nil {
			return nil, domain.Internal(err, op, "failed to get or create cart")
		}

		row, err = s.repo.UpsertCartItem(ctx, repository.UpsertCartItemParams{
			CartID:      cart.ID,
			DishID:      dish.ID,
			Quantity:    quantity,
			MaxQuantity: domain.MaxItemQuantity,
		})
		if err == nil {
			break
		}
		// the conflict update is skipped when the line would pass the cap
		if postgres.IsNoRows(err) {
			return nil, domain.WithOp(domain.ErrQuantityLimit, op)
		}
		if attempt == 0 && postgres.IsForeignKeyViolation(err) {
			s.logger.DebugContext(ctx, "cart vanished during add, retrying", "user_id", userID)
			continue
		}
		if postgres.IsForeignKeyViolation(err) {
			return nil, domain.WithOp(domain.ErrDishNotFound, op)
		}
		return nil, domain.Internal(err, op, "failed to add item")
	}

	item := cartItemFromRow(repository.ListCartItemsRow{
		ID:              row.ID,
		CartID:          row.CartID,
		DishID:          row.DishID,
		Quantity:        row.Quantity,
		DishName:        dish.Name,
		DishDescription: dish.Description,
		DishPriceCents:  dish.PriceCents,
		DishImageUrl:    dish.ImageUrl,
		DishCategory:    dish.Category,
	})

	return &domain.AddItemResult{Item: item, Created: row.Inserted}, nil
}

// UpdateItem sets the quantity of one of the user's cart lines.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, quantity int32) (*domain.CartItem, error) {
	const op = "cart.update"

	if !domain.ValidQuantity(quantity) {
		return nil, domain.WithOp(domain.ErrInvalidQuantity, op)
	}

	_, err := s.repo.UpdateCartItemQuantity(ctx, repository.UpdateCartItemQuantityParams{
		ID:       postgres.UUID(itemID),
		UserID:   postgres.UUID(userID),
		Quantity: quantity,
	})
	if err != nil {
		return nil, dbErr(err, domain.ErrCartItemNotFound, op, "failed to update cart item")
	}

	row, err := s.repo.GetCartItemForUser(ctx, repository.GetCartItemForUserParams{
		ID:     postgres.UUID(itemID),
		UserID: postgres.UUID(userID),
	})
	if err != nil {
		return nil, dbErr(err, domain.ErrCartItemNotFound, op, "failed to reload cart item")
	}

	item := cartItemFromRow(row)
	return &item, nil
}

// RemoveItem deletes one of the user's cart lines. Returns ErrCartItemNotFound
// when the line does not exist or belongs to someone else.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	const op = "cart.remove"

	n, err := s.repo.DeleteCartItemForUser(ctx, repository.DeleteCartItemForUserParams{
		ID:     postgres.UUID(itemID),
		UserID: postgres.UUID(userID),
	})
	if err != nil {
		return domain.Internal(err, op, "failed to remove cart item")
	}
	if n == 0 {
		return domain.WithOp(domain.ErrCartItemNotFound, op)
	}
	return nil
}

// Clear deletes the user's cart. Clearing a missing cart succeeds.
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.repo.DeleteCartByUser(ctx, postgres.UUID(userID)); err != nil {
		return domain.Internal(err, "cart.clear", "failed to clear cart")
	}
	return nil
}
