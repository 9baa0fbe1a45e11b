package domain

import (
	"context"
	"io"
	"time"

	"github.com/dukerupert/foodmania/internal/money"
	"github.com/google/uuid"
)

// MaxDishPrice is the highest price a dish can be listed at (10,000.00).
const MaxDishPrice money.Cents = 1_000_000

// Dish-related domain errors.
var (
	ErrDishNotFound = &Error{Code: ENOTFOUND, Message: "Dish not found"}
	ErrDishExists   = &Error{Code: ECONFLICT, Message: "Dish already exists"}
)

// Dish is a menu item.
type Dish struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       money.Cents `json:"price"`
	ImageURL    string      `json:"image,omitempty"`
	Category    string      `json:"category,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// RatedDish is a search result carrying its review aggregate.
// AvgRating is nil when the dish has no reviews.
type RatedDish struct {
	Dish
	AvgRating   *float64 `json:"avgRating"`
	ReviewCount int64    `json:"reviewCount"`
}

// Sort keys accepted by DishService.Search.
const (
	DishSortName   = "name"
	DishSortPrice  = "price"
	DishSortRating = "rating"
	DishSortNewest = "newest"
)

// DishSearchParams filters and orders a dish search. Zero values mean "no filter".
type DishSearchParams struct {
	Keyword   string
	Category  string
	MinPrice  *money.Cents
	MaxPrice  *money.Cents
	SortBy    string
	SortOrder string // asc or desc
}

// DishInput contains the fields for creating a dish.
type DishInput struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Description string      `json:"description" validate:"required,max=2000"`
	Price       money.Cents `json:"price" validate:"gte=0,max=1000000"`
	ImageURL    string      `json:"image" validate:"omitempty,max=1000"`
	Category    string      `json:"category" validate:"omitempty,max=100"`
}

// DishUpdate contains optional fields for a partial dish update.
type DishUpdate struct {
	Name        *string      `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string      `json:"description" validate:"omitempty,max=2000"`
	Price       *money.Cents `json:"price" validate:"omitempty,gte=0,max=1000000"`
	ImageURL    *string      `json:"image" validate:"omitempty,max=1000"`
	Category    *string      `json:"category" validate:"omitempty,max=100"`
}

// DishImage is an uploaded image for a dish.
type DishImage struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// DishService provides menu operations.
type DishService interface {
	List(ctx context.Context) ([]Dish, error)
	Search(ctx context.Context, params DishSearchParams) ([]RatedDish, error)
	Get(ctx context.Context, id uuid.UUID) (*Dish, error)

	// Create returns ErrDishExists when the name is taken.
	Create(ctx context.Context, in DishInput) (*Dish, error)
	Update(ctx context.Context, id uuid.UUID, in DishUpdate) (*Dish, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SetImage stores an image and points the dish at its public URL.
	SetImage(ctx context.Context, id uuid.UUID, img DishImage) (*Dish, error)
}
