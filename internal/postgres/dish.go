package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/dukerupert/foodmania/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// MaxDishImageSize is the largest accepted image upload.
const MaxDishImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// DishService implements domain.DishService using PostgreSQL.
type DishService struct {
	repo    repository.Querier
	storage storage.Storage
	logger  *slog.Logger
}

// Compile-time check that DishService implements domain.DishService.
var _ domain.DishService = (*DishService)(nil)

// NewDishService creates a new PostgreSQL-backed dish service.
// store may be nil, in which case SetImage is unavailable.
func NewDishService(repo repository.Querier, store storage.Storage, logger *slog.Logger) *DishService {
	return &DishService{
		repo:    repo,
		storage: store,
		logger:  logger,
	}
}

// =============================================================================
// STOREFRONT OPERATIONS
// =============================================================================

// List returns every dish, newest first.
func (s *DishService) List(ctx context.Context) ([]domain.Dish, error) {
	rows, err := s.repo.ListDishes(ctx)
	if err != nil {
		return nil, domain.Internal(err, "dish.list", "failed to list dishes")
	}

	dishes := make([]domain.Dish, 0, len(rows))
	for _, d := range rows {
		dishes = append(dishes, *mapRepoDishToDomain(d))
	}
	return dishes, nil
}

// Search filters dishes and attaches their review aggregate.
func (s *DishService) Search(ctx context.Context, params domain.DishSearchParams) ([]domain.RatedDish, error) {
	const op = "dish.search"

	if params.MinPrice != nil && params.MaxPrice != nil && *params.MinPrice > *params.MaxPrice {
		return nil, domain.Invalid(op, "minPrice must not exceed maxPrice")
	}

	sort, err := searchSortKey(params.SortBy, params.SortOrder)
	if err != nil {
		return nil, domain.WrapError(err, domain.EINVALID, op, err.Error())
	}

	rows, err := s.repo.SearchDishes(ctx, repository.SearchDishesParams{
		Keyword:  strings.TrimSpace(params.Keyword),
		Category: strings.TrimSpace(params.Category),
		MinPrice: Int8Cents(params.MinPrice),
		MaxPrice: Int8Cents(params.MaxPrice),
		Sort:     sort,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to search dishes")
	}

	out := make([]domain.RatedDish, 0, len(rows))
	for _, r := range rows {
		rd := domain.RatedDish{
			Dish: *mapRepoDishToDomain(repository.Dish{
				ID:          r.ID,
				Name:        r.Name,
				Description: r.Description,
				PriceCents:  r.PriceCents,
				ImageUrl:    r.ImageUrl,
				Category:    r.Category,
				CreatedAt:   r.CreatedAt,
				UpdatedAt:   r.UpdatedAt,
			}),
			ReviewCount: r.ReviewCount,
		}
		if r.AvgRating.Valid {
			avg := r.AvgRating.Float64
			rd.AvgRating = &avg
		}
		out = append(out, rd)
	}
	return out, nil
}

// searchSortKey maps sortBy/sortOrder onto the query's sort keys.
// An empty sortBy keeps the default newest-first order.
func searchSortKey(sortBy, order string) (string, error) {
	order = strings.ToLower(order)
	switch order {
	case "":
		order = "asc"
	case "asc", "desc":
	default:
		return "", fmt.Errorf("sortOrder must be asc or desc")
	}

	switch sortBy {
	case "":
		return "", nil
	case domain.DishSortName, domain.DishSortPrice, domain.DishSortRating:
		return sortBy + "_" + order, nil
	case domain.DishSortNewest:
		if order == "asc" {
			return "newest_asc", nil
		}
		return "", nil
	default:
		return "", fmt.Errorf("sortBy must be one of name, price, rating, newest")
	}
}

// Get retrieves a single dish.
func (s *DishService) Get(ctx context.Context, id uuid.UUID) (*domain.Dish, error) {
	d, err := s.repo.GetDish(ctx, UUID(id))
	if err != nil {
		if IsNoRows(err) {
			return nil, domain.WithOp(domain.ErrDishNotFound, "dish.get")
		}
		return nil, domain.Internal(err, "dish.get", "failed to get dish")
	}
	return mapRepoDishToDomain(d), nil
}

// =============================================================================
// ADMIN OPERATIONS
// =============================================================================

func validPrice(p money.Cents) bool {
	return p >= 0 && p <= domain.MaxDishPrice
}

// Create adds a dish. Names are unique.
func (s *DishService) Create(ctx context.Context, in domain.DishInput) (*domain.Dish, error) {
	const op = "dish.create"

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError(op, "name", "is required")
	}
	if !validPrice(in.Price) {
		return nil, domain.NewValidationError(op, "price", "must be between 0 and 10000")
	}

	d, err := s.repo.CreateDish(ctx, repository.CreateDishParams{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		PriceCents:  in.Price.Int64(),
		ImageUrl:    Text(in.ImageURL),
		Category:    Text(strings.TrimSpace(in.Category)),
	})
	if err != nil {
		if IsUniqueViolation(err, "dishes_name_key") {
			return nil, domain.WithOp(domain.ErrDishExists, op)
		}
		return nil, domain.Internal(err, op, "failed to create dish")
	}

	s.logger.InfoContext(ctx, "dish created", "dish_id", FromUUID(d.ID), "name", d.Name)
	return mapRepoDishToDomain(d), nil
}

// Update applies a partial update.
func (s *DishService) Update(ctx context.Context, id uuid.UUID, in domain.DishUpdate) (*domain.Dish, error) {
	const op = "dish.update"

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.NewValidationError(op, "name", "must not be empty")
	}
	if in.Price != nil && !validPrice(*in.Price) {
		return nil, domain.NewValidationError(op, "price", "must be between 0 and 10000")
	}

	params := repository.UpdateDishParams{
		ID:          UUID(id),
		Name:        TextPtr(trimmed(in.Name)),
		Description: TextPtr(in.Description),
		PriceCents:  Int8Cents(in.Price),
		ImageUrl:    TextPtr(in.ImageURL),
		Category:    TextPtr(trimmed(in.Category)),
	}

	d, err := s.repo.UpdateDish(ctx, params)
	if err != nil {
		switch {
		case IsNoRows(err):
			return nil, domain.WithOp(domain.ErrDishNotFound, op)
		case IsUniqueViolation(err, "dishes_name_key"):
			return nil, domain.WithOp(domain.ErrDishExists, op)
		}
		return nil, domain.Internal(err, op, "failed to update dish")
	}
	return mapRepoDishToDomain(d), nil
}

// Delete removes a dish. Order items keep their snapshot; cart items and
// reviews cascade.
func (s *DishService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "dish.delete"

	d, err := s.repo.GetDish(ctx, UUID(id))
	if err != nil {
		if IsNoRows(err) {
			return domain.WithOp(domain.ErrDishNotFound, op)
		}
		return domain.Internal(err, op, "failed to get dish")
	}

	n, err := s.repo.DeleteDish(ctx, UUID(id))
	if err != nil {
		return domain.Internal(err, op, "failed to delete dish")
	}
	if n == 0 {
		return domain.WithOp(domain.ErrDishNotFound, op)
	}

	s.removeImage(ctx, d.ImageUrl)
	return nil
}

// SetImage uploads an image and points the dish at it. The previous image,
// if this storage issued it, is removed.
func (s *DishService) SetImage(ctx context.Context, id uuid.UUID, img domain.DishImage) (*domain.Dish, error) {
	const op = "dish.set_image"

	if s.storage == nil {
		return nil, domain.Errorf(domain.ENOTIMPL, op, "Image storage is not configured")
	}
	ext, ok := imageExtensions[img.ContentType]
	if !ok {
		return nil, domain.NewValidationError(op, "image", "must be a JPEG, PNG, WebP or GIF image")
	}
	if img.Size > MaxDishImageSize {
		return nil, domain.Errorf(domain.ETOOLARGE, op, "Image must be at most %d MB", MaxDishImageSize>>20)
	}

	current, err := s.repo.GetDish(ctx, UUID(id))
	if err != nil {
		if IsNoRows(err) {
			return nil, domain.WithOp(domain.ErrDishNotFound, op)
		}
		return nil, domain.Internal(err, op, "failed to get dish")
	}

	key := path.Join("dishes", id.String(), uuid.NewString()+ext)
	url, err := s.storage.Put(ctx, key, img.Body, img.ContentType)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to store image")
	}

	d, err := s.repo.SetDishImage(ctx, repository.SetDishImageParams{ID: UUID(id), ImageUrl: Text(url)})
	if err != nil {
		_ = s.storage.Delete(ctx, key)
		if IsNoRows(err) {
			return nil, domain.WithOp(domain.ErrDishNotFound, op)
		}
		return nil, domain.Internal(err, op, "failed to update dish image")
	}

	s.removeImage(ctx, current.ImageUrl)
	return mapRepoDishToDomain(d), nil
}

func (s *DishService) removeImage(ctx context.Context, url pgtype.Text) {
	if s.storage == nil || !url.Valid {
		return
	}
	key, ok := s.storage.Key(url.String)
	if !ok {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "failed to remove old dish image", "key", key, "error", err)
	}
}

func mapRepoDishToDomain(d repository.Dish) *domain.Dish {
	return &domain.Dish{
		ID:          FromUUID(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Price:       money.Cents(d.PriceCents),
		ImageURL:    d.ImageUrl.String,
		Category:    d.Category.String,
		CreatedAt:   d.CreatedAt.Time,
		UpdatedAt:   d.UpdatedAt.Time,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
