package service

import (
	"context"
	"strings"
	"time"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/dukerupert/foodmania/internal/voucher"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// maximum PERCENTAGE value in basis points (100%)
const maxPercentage = 10000

// VoucherService implements domain.VoucherService.
type VoucherService struct {
	repo repository.Querier
	now  func() time.Time
}

var _ domain.VoucherService = (*VoucherService)(nil)

// NewVoucherService creates a new VoucherService instance
func NewVoucherService(repo repository.Querier) *VoucherService {
	return &VoucherService{repo: repo, now: time.Now}
}

// Validate checks a code against an order amount. Nothing is written.
func (s *VoucherService) Validate(ctx context.Context, code string, orderAmount money.Cents) (*domain.VoucherValidation, error) {
	const op = "voucher.validate"

	v, err := s.lookup(ctx, code, op)
	if err != nil {
		return nil, err
	}

	discount, err := voucher.Validate(v, orderAmount, s.now())
	if err != nil {
		return nil, err
	}

	return &domain.VoucherValidation{
		Voucher:        *voucherSummary(v),
		DiscountAmount: discount,
		FinalAmount:    money.Max(orderAmount-discount, 0),
	}, nil
}

// lookup loads a voucher by code. Unknown and blank codes are ErrVoucherNotFound.
func (s *VoucherService) lookup(ctx context.Context, code, op string) (*domain.Voucher, error) {
	code = voucher.NormalizeCode(code)
	if code == "" {
		return nil, domain.WithOp(domain.ErrVoucherNotFound, op)
	}

	row, err := s.repo.GetVoucherByCode(ctx, code)
	if err != nil {
		return nil, dbErr(err, domain.ErrVoucherNotFound, op, "failed to get voucher")
	}
	return voucherFromRepo(row), nil
}

func (s *VoucherService) List(ctx context.Context, params domain.VoucherListParams) (*domain.Page[domain.Voucher], error) {
	const op = "voucher.list"

	switch params.Status {
	case "", domain.VoucherStatusActive, domain.VoucherStatusExpired:
	default:
		return nil, domain.Invalid(op, "Invalid status filter. Must be active or expired")
	}

	page, limit := domain.NormalizePage(params.Page, params.Limit)
	search := strings.TrimSpace(params.Search)

	total, err := s.repo.CountVouchers(ctx, repository.CountVouchersParams{Search: search, Status: params.Status})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to count vouchers")
	}

	rows, err := s.repo.ListVouchers(ctx, repository.ListVouchersParams{
		Search: search,
		Status: params.Status,
		Limit:  int32(limit),
		Offset: int32(domain.Offset(page, limit)),
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list vouchers")
	}

	items := make([]domain.Voucher, 0, len(rows))
	for _, r := range rows {
		v := voucherFromRepo(r.Voucher)
		v.OrderCount = r.OrderCount
		items = append(items, *v)
	}

	return domain.NewPage(items, page, limit, total), nil
}

func (s *VoucherService) Get(ctx context.Context, id uuid.UUID) (*domain.Voucher, error) {
	row, err := s.repo.GetVoucher(ctx, postgres.UUID(id))
	if err != nil {
		return nil, dbErr(err, domain.ErrVoucherNotFound, "voucher.get", "failed to get voucher")
	}
	return voucherFromRepo(row), nil
}

// Create stores a new voucher. Codes are stored upper-case and must be unique.
func (s *VoucherService) Create(ctx context.Context, in domain.VoucherInput) (*domain.Voucher, error) {
	const op = "voucher.create"

	if !in.DiscountType.Valid() {
		return nil, domain.NewValidationError(op, "discountType", "must be PERCENTAGE or FIXED_AMOUNT")
	}
	if in.DiscountType == domain.DiscountPercentage && in.DiscountValue > maxPercentage {
		return nil, domain.WithOp(domain.ErrPercentageTooHigh, op)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	row, err := s.repo.CreateVoucher(ctx, repository.CreateVoucherParams{
		Code:             voucher.NormalizeCode(in.Code),
		Name:             strings.TrimSpace(in.Name),
		Description:      postgres.Text(strings.TrimSpace(in.Description)),
		DiscountType:     string(in.DiscountType),
		DiscountValue:    in.DiscountValue.Int64(),
		MinOrderCents:    in.MinOrderAmount.Int64(),
		MaxDiscountCents: postgres.Int8Cents(in.MaxDiscount),
		UsageLimit:       postgres.Int4Ptr(in.UsageLimit),
		IsActive:         active,
		ExpiresAt:        postgres.TimestamptzPtr(in.ExpiresAt),
	})
	if err != nil {
		if postgres.IsUniqueViolation(err, "vouchers_code_key") {
			return nil, domain.WithOp(domain.ErrVoucherExists, op)
		}
		return nil, domain.Internal(err, op, "failed to create voucher")
	}

	return voucherFromRepo(row), nil
}

// Update applies a partial update. The discount type and code are immutable.
func (s *VoucherService) Update(ctx context.Context, id uuid.UUID, in domain.VoucherUpdate) (*domain.Voucher, error) {
	const op = "voucher.update"

	current, err := s.repo.GetVoucher(ctx, postgres.UUID(id))
	if err != nil {
		return nil, dbErr(err, domain.ErrVoucherNotFound, op, "failed to get voucher")
	}
	if in.DiscountValue != nil &&
		domain.DiscountType(current.DiscountType) == domain.DiscountPercentage &&
		*in.DiscountValue > maxPercentage {
		return nil, domain.WithOp(domain.ErrPercentageTooHigh, op)
	}

	params := repository.UpdateVoucherParams{
		ID:               postgres.UUID(id),
		Name:             postgres.TextPtr(trimmedPtr(in.Name)),
		Description:      postgres.TextPtr(trimmedPtr(in.Description)),
		MaxDiscountCents: postgres.Int8Cents(in.MaxDiscount),
		UsageLimit:       postgres.Int4Ptr(in.UsageLimit),
		IsActive:         postgres.BoolPtr(in.IsActive),
		ExpiresAt:        postgres.TimestamptzPtr(in.ExpiresAt),
	}
	if in.DiscountValue != nil {
		params.DiscountValue = pgtype.Int8{Int64: in.DiscountValue.Int64(), Valid: true}
	}
	if in.MinOrderAmount != nil {
		params.MinOrderCents = pgtype.Int8{Int64: in.MinOrderAmount.Int64(), Valid: true}
	}

	row, err := s.repo.UpdateVoucher(ctx, params)
	if err != nil {
		return nil, dbErr(err, domain.ErrVoucherNotFound, op, "failed to update voucher")
	}
	return voucherFromRepo(row), nil
}

// Delete removes a voucher that no order references.
func (s *VoucherService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "voucher.delete"

	if _, err := s.repo.GetVoucher(ctx, postgres.UUID(id)); err != nil {
		return dbErr(err, domain.ErrVoucherNotFound, op, "failed to get voucher")
	}

	used, err := s.repo.CountOrdersForVoucher(ctx, postgres.UUID(id))
	if err != nil {
		return domain.Internal(err, op, "failed to count voucher orders")
	}
	if used > 0 {
		return domain.WithOp(domain.ErrVoucherInUse, op)
	}

	n, err := s.repo.DeleteVoucher(ctx, postgres.UUID(id))
	if err != nil {
		return domain.Internal(err, op, "failed to delete voucher")
	}
	if n == 0 {
		return domain.WithOp(domain.ErrVoucherNotFound, op)
	}
	return nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
