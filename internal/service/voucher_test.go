package service

import (
	"context"
	"testing"
	"time"

	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/money"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var voucherNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestVoucherService(t *testing.T) (*VoucherService, *repository.MockQuerier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	svc := NewVoucherService(repo)
	svc.now = func() time.Time { return voucherNow }
	return svc, repo
}

func TestVoucherService_Validate(t *testing.T) {
	svc, repo := newTestVoucherService(t)

	repo.EXPECT().GetVoucherByCode(gomock.Any(), "SAVE10").Return(repository.Voucher{
		ID:            postgres.UUID(uuid.New()),
		Code:          "SAVE10",
		Name:          "Ten percent",
		DiscountType:  string(domain.DiscountPercentage),
		DiscountValue: 1000,
		IsActive:      true,
	}, nil)

	got, err := svc.Validate(context.Background(), "  save10 ", 3000)
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", got.Voucher.Code)
	assert.Equal(t, money.Cents(300), got.DiscountAmount)
	assert.Equal(t, money.Cents(2700), got.FinalAmount)
}

func TestVoucherService_Validate_Failures(t *testing.T) {
	expired := pgtype.Timestamptz{Time: voucherNow.Add(-time.Hour), Valid: true}

	tests := []struct {
		name    string
		code    string
		voucher *repository.Voucher
		amount  money.Cents
		wantErr error
		wantMsg string
	}{
		{name: "blank code", code: "  ", wantErr: domain.ErrVoucherNotFound},
		{name: "unknown code", code: "NOPE", wantErr: domain.ErrVoucherNotFound},
		{
			name:    "inactive",
			code:    "OFF",
			voucher: &repository.Voucher{Code: "OFF", DiscountType: "FIXED_AMOUNT", DiscountValue: 500},
			amount:  2000,
			wantErr: domain.ErrVoucherInactive,
		},
		{
			name:    "expired",
			code:    "OLD",
			voucher: &repository.Voucher{Code: "OLD", DiscountType: "FIXED_AMOUNT", DiscountValue: 500, IsActive: true, ExpiresAt: expired},
			amount:  2000,
			wantErr: domain.ErrVoucherExpired,
		},
		{
			name: "limit reached",
			code: "USED",
			voucher: &repository.Voucher{
				Code: "USED", DiscountType: "FIXED_AMOUNT", DiscountValue: 500, IsActive: true,
				UsageLimit: pgtype.Int4{Int32: 3, Valid: true}, UsedCount: 3,
			},
			amount:  2000,
			wantErr: domain.ErrVoucherLimitReached,
		},
		{
			name:    "below minimum",
			code:    "BIG",
			voucher: &repository.Voucher{Code: "BIG", DiscountType: "FIXED_AMOUNT", DiscountValue: 500, IsActive: true, MinOrderCents: 2500},
			amount:  2000,
			wantMsg: "Minimum order amount of $25.00 required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestVoucherService(t)
			switch {
			case tt.voucher != nil:
				repo.EXPECT().GetVoucherByCode(gomock.Any(), tt.code).Return(*tt.voucher, nil)
			case tt.wantErr == domain.ErrVoucherNotFound && tt.code != "  ":
				repo.EXPECT().GetVoucherByCode(gomock.Any(), tt.code).Return(repository.Voucher{}, pgx.ErrNoRows)
			}

			_, err := svc.Validate(context.Background(), tt.code, tt.amount)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, domain.ErrorMessage(err))
			}
		})
	}
}

func TestVoucherService_List_InvalidStatus(t *testing.T) {
	svc, _ := newTestVoucherService(t)

	_, err := svc.List(context.Background(), domain.VoucherListParams{Status: "archived"})
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestVoucherService_List(t *testing.T) {
	svc, repo := newTestVoucherService(t)

	repo.EXPECT().CountVouchers(gomock.Any(), repository.CountVouchersParams{Search: "fall", Status: "active"}).Return(int64(12), nil)
	repo.EXPECT().ListVouchers(gomock.Any(), repository.ListVouchersParams{
		Search: "fall", Status: "active", Limit: 5, Offset: 5,
	}).Return([]repository.ListVouchersRow{
		{Voucher: repository.Voucher{Code: "FALL5", DiscountType: "FIXED_AMOUNT", DiscountValue: 500}, OrderCount: 4},
	}, nil)

	page, err := svc.List(context.Background(), domain.VoucherListParams{Page: 2, Limit: 5, Search: " fall ", Status: "active"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(4), page.Items[0].OrderCount)
	assert.Equal(t, int64(3), page.Pagination.Pages)
}

func TestVoucherService_Create(t *testing.T) {
	t.Run("percentage over 100", func(t *testing.T) {
		svc, _ := newTestVoucherService(t)
		_, err := svc.Create(context.Background(), domain.VoucherInput{
			Code: "HUGE", Name: "Too much", DiscountType: domain.DiscountPercentage, DiscountValue: 10001,
		})
		assert.ErrorIs(t, err, domain.ErrPercentageTooHigh)
	})

	t.Run("duplicate code", func(t *testing.T) {
		svc, repo := newTestVoucherService(t)
		repo.EXPECT().CreateVoucher(gomock.Any(), gomock.Any()).Return(repository.Voucher{}, uniqueViolation("vouchers_code_key"))

		_, err := svc.Create(context.Background(), domain.VoucherInput{
			Code: "dup", Name: "Dup", DiscountType: domain.DiscountFixedAmount, DiscountValue: 500,
		})
		assert.ErrorIs(t, err, domain.ErrVoucherExists)
	})

	t.Run("normalizes code and defaults active", func(t *testing.T) {
		svc, repo := newTestVoucherService(t)
		repo.EXPECT().CreateVoucher(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg repository.CreateVoucherParams) (repository.Voucher, error) {
				assert.Equal(t, "WELCOME", arg.Code)
				assert.True(t, arg.IsActive)
				assert.False(t, arg.UsageLimit.Valid)
				return repository.Voucher{ID: postgres.UUID(uuid.New()), Code: arg.Code, IsActive: arg.IsActive}, nil
			})

		v, err := svc.Create(context.Background(), domain.VoucherInput{
			Code: " welcome ", Name: "Welcome", DiscountType: domain.DiscountFixedAmount, DiscountValue: 500,
		})
		require.NoError(t, err)
		assert.Equal(t, "WELCOME", v.Code)
	})
}

func TestVoucherService_Update_PercentageCap(t *testing.T) {
	svc, repo := newTestVoucherService(t)
	id := uuid.New()

	repo.EXPECT().GetVoucher(gomock.Any(), postgres.UUID(id)).
		Return(repository.Voucher{ID: postgres.UUID(id), DiscountType: string(domain.DiscountPercentage)}, nil)

	value := money.Cents(15000)
	_, err := svc.Update(context.Background(), id, domain.VoucherUpdate{DiscountValue: &value})
	assert.ErrorIs(t, err, domain.ErrPercentageTooHigh)
}

func TestVoucherService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		used    int64
		wantErr error
	}{
		{name: "unused", used: 0},
		{name: "referenced by orders", used: 2, wantErr: domain.ErrVoucherInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestVoucherService(t)
			id := uuid.New()

			repo.EXPECT().GetVoucher(gomock.Any(), postgres.UUID(id)).Return(repository.Voucher{ID: postgres.UUID(id)}, nil)
			repo.EXPECT().CountOrdersForVoucher(gomock.Any(), postgres.UUID(id)).Return(tt.used, nil)
			if tt.wantErr == nil {
				repo.EXPECT().DeleteVoucher(gomock.Any(), postgres.UUID(id)).Return(int64(1), nil)
			}

			err := svc.Delete(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
