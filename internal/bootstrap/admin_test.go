package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dukerupert/foodmania/internal/auth"
	"github.com/dukerupert/foodmania/internal/repository"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func validConfig() *AdminConfig {
	return &AdminConfig{Email: " Admin@Example.com ", Password: "correct-horse-battery"}
}

func TestAdminConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AdminConfig
		wantErr bool
	}{
		{"valid", AdminConfig{Email: "a@example.com", Password: "123456789012"}, false},
		{"missing email", AdminConfig{Password: "123456789012"}, true},
		{"bad email", AdminConfig{Email: "admin", Password: "123456789012"}, true},
		{"short password", AdminConfig{Email: "a@example.com", Password: "short"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnsureAdmin_Skip(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)

	require.NoError(t, EnsureAdmin(context.Background(), repo, auth.NewHasher(4), nil, discard()))
	require.NoError(t, EnsureAdmin(context.Background(), repo, auth.NewHasher(4), &AdminConfig{}, discard()))
}

func TestEnsureAdmin_Creates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	hasher := auth.NewHasher(4)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@example.com").Return(repository.User{}, pgx.ErrNoRows)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg repository.CreateUserParams) (repository.User, error) {
			assert.Equal(t, "admin@example.com", arg.Email)
			assert.Equal(t, "ADMIN", arg.Role)
			assert.Equal(t, "Admin", arg.FirstName)
			assert.NoError(t, hasher.VerifyPassword("correct-horse-battery", arg.PasswordHash))
			return repository.User{Email: arg.Email, Role: arg.Role}, nil
		})

	require.NoError(t, EnsureAdmin(context.Background(), repo, hasher, validConfig(), discard()))
}

func TestEnsureAdmin_ExistingAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@example.com").
		Return(repository.User{Email: "admin@example.com", Role: "ADMIN"}, nil)

	require.NoError(t, EnsureAdmin(context.Background(), repo, auth.NewHasher(4), validConfig(), discard()))
}

func TestEnsureAdmin_PromotesExistingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@example.com").
		Return(repository.User{Email: "admin@example.com", Role: "USER"}, nil)
	repo.EXPECT().UpdateUserRole(gomock.Any(), repository.UpdateUserRoleParams{Role: "ADMIN"}).
		Return(repository.User{Role: "ADMIN"}, nil)

	require.NoError(t, EnsureAdmin(context.Background(), repo, auth.NewHasher(4), validConfig(), discard()))
}

func TestEnsureAdmin_ConcurrentCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)

	repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(repository.User{}, pgx.ErrNoRows)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(repository.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	require.NoError(t, EnsureAdmin(context.Background(), repo, auth.NewHasher(4), validConfig(), discard()))
}

func TestEnsureAdmin_LookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)

	repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(repository.User{}, errors.New("db down"))

	assert.Error(t, EnsureAdmin(context.Background(), repo, auth.NewHasher(4), validConfig(), discard()))
}
