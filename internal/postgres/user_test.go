package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/dukerupert/foodmania/internal/auth"
	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUserService(t *testing.T) (*UserService, *repository.MockQuerier, *auth.Hasher, *auth.TokenManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repository.NewMockQuerier(ctrl)
	hasher := auth.NewHasher(4)
	tokens, err := auth.NewTokenManager(testSecret, time.Hour, "foodmania")
	require.NoError(t, err)
	return NewUserService(repo, hasher, tokens, discardLogger()), repo, hasher, tokens
}

func repoUser(t *testing.T, hasher *auth.Hasher, id uuid.UUID, role domain.Role) repository.User {
	t.Helper()
	hash, err := hasher.HashPassword("correct-horse")
	require.NoError(t, err)
	return repository.User{
		ID:           UUID(id),
		Email:        "ada@example.com",
		PasswordHash: hash,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Role:         string(role),
		CreatedAt:    Timestamptz(time.Now()),
		UpdatedAt:    Timestamptz(time.Now()),
	}
}

func TestUserService_Signup(t *testing.T) {
	svc, repo, _, _ := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(repository.User{}, pgx.ErrNoRows)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg repository.CreateUserParams) (repository.User, error) {
			assert.Equal(t, "ada@example.com", arg.Email)
			assert.Equal(t, "USER", arg.Role)
			assert.NotEqual(t, "correct-horse", arg.PasswordHash)
			assert.False(t, arg.Phone.Valid)
			return repository.User{ID: UUID(uuid.New()), Email: arg.Email, Role: arg.Role}, nil
		})

	u, err := svc.Signup(ctx, domain.SignupParams{
		Email:     "  Ada@Example.com ",
		Password:  "correct-horse",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, u.Role)
}

func TestUserService_Signup_Duplicate(t *testing.T) {
	t.Run("existing row", func(t *testing.T) {
		svc, repo, _, _ := newTestUserService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(repository.User{Email: "ada@example.com"}, nil)

		_, err := svc.Signup(context.Background(), domain.SignupParams{Email: "ada@example.com", Password: "correct-horse"})
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		svc, repo, _, _ := newTestUserService(t)
		repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(repository.User{}, pgx.ErrNoRows)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(repository.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := svc.Signup(context.Background(), domain.SignupParams{Email: "ada@example.com", Password: "correct-horse"})
		assert.ErrorIs(t, err, domain.ErrUserExists)
	})
}

func TestUserService_Login(t *testing.T) {
	svc, repo, hasher, tokens := newTestUserService(t)
	id := uuid.New()
	row := repoUser(t, hasher, id, domain.RoleAdmin)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "ada@example.com").Return(row, nil).Times(2)

	res, err := svc.Login(context.Background(), "ADA@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, id, res.User.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)

	claims, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)

	_, err = svc.Login(context.Background(), "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, repo, _, _ := newTestUserService(t)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").Return(repository.User{}, pgx.ErrNoRows)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, domain.EUNAUTHORIZED, domain.ErrorCode(err))
}

func TestUserService_Authenticate(t *testing.T) {
	svc, repo, hasher, tokens := newTestUserService(t)
	id := uuid.New()

	// The token says USER, the database says ADMIN: the database wins.
	token, _, err := tokens.Generate(id, "ada@example.com", "USER")
	require.NoError(t, err)

	repo.EXPECT().GetUserByID(gomock.Any(), UUID(id)).Return(repoUser(t, hasher, id, domain.RoleAdmin), nil)

	p, err := svc.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.True(t, p.IsAdmin())
}

func TestUserService_Authenticate_Errors(t *testing.T) {
	svc, repo, _, tokens := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNoToken)

	_, err = svc.Authenticate(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.Equal(t, domain.EFORBIDDEN, domain.ErrorCode(err))

	id := uuid.New()
	token, _, err := tokens.Generate(id, "gone@example.com", "USER")
	require.NoError(t, err)
	repo.EXPECT().GetUserByID(gomock.Any(), UUID(id)).Return(repository.User{}, pgx.ErrNoRows)

	_, err = svc.Authenticate(ctx, token)
	assert.Equal(t, domain.EUNAUTHORIZED, domain.ErrorCode(err))
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, repo, _, _ := newTestUserService(t)
	repo.EXPECT().GetUserByID(gomock.Any(), gomock.Any()).Return(repository.User{}, pgx.ErrNoRows)

	_, err := svc.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
