package postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/dukerupert/foodmania/internal/auth"
	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/repository"
	"github.com/google/uuid"
)

// UserService implements domain.UserService using PostgreSQL.
type UserService struct {
	repo   repository.Querier
	hasher *auth.Hasher
	tokens *auth.TokenManager
	logger *slog.Logger

	// dummyHash is compared against on unknown emails so that login timing
	// does not reveal which accounts exist.
	dummyOnce sync.Once
	dummyHash string
}

// Compile-time check to ensure UserService implements domain.UserService.
var _ domain.UserService = (*UserService)(nil)

// NewUserService creates a new UserService instance.
func NewUserService(repo repository.Querier, hasher *auth.Hasher, tokens *auth.TokenManager, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// mapRepoUserToDomain converts a repository User to a domain User.
func mapRepoUserToDomain(u repository.User) *domain.User {
	return &domain.User{
		ID:        FromUUID(u.ID),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone.String,
		Role:      domain.Role(u.Role),
		CreatedAt: u.CreatedAt.Time,
		UpdatedAt: u.UpdatedAt.Time,
	}
}

// =============================================================================
// Authentication Operations
// =============================================================================

// Signup creates a new USER account.
func (s *UserService) Signup(ctx context.Context, params domain.SignupParams) (*domain.User, error) {
	const op = "user.signup"

	email := normalizeEmail(params.Email)
	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.WithOp(domain.ErrUserExists, op)
	} else if !IsNoRows(err) {
		return nil, domain.Internal(err, op, "failed to check existing user")
	}

	hash, err := s.hasher.HashPassword(params.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) || errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, domain.NewValidationError(op, "password", err.Error())
		}
		return nil, domain.Internal(err, op, "failed to hash password")
	}

	user, err := s.repo.CreateUser(ctx, repository.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(params.FirstName),
		LastName:     strings.TrimSpace(params.LastName),
		Phone:        Text(strings.TrimSpace(params.Phone)),
		Role:         string(domain.RoleUser),
	})
	if err != nil {
		// Lost a race with a concurrent signup for the same email.
		if IsUniqueViolation(err, "users_email_key") {
			return nil, domain.WithOp(domain.ErrUserExists, op)
		}
		return nil, domain.Internal(err, op, "failed to create user")
	}

	s.logger.InfoContext(ctx, "user signed up", "user_id", FromUUID(user.ID))
	return mapRepoUserToDomain(user), nil
}

// Login verifies email/password and issues an access token.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	const op = "user.login"

	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if IsNoRows(err) {
			s.dummyOnce.Do(func() {
				s.dummyHash, _ = s.hasher.HashPassword("not-a-real-password")
			})
			_ = s.hasher.VerifyPassword(password, s.dummyHash)
			return nil, domain.WithOp(domain.ErrInvalidCredentials, op)
		}
		return nil, domain.Internal(err, op, "failed to get user")
	}

	if err := s.hasher.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.WithOp(domain.ErrInvalidCredentials, op)
		}
		return nil, domain.Internal(err, op, "failed to verify password")
	}

	u := mapRepoUserToDomain(user)
	token, expiresAt, err := s.tokens.Generate(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, domain.Internal(err, op, "failed to issue token")
	}

	return &domain.LoginResult{User: u, Token: token, ExpiresAt: expiresAt}, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, UUID(id))
	if err != nil {
		if IsNoRows(err) {
			return nil, domain.WithOp(domain.ErrUserNotFound, "user.get")
		}
		return nil, domain.Internal(err, "user.get", "failed to get user")
	}
	return mapRepoUserToDomain(user), nil
}

// Authenticate parses a token and reloads its user. The role always comes
// from the database, not the claim.
func (s *UserService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	const op = "user.authenticate"

	if token == "" {
		return nil, domain.WithOp(domain.ErrNoToken, op)
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, domain.WithOp(domain.ErrInvalidToken, op)
	}

	user, err := s.repo.GetUserByID(ctx, UUID(claims.UserID))
	if err != nil {
		if IsNoRows(err) {
			return nil, domain.Unauthorized(op, "Not authorized, user not found")
		}
		return nil, domain.Internal(err, op, "failed to load user")
	}

	return mapRepoUserToDomain(user).Principal(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
