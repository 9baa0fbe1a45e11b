// Package bootstrap handles one-time initialization tasks for the application.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dukerupert/foodmania/internal/auth"
	"github.com/dukerupert/foodmania/internal/domain"
	"github.com/dukerupert/foodmania/internal/postgres"
	"github.com/dukerupert/foodmania/internal/repository"
)

// AdminConfig contains configuration for the initial admin user.
type AdminConfig struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Validate checks that the admin configuration is valid.
func (c *AdminConfig) Validate() error {
	if c.Email == "" {
		return errors.New("admin email is required")
	}
	if !strings.Contains(c.Email, "@") {
		return errors.New("admin email is invalid")
	}
	if len(c.Password) < 12 {
		return errors.New("admin password must be at least 12 characters")
	}
	return nil
}

// EnsureAdmin creates the initial admin account, or promotes an existing
// account with the same email. Safe to call on every startup.
//
// A nil config, or one without email and password, is skipped with a warning.
func EnsureAdmin(
	ctx context.Context,
	repo repository.Querier,
	hasher *auth.Hasher,
	cfg *AdminConfig,
	logger *slog.Logger,
) error {
	if cfg == nil || cfg.Email == "" || cfg.Password == "" {
		logger.Warn("bootstrap: skipping admin creation, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid admin configuration: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(cfg.Email))

	existing, err := repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return promote(ctx, repo, existing, logger)
	case !postgres.IsNoRows(err):
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}

	passwordHash, err := hasher.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	firstName := cfg.FirstName
	if firstName == "" {
		firstName = "Admin"
	}
	lastName := cfg.LastName
	if lastName == "" {
		lastName = "User"
	}

	_, err = repo.CreateUser(ctx, repository.CreateUserParams{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         string(domain.RoleAdmin),
	})
	if postgres.IsUniqueViolation(err, "users_email_key") {
		// another replica created it first
		logger.Info("bootstrap: admin user already exists (concurrent creation)", "email", email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("bootstrap: admin user created", "email", email)
	return nil
}

func promote(ctx context.Context, repo repository.Querier, user repository.User, logger *slog.Logger) error {
	if user.Role == string(domain.RoleAdmin) {
		logger.Info("bootstrap: admin user already exists", "email", user.Email)
		return nil
	}

	if _, err := repo.UpdateUserRole(ctx, repository.UpdateUserRoleParams{
		ID:   user.ID,
		Role: string(domain.RoleAdmin),
	}); err != nil {
		return fmt.Errorf("failed to promote admin user: %w", err)
	}

	logger.Warn("bootstrap: existing user promoted to admin", "email", user.Email)
	return nil
}
