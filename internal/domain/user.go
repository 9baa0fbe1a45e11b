package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// USER DOMAIN TYPES
// =============================================================================

// Role is the authorization level of an account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User-related domain errors.
var (
	ErrUserNotFound       = &Error{Code: ENOTFOUND, Message: "User not found"}
	ErrUserExists         = &Error{Code: ECONFLICT, Message: "User already exists. Try logging in."}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid credentials"}
	ErrInvalidRole        = &Error{Code: EINVALID, Message: "Invalid role. Must be USER or ADMIN"}
	ErrCannotDeleteSelf   = &Error{Code: EINVALID, Message: "You cannot delete your own account"}
	ErrNoToken            = &Error{Code: EUNAUTHORIZED, Message: "Not authorized, no token"}
	ErrInvalidToken       = &Error{Code: EFORBIDDEN, Message: "Invalid or expired token"}
	ErrAdminOnly          = &Error{Code: EFORBIDDEN, Message: "Access denied. Admins only."}
)

// User is an account as exposed by the API. The password hash never leaves
// the repository layer.
type User struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Phone      string    `json:"phone,omitempty"`
	Role       Role      `json:"role"`
	OrderCount int64     `json:"orderCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Principal returns the minimal context projection of the user.
func (u *User) Principal() *Principal {
	return &Principal{ID: u.ID, Email: u.Email, Role: u.Role}
}

// SignupParams contains the fields required to register an account.
type SignupParams struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// UserListParams filters the admin user listing.
type UserListParams struct {
	Page   int
	Limit  int
	Search string
}

// UserService provides account and authentication operations.
type UserService interface {
	// Signup creates a USER account. Returns ErrUserExists if the email is taken.
	Signup(ctx context.Context, params SignupParams) (*User, error)

	// Login verifies credentials and issues a signed token.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)

	// Authenticate parses a token and re-loads its user so that deleted
	// accounts and role changes take effect immediately.
	Authenticate(ctx context.Context, token string) (*Principal, error)
}
