package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      &Error{Code: EINVALID, Message: "invalid input"},
			expected: "invalid input",
		},
		{
			name:     "with operation",
			err:      &Error{Code: EINVALID, Op: "cart.add", Message: "invalid input"},
			expected: "cart.add: invalid input",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "order.create",
				Message: "failed to save",
				Err:     errors.New("database connection failed"),
			},
			expected: "order.create: failed to save: database connection failed",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "failed to save",
				Err:     errors.New("database connection failed"),
			},
			expected: "failed to save: database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Code: EINTERNAL, Message: "wrapped", Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", unwrapped, underlying)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestError_IsSentinelWithOp(t *testing.T) {
	err := WithOp(ErrEmptyCart, "checkout.demo")

	if !errors.Is(err, ErrEmptyCart) {
		t.Error("sentinel annotated with an op should still match the sentinel")
	}
	if errors.Is(err, ErrCartItemNotFound) {
		t.Error("different sentinel must not match")
	}
	if ErrorOp(err) != "checkout.demo" {
		t.Errorf("ErrorOp() = %q, want checkout.demo", ErrorOp(err))
	}
	if ErrEmptyCart.Op != "" {
		t.Error("WithOp must not mutate the sentinel")
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"domain error", &Error{Code: EINVALID, Message: "test"}, EINVALID},
		{"wrapped domain error", fmt.Errorf("wrapped: %w", &Error{Code: ENOTFOUND, Message: "test"}), ENOTFOUND},
		{"validation error", NewValidationError("dish.create", "name", "required"), EINVALID},
		{"upstream error", Upstream(errors.New("timeout"), "checkout.session", "gateway"), EUPSTREAM},
		{"non-domain error", errors.New("some error"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"domain error with message", &Error{Code: EINVALID, Message: "Quantity must be at least 1"}, "Quantity must be at least 1"},
		{"internal error hides message", &Error{Code: EINTERNAL, Message: "pq: relation carts does not exist"}, "An internal error occurred. Please try again later."},
		{"upstream error hides message", Upstream(errors.New("dial tcp"), "", "stripe down"), "Payment provider is unavailable. Please try again later."},
		{"non-domain error returns generic message", errors.New("some internal detail"), "An internal error occurred. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, EINTERNAL, "op", "msg") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("auth.signup", "email", "must be a valid email")
	err = AddFieldError(err, "password", "must be at least 8 characters")

	fields := GetValidationFields(err)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields["email"] != "must be a valid email" {
		t.Errorf("unexpected email message %q", fields["email"])
	}
	if got := err.Error(); got != "auth.signup: validation failed for 2 fields" {
		t.Errorf("Error() = %q", got)
	}
	if !IsValidationError(fmt.Errorf("wrap: %w", err)) {
		t.Error("IsValidationError should see through wrapping")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{NotFound("dish.get", "dish", "abc"), ENOTFOUND},
		{Unauthorized("auth.login", "invalid credentials"), EUNAUTHORIZED},
		{Forbidden("review.update", "not yours"), EFORBIDDEN},
		{Invalid("cart.add", "bad"), EINVALID},
		{Conflict("dish.create", "Dish already exists"), ECONFLICT},
		{Internal(errors.New("x"), "order.list", "failed"), EINTERNAL},
	}

	for _, tt := range tests {
		if !IsCode(tt.err, tt.code) {
			t.Errorf("%v: expected code %s, got %s", tt.err, tt.code, ErrorCode(tt.err))
		}
	}
}
