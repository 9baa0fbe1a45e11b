package storage

import (
	"github.com/dukerupert/foodmania/internal/domain"
)

// Configuration and key errors. They carry domain codes so a handler can
// map them without knowing about storage.
var (
	ErrR2AccountIDRequired   = &domain.Error{Code: domain.EINVALID, Op: "storage.r2", Message: "R2 account ID is required"}
	ErrR2CredentialsRequired = &domain.Error{Code: domain.EINVALID, Op: "storage.r2", Message: "R2 credentials are required"}
	ErrR2BucketRequired      = &domain.Error{Code: domain.EINVALID, Op: "storage.r2", Message: "R2 bucket name is required"}

	// ErrInvalidKey is returned for keys that escape the storage root.
	ErrInvalidKey = &domain.Error{Code: domain.EINVALID, Op: "storage.local", Message: "invalid storage key"}
)

// ErrUnknownProvider creates an error for unknown storage providers.
func ErrUnknownProvider(provider string) error {
	return domain.Errorf(domain.EINVALID, "storage.new", "unknown storage provider: %s", provider)
}
