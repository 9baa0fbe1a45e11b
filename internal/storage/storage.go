// Package storage stores uploaded dish images.
package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations.
// Implementations use the local filesystem or Cloudflare R2.
type Storage interface {
	// Put stores a file and returns its public URL.
	// The key should be a unique identifier (e.g., "dishes/<uuid>/<file>.jpg").
	Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error)

	// Delete removes a file by its key.
	// Returns nil if the file doesn't exist (idempotent).
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for accessing a stored file.
	URL(key string) string

	// Key is the inverse of URL. ok is false for URLs this storage did not issue.
	Key(url string) (key string, ok bool)
}

// Config selects and configures a Storage backend.
type Config struct {
	Provider string // "local" (default) or "r2"

	LocalPath string
	LocalURL  string

	R2AccountID   string
	R2AccessKeyID string
	R2SecretKey   string
	R2BucketName  string
	R2PublicURL   string
	R2Endpoint    string
}

// NewStorage creates a Storage implementation based on configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Provider {
	case "local", "":
		return NewLocalStorage(cfg.LocalPath, cfg.LocalURL)
	case "r2":
		return NewR2Storage(R2Config{
			AccountID:   cfg.R2AccountID,
			AccessKeyID: cfg.R2AccessKeyID,
			SecretKey:   cfg.R2SecretKey,
			BucketName:  cfg.R2BucketName,
			PublicURL:   cfg.R2PublicURL,
			Endpoint:    cfg.R2Endpoint,
		})
	default:
		return nil, ErrUnknownProvider(cfg.Provider)
	}
}

func trimPrefix(url, prefix string) (string, bool) {
	if prefix == "" || len(url) <= len(prefix)+1 || url[:len(prefix)] != prefix || url[len(prefix)] != '/' {
		return "", false
	}
	return url[len(prefix)+1:], true
}
