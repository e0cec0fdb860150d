package cache

import (
	"context"
	"errors"
	"strings"
	"time"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 512

// Sentinel errors for cache operations.
var (
	ErrNilCache   = errors.New("cache: cache is nil")
	ErrInvalidKey = errors.New("cache: key is invalid")
	ErrKeyTooLong = errors.New("cache: key exceeds max length")
)

// Dimensions is a remembered box size.
type Dimensions struct {
	Width  float64
	Height float64

	// ObservedAt is when the dimensions were measured.
	ObservedAt time.Time
}

// Cache stores the last observed dimensions per target key.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: methods should honor cancellation/deadlines where applicable.
// - Errors: Get never errors; it returns (Dimensions{}, false) on miss.
type Cache interface {
	// Get retrieves remembered dimensions. Returns false on miss or expiry.
	Get(ctx context.Context, key string) (Dimensions, bool)

	// Set remembers dimensions with the given TTL. TTL<=0 applies the
	// implementation's default; implementations may decline to store
	// values their policy rejects.
	Set(ctx context.Context, key string, dims Dimensions, ttl time.Duration) error

	// Delete forgets a key. Idempotent - no error on miss.
	Delete(ctx context.Context, key string) error
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject keys with newlines or carriage returns
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
