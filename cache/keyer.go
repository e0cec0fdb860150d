package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Keyer derives deterministic cache keys for measurement targets.
//
// Contract:
// - Determinism: the same scope and target ID must always produce the same key.
// - Concurrency: implementations must be safe for concurrent use.
type Keyer interface {
	// Key derives a cache key from a manager scope and a target ID.
	Key(scope, targetID string) string
}

// DefaultKeyer generates SHA-256 based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a new default keyer.
func NewDefaultKeyer() *DefaultKeyer {
	return &DefaultKeyer{}
}

// Key derives a deterministic cache key.
// Format: size:<scope>:<hash>
// where hash is the first 16 characters of SHA-256(targetID). Target IDs may
// contain anything (selectors, paths); hashing keeps the key valid and of
// bounded length.
func (k *DefaultKeyer) Key(scope, targetID string) string {
	sum := sha256.Sum256([]byte(targetID))
	return fmt.Sprintf("size:%s:%s", scope, hex.EncodeToString(sum[:8]))
}

// Ensure DefaultKeyer implements Keyer
var _ Keyer = (*DefaultKeyer)(nil)
