package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-memory dimensions cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	policy  Policy
}

type memoryEntry struct {
	dims      Dimensions
	expiresAt time.Time
}

// NewMemory creates a new in-memory cache with the given policy.
func NewMemory(policy Policy) *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		policy:  policy,
	}
}

// Get retrieves remembered dimensions. Returns false on miss or expiry.
func (c *Memory) Get(_ context.Context, key string) (Dimensions, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return Dimensions{}, false
	}

	if time.Now().After(entry.expiresAt) {
		// Expired - clean up lazily
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return Dimensions{}, false
	}

	return entry.dims, true
}

// Set remembers dimensions with the given TTL. Degenerate dimensions (below
// the policy's minimum) and TTL=0 are silently not cached.
func (c *Memory) Set(_ context.Context, key string, dims Dimensions, ttl time.Duration) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if !c.policy.Cacheable(dims) {
		return nil
	}

	ttl = c.policy.EffectiveTTL(ttl)
	if ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{
		dims:      dims,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()

	return nil
}

// Delete forgets a key. Idempotent - no error on miss.
func (c *Memory) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Len returns the number of live entries, counting unexpired ones only.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	n := 0
	for _, entry := range c.entries {
		if now.Before(entry.expiresAt) {
			n++
		}
	}
	return n
}

// Ensure Memory implements Cache
var _ Cache = (*Memory)(nil)
