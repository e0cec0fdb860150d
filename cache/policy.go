package cache

import "time"

// Policy configures what gets remembered and for how long.
type Policy struct {
	// DefaultTTL is the TTL to use when none is specified.
	// If zero, caching is disabled by default.
	DefaultTTL time.Duration

	// MaxTTL is the maximum allowed TTL. Override TTLs are clamped to this.
	// If zero, no maximum is enforced.
	MaxTTL time.Duration

	// MinDimension is the smallest width or height worth remembering.
	// Sizes below it are the degenerate fallback of an exhausted session
	// and must never seed a future one. If zero, 1 is used.
	MinDimension float64
}

// DefaultPolicy returns the default caching policy.
// DefaultTTL: 5 minutes, MaxTTL: 1 hour, MinDimension: 1
func DefaultPolicy() Policy {
	return Policy{
		DefaultTTL:   5 * time.Minute,
		MaxTTL:       1 * time.Hour,
		MinDimension: 1,
	}
}

// NoCachePolicy returns a policy that disables caching entirely.
func NoCachePolicy() Policy {
	return Policy{}
}

// ShouldCache returns true if caching is enabled by this policy.
func (p Policy) ShouldCache() bool {
	return p.DefaultTTL > 0
}

// Cacheable reports whether dims are worth remembering under this policy.
func (p Policy) Cacheable(dims Dimensions) bool {
	if !p.ShouldCache() {
		return false
	}
	min := p.MinDimension
	if min <= 0 {
		min = 1
	}
	return dims.Width >= min && dims.Height >= min
}

// EffectiveTTL returns the TTL to use, applying defaults and clamping.
func (p Policy) EffectiveTTL(override time.Duration) time.Duration {
	// Use default if no override (or negative override)
	ttl := override
	if ttl <= 0 {
		ttl = p.DefaultTTL
	}

	// Clamp to MaxTTL if set
	if p.MaxTTL > 0 && ttl > p.MaxTTL {
		ttl = p.MaxTTL
	}

	return ttl
}
