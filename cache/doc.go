// Package cache remembers the last dimensions observed for a measurement
// target so that a remounted session can seed its pending phase with a
// plausible size instead of starting from zero.
//
// It provides a Cache interface with a memory implementation, deterministic
// key derivation, and TTL policies that refuse to remember degenerate sizes.
package cache
