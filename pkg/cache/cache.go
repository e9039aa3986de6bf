// Package cache provides pluggable byte caches for pipeline stage results.
//
// Three backends are available: a file cache for CLI usage, Redis and
// MongoDB for server deployments, and a null cache that disables caching.
// Keys are produced by a Keyer so that every stage's key layout lives in
// one place.
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached stage. Encoded documents are deterministic in
// their inputs and never go stale; solver and checker results follow suit
// but get a finite TTL so backend storage cannot grow without bound.
const (
	TTLDocument = 0
	TTLSolution = 7 * 24 * time.Hour
	TTLReport   = 7 * 24 * time.Hour
)

// Cache is a byte-oriented cache with TTL support.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
