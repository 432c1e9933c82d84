// Package cache stores rendered artifacts and layouts keyed by content hash.
//
// Backends:
//   - [FileCache]: one JSON file per entry under the XDG cache dir (CLI)
//   - [RedisCache]: a shared Redis instance (API server, several replicas)
//   - [NewNullCache]: stores nothing (--no-cache, the "none" backend)
//
// Keys come from a [Keyer] so callers never build key strings by hand.
// The hash part of every key covers the operator, the catalog entries it
// references, and all options that affect output bytes.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the data for key and whether it was present.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by backends that can drop every entry.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Default entry lifetimes.
const (
	// LayoutTTL covers derived layouts. They only change when inputs do,
	// and inputs are part of the key, so this mostly bounds disk use.
	LayoutTTL = 7 * 24 * time.Hour

	// ArtifactTTL covers rendered SVG/PNG/PDF/JSON bytes.
	ArtifactTTL = 7 * 24 * time.Hour
)
