package cache

import (
	"context"
	"time"
)

// nullCache stores nothing. It backs --no-cache, the "none" backend and
// runners built without a cache.
type nullCache struct{}

// NewNullCache returns a cache where every Get misses.
func NewNullCache() Cache { return nullCache{} }

// Disabled reports whether c never stores anything. Callers use it to skip
// encoding work and cache hooks.
func Disabled(c Cache) bool {
	if c == nil {
		return true
	}
	_, ok := c.(nullCache)
	return ok
}

func (nullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (nullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (nullCache) Delete(context.Context, string) error                     { return nil }
func (nullCache) Close() error                                             { return nil }
