// Package cache stores rendered artifacts between CLI runs.
//
// Rendering a board or a dictionary trie through Graphviz is the slowest
// step of the CLI, and the output only depends on the input content and the
// render options. The cache maps a key derived from both to the rendered
// bytes.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under the user cache directory
//   - [RedisCache]: a shared Redis server, for teams rendering the same boards
//   - [NullCache]: stores nothing, used by --no-cache and in tests
//
// [Instrument] wraps any backend so hits, misses and writes are reported to
// the observability cache hooks.
//
// # Keys
//
// A [Keyer] turns content hashes and options into keys. [DefaultKeyer]
// hashes the options so that any change produces a new key;
// [ScopedKeyer] adds a namespace prefix so entries from different program
// versions never collide.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values per entry kind.
const (
	// TTLRender applies to rendered DOT and SVG output.
	TTLRender = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Fetch returns the cached value for key, or computes, stores and returns
// it. The boolean reports whether the value came from the cache. Backend
// read errors are treated as misses and write errors are ignored, so a
// broken cache never fails the caller.
func Fetch(ctx context.Context, c Cache, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, bool, error) {
	if data, err := Load(ctx, c, key); err == nil {
		return data, true, nil
	}
	data, err := compute()
	if err != nil {
		return nil, false, err
	}
	_ = c.Set(ctx, key, data, ttl)
	return data, false, nil
}

// Load is Get with the miss reported as [ErrCacheMiss].
func Load(ctx context.Context, c Cache, key string) ([]byte, error) {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCacheMiss
	}
	return data, nil
}
