package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by GetString when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the key/value contract used for short-lived auth state.
// Implementations: Redis in production, in-memory in tests.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found is false on a miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	Exists(ctx context.Context, key string) (bool, error)

	Ping(ctx context.Context) error
}
