package ports

import (
	"context"
	"time"
)

// KeyValueStore abstracts the backing key-value database. Each operation is
// independently fallible; no multi-key transactions are assumed.
type KeyValueStore interface {
	// Get returns the value for key. found is false when the key is absent;
	// a failed lookup must return an error, never ("", false, nil).
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetNX writes the value only if the key does not already exist and
	// reports whether the write happened.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	// Incr atomically increments an integer counter, creating it at zero
	// first if absent, and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
}
