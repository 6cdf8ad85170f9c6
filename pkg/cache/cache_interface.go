package cache

import (
	"context"
	"errors"
	"time"
)

// ErrDecode wraps any failure to unmarshal a stored value into dest,
// including errors from custom UnmarshalJSON methods.
var ErrDecode = errors.New("cached value cannot be decoded")

// Cache is the key/value contract behind per-session storage.
// Values are JSON encoded by the implementation.
type Cache interface {
	// Get unmarshals the stored value into dest.
	// found is false on a miss and dest is left untouched.
	// A stored value that does not fit dest returns an error wrapping ErrDecode.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key, ttl <= 0 means no expiry
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
