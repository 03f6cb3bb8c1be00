package cache

import (
	"context"
	"time"
)

// Provider is a shared expiring key-value store. Redis backs it in production,
// the in-memory implementation serves single-instance and test runs.
type Provider interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// SetIfAbsent stores value only when key is missing and reports whether it did.
	SetIfAbsent(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

var Instance Provider
