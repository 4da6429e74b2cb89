// Package cache defines the covering-cache store contract.
package cache

import (
	"context"
	"time"
)

// Store is a byte-value cache tier. Get distinguishes a miss (ok false)
// from a transport failure (err non-nil).
type Store interface {
	Get(ctx context.Context, key string) (val []byte, ok bool, err error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
