package service

import (
	"context"
	"time"
)

// Cache is a byte-value cache with TTL semantics. Get returns (nil, nil)
// on a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
