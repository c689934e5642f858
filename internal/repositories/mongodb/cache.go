package mongodb

import (
	"context"
	"time"
)

// CacheService is the slice of the redis client the repositories use.
// Implementations may be nil; every cache call site guards for that.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
