package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// Get returns the raw JSON for key, or "" when the key does not exist.
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
