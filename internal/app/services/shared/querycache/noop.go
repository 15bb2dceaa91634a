package querycache

import (
	"clinic-console-service/internal/app/contracts"
	"context"
	"time"
)

type disabledCache struct{}

// NewDisabledQueryCache always misses. Used when CACHE_ENABLED is false.
func NewDisabledQueryCache() contracts.QueryCache {
	return disabledCache{}
}

func (disabledCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (disabledCache) Set(ctx context.Context, key string, value interface{}, tags []string, ttl time.Duration) error {
	return nil
}

func (disabledCache) Invalidate(ctx context.Context, tags ...string) error {
	return nil
}
