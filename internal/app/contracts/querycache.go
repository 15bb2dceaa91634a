package contracts

import (
	"context"
	"time"
)

type QueryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value interface{}, tags []string, ttl time.Duration) error
	Invalidate(ctx context.Context, tags ...string) error
}
