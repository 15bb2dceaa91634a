package contracts

import (
	"context"
	"time"
)

type LimiterDecision struct {
	Allowed        bool
	RetryAfterSecs int
}

type ResourceLimiter interface {
	Allow(ctx context.Context, group, resource string, window time.Duration, maxQuota int) (*LimiterDecision, error)
}
