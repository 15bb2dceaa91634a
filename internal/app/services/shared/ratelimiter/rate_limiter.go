package ratelimiter

import (
	"clinic-console-service/internal/app/contracts"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter stored in Redis with a TTL equal to
// the window. Keys are "<GROUP>:<resource>:<window id>".
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
	now   func() time.Time
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log, now: time.Now}
}

// Allow counts one hit for resource in group. A non-positive maxQuota disables
// the limit.
func (l *ResourceLimiter) Allow(ctx context.Context, group, resource string, window time.Duration, maxQuota int) (*contracts.LimiterDecision, error) {
	resource = strings.ToLower(strings.TrimSpace(resource))
	group = strings.ToUpper(strings.TrimSpace(group))
	windowSec := int64(window / time.Second)
	if windowSec <= 0 {
		windowSec = 60
	}
	if maxQuota <= 0 {
		return &contracts.LimiterDecision{Allowed: true}, nil
	}
	if resource == "" || group == "" {
		return &contracts.LimiterDecision{Allowed: false, RetryAfterSecs: int(windowSec)}, nil
	}

	now := l.now().UTC()
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	newCount, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("ResourceLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err))
		return &contracts.LimiterDecision{Allowed: false}, err
	}

	if newCount > int64(maxQuota) {
		nextWindowStart := (windowID + 1) * windowSec
		return &contracts.LimiterDecision{
			Allowed:        false,
			RetryAfterSecs: int(nextWindowStart-now.Unix()) + 1,
		}, nil
	}

	return &contracts.LimiterDecision{Allowed: true}, nil
}
