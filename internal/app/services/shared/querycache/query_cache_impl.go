package querycache

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/pkg/constvars"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type queryCache struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewQueryCache(repo contracts.RedisRepository, logger *zap.Logger) contracts.QueryCache {
	return &queryCache{
		redisRepo: repo,
		Log:       logger,
	}
}

// Get returns the JSON stored under key.
func (c *queryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.redisRepo.Get(ctx, entryKey(key))
	if err != nil {
		return nil, false, err
	}
	hit := raw != ""
	c.Log.Debug("queryCache.Get",
		zap.String(constvars.LoggingRequestIDKey, requestIDFrom(ctx)),
		zap.String(constvars.LoggingCacheKey, key),
		zap.Bool(constvars.LoggingCacheHitKey, hit),
	)
	if !hit {
		return nil, false, nil
	}
	return []byte(raw), true, nil
}

// Set stores value and registers the entry under every tag. A tag set's expiry
// is only ever raised, so it outlives the longest-lived entry it references.
func (c *queryCache) Set(ctx context.Context, key string, value interface{}, tags []string, ttl time.Duration) error {
	redisKey := entryKey(key)
	err := c.redisRepo.Set(ctx, redisKey, value, ttl)
	if err != nil {
		return err
	}

	for _, tag := range tags {
		tagKey := tagKey(tag)
		err = c.redisRepo.AddToSet(ctx, tagKey, redisKey)
		if err != nil {
			return err
		}
		err = c.redisRepo.ExpireGT(ctx, tagKey, ttl)
		if err != nil {
			return err
		}
	}

	c.Log.Debug("queryCache.Set",
		zap.String(constvars.LoggingRequestIDKey, requestIDFrom(ctx)),
		zap.String(constvars.LoggingCacheKey, key),
		zap.Strings(constvars.LoggingCacheTagsKey, tags),
	)
	return nil
}

// Invalidate drops every entry registered under the tags and the tag sets.
func (c *queryCache) Invalidate(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		tagKey := tagKey(tag)
		members, err := c.redisRepo.GetSetMembers(ctx, tagKey)
		if err != nil {
			return err
		}
		err = c.redisRepo.Delete(ctx, append(members, tagKey)...)
		if err != nil {
			return err
		}
	}

	c.Log.Info("queryCache.Invalidate",
		zap.String(constvars.LoggingRequestIDKey, requestIDFrom(ctx)),
		zap.Strings(constvars.LoggingCacheTagsKey, tags),
	)
	return nil
}

// ListTag is the tag of every list page of resource.
func ListTag(resource string) string {
	return fmt.Sprintf(constvars.CacheTagFormat, resource, constvars.CacheTagListSuffix)
}

// EntityTag is the tag of every cached view of one record.
func EntityTag(resource, id string) string {
	return fmt.Sprintf(constvars.CacheTagFormat, resource, id)
}

func entryKey(key string) string {
	return fmt.Sprintf(constvars.RedisKeyQueryCacheEntryFormat, key)
}

func tagKey(tag string) string {
	return fmt.Sprintf(constvars.RedisKeyQueryCacheTagFormat, tag)
}

func requestIDFrom(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
