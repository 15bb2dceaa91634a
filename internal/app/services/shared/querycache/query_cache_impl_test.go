package querycache

import (
	"context"
	"testing"
	"time"

	"clinic-console-service/internal/app/services/shared/redis/redistest"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type page struct {
	Items []string `json:"items"`
}

func TestQueryCache_SetGet(t *testing.T) {
	cache := NewQueryCache(redistest.New(), zap.NewNop())
	ctx := context.Background()

	_, hit, err := cache.Get(ctx, "clinics:p1")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, "clinics:p1", page{Items: []string{"a"}}, []string{ListTag("clinics")}, time.Minute))

	raw, hit, err := cache.Get(ctx, "clinics:p1")
	require.NoError(t, err)
	require.True(t, hit)

	var got page
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, []string{"a"}, got.Items)
}

func TestQueryCache_InvalidateByTag(t *testing.T) {
	repo := redistest.New()
	cache := NewQueryCache(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "clinics:p1", page{}, []string{ListTag("clinics")}, time.Minute))
	require.NoError(t, cache.Set(ctx, "clinics:p2", page{}, []string{ListTag("clinics")}, time.Minute))
	require.NoError(t, cache.Set(ctx, "clinics:7", page{}, []string{EntityTag("clinics", "7")}, time.Minute))
	require.NoError(t, cache.Set(ctx, "doctors:p1", page{}, []string{ListTag("doctors")}, time.Minute))

	require.NoError(t, cache.Invalidate(ctx, ListTag("clinics")))

	for _, key := range []string{"clinics:p1", "clinics:p2"} {
		_, hit, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, hit, key)
	}
	for _, key := range []string{"clinics:7", "doctors:p1"} {
		_, hit, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, hit, key)
	}
	assert.False(t, repo.Has("querycache:tag:clinics:LIST"))
}

func TestQueryCache_EntriesExpire(t *testing.T) {
	repo := redistest.New()
	cache := NewQueryCache(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", page{}, []string{"t"}, time.Second))
	repo.Advance(2 * time.Second)

	_, hit, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, time.Second, repo.TTL("querycache:tag:t"))
}

func TestQueryCache_TagOutlivesLongestEntry(t *testing.T) {
	repo := redistest.New()
	cache := NewQueryCache(repo, zap.NewNop())
	ctx := context.Background()
	tag := ListTag("clinics")

	require.NoError(t, cache.Set(ctx, "clinics:lookup", page{Items: []string{"a"}}, []string{tag}, 5*time.Minute))
	require.NoError(t, cache.Set(ctx, "clinics:list", page{Items: []string{"a"}}, []string{tag}, time.Minute))
	assert.GreaterOrEqual(t, repo.TTL("querycache:tag:clinics:LIST"), 5*time.Minute)

	repo.Advance(61 * time.Second)
	require.True(t, repo.Has("querycache:tag:clinics:LIST"))
	require.NoError(t, cache.Invalidate(ctx, tag))

	_, hit, err := cache.Get(ctx, "clinics:lookup")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestQueryCache_TagExpiryIsRaised(t *testing.T) {
	repo := redistest.New()
	cache := NewQueryCache(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", page{}, []string{"t"}, time.Minute))
	require.NoError(t, cache.Set(ctx, "long", page{}, []string{"t"}, 5*time.Minute))
	assert.Equal(t, 5*time.Minute, repo.TTL("querycache:tag:t"))

	repo.Advance(5*time.Minute + time.Second)
	assert.False(t, repo.Has("querycache:tag:t"))
}

func TestTags(t *testing.T) {
	assert.Equal(t, "clinics:LIST", ListTag("clinics"))
	assert.Equal(t, "clinics:42", EntityTag("clinics", "42"))
}
