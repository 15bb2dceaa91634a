package locker

import (
	"context"
	"testing"
	"time"

	"clinic-console-service/internal/app/services/shared/redis/redistest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLockService_TryLockIsExclusive(t *testing.T) {
	repo := redistest.New()
	svc := NewLockService(repo, zap.NewNop())
	ctx := context.Background()

	acquired, value, err := svc.TryLock(ctx, "lock:a", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, value)

	acquired, _, err = svc.TryLock(ctx, "lock:a", time.Second)
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, svc.Unlock(ctx, "lock:a", value))
	assert.False(t, repo.Has("lock:a"))

	acquired, _, err = svc.TryLock(ctx, "lock:a", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestLockService_UnlockRejectsForeignOwner(t *testing.T) {
	repo := redistest.New()
	svc := NewLockService(repo, zap.NewNop())
	ctx := context.Background()

	acquired, _, err := svc.TryLock(ctx, "lock:b", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	err = svc.Unlock(ctx, "lock:b", "someone-else")
	assert.Error(t, err)
	assert.True(t, repo.Has("lock:b"))
}

func TestLockService_UnlockMissingLock(t *testing.T) {
	svc := NewLockService(redistest.New(), zap.NewNop())
	assert.NoError(t, svc.Unlock(context.Background(), "lock:none", "value"))
}

func TestLockService_LockExpires(t *testing.T) {
	repo := redistest.New()
	svc := NewLockService(repo, zap.NewNop())
	ctx := context.Background()

	acquired, _, err := svc.TryLock(ctx, "lock:c", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	repo.Advance(2 * time.Second)

	acquired, _, err = svc.TryLock(ctx, "lock:c", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
}
