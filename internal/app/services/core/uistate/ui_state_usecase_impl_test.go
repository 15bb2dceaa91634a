package uistate

import (
	"context"
	"sync"
	"testing"
	"time"

	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/app/services/shared/locker"
	"clinic-console-service/internal/app/services/shared/redis/redistest"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/uistate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUsecase() *uiStateUsecase {
	repo := redistest.New()
	cfg := &config.InternalConfig{Session: config.AppSession{ExpiredTimeInHours: 1}}
	return NewUIStateUsecase(repo, locker.NewLockService(repo, zap.NewNop()), cfg, zap.NewNop()).(*uiStateUsecase)
}

func testSession(id string) *models.Session {
	return &models.Session{SessionID: id, ExpiresAt: time.Now().Add(time.Hour)}
}

func TestUIStateUsecase_GetDefaults(t *testing.T) {
	uc := newUsecase()

	state, err := uc.Get(context.Background(), testSession("s1"))

	require.NoError(t, err)
	assert.Equal(t, uistate.Pagination{Page: 1, PageSize: 10}, state.PaginationFor("clinics"))
	assert.Empty(t, state.Toasts.Items)
}

func TestUIStateUsecase_DispatchPersists(t *testing.T) {
	uc := newUsecase()
	ctx := context.Background()
	session := testSession("s1")

	_, err := uc.Dispatch(ctx, session, uistate.PageChanged("clinics", 20, 10))
	require.NoError(t, err)

	state, err := uc.Get(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, uistate.Pagination{Page: 3, PageSize: 10}, state.PaginationFor("clinics"))

	other, err := uc.Get(ctx, testSession("s2"))
	require.NoError(t, err)
	assert.Equal(t, 1, other.PaginationFor("clinics").Page)
}

func TestUIStateUsecase_ConcurrentToastsKeepUniqueIDs(t *testing.T) {
	uc := newUsecase()
	ctx := context.Background()
	session := testSession("s1")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, uc.PushToast(ctx, session, uistate.SeveritySuccess, "Success", "saved"))
		}()
	}
	wg.Wait()

	state, err := uc.Get(ctx, session)
	require.NoError(t, err)
	require.Len(t, state.Toasts.Items, 8)
	seen := map[string]bool{}
	for _, toast := range state.Toasts.Items {
		assert.False(t, seen[toast.ID])
		seen[toast.ID] = true
	}

	cleared, err := uc.ClearToasts(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, cleared.Toasts.Items)
	assert.Equal(t, 8, cleared.Toasts.Next)
}

func TestUIStateUsecase_InvalidAction(t *testing.T) {
	uc := newUsecase()

	_, err := uc.Dispatch(context.Background(), testSession("s1"), uistate.PageChanged("clinics", 0, 0))

	require.Error(t, err)
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
}
