package uistate

import (
	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/uistate"
	"clinic-console-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	lockTTL      = 2 * time.Second
	lockAttempts = 40
	lockBackoff  = 25 * time.Millisecond
)

type uiStateUsecase struct {
	RedisRepository contracts.RedisRepository
	Locker          contracts.LockerService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewUIStateUsecase(
	redisRepository contracts.RedisRepository,
	locker contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UIStateUsecase {
	return &uiStateUsecase{
		RedisRepository: redisRepository,
		Locker:          locker,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *uiStateUsecase) Get(ctx context.Context, session *models.Session) (*uistate.State, error) {
	state, err := uc.load(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Dispatch reduces action into the session's state under a per-session lock so
// concurrent screen actions do not lose toasts.
func (uc *uiStateUsecase) Dispatch(ctx context.Context, session *models.Session, action uistate.Action) (*uistate.State, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Debug("uiStateUsecase.Dispatch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingActionKey, string(action.Type)),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeyUIStateLockFormat, session.SessionID)
	lockValue, err := uc.acquire(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	defer uc.Locker.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)

	state, err := uc.load(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}

	next, err := uistate.Reduce(state, action)
	if err != nil {
		return nil, exceptions.ErrUnknownUIStateAction(err, string(action.Type))
	}

	err = uc.RedisRepository.Set(ctx, stateKey(session.SessionID), next, uc.ttl(session))
	if err != nil {
		uc.Log.Error("uiStateUsecase.Dispatch error saving state",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &next, nil
}

func (uc *uiStateUsecase) PushToast(ctx context.Context, session *models.Session, severity uistate.Severity, summary, detail string) error {
	_, err := uc.Dispatch(ctx, session, uistate.ToastAdded(severity, summary, detail))
	return err
}

func (uc *uiStateUsecase) ClearToasts(ctx context.Context, session *models.Session) (*uistate.State, error) {
	return uc.Dispatch(ctx, session, uistate.ToastsCleared())
}

func (uc *uiStateUsecase) acquire(ctx context.Context, lockKey string) (string, error) {
	for attempt := 0; attempt < lockAttempts; attempt++ {
		acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, lockTTL)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}

		select {
		case <-ctx.Done():
			return "", exceptions.ErrServerDeadlineExceeded(ctx.Err())
		case <-time.After(lockBackoff):
		}
	}
	return "", exceptions.ErrUIStateLock(errors.New(lockKey))
}

func (uc *uiStateUsecase) load(ctx context.Context, sessionID string) (uistate.State, error) {
	raw, err := uc.RedisRepository.Get(ctx, stateKey(sessionID))
	if err != nil {
		return uistate.State{}, err
	}
	if raw == "" {
		return uistate.New(), nil
	}

	state := uistate.New()
	err = json.Unmarshal([]byte(raw), &state)
	if err != nil {
		return uistate.State{}, exceptions.ErrCannotParseJSON(err)
	}
	if state.Toasts.Items == nil {
		state.Toasts.Items = []uistate.Toast{}
	}
	return state, nil
}

func (uc *uiStateUsecase) ttl(session *models.Session) time.Duration {
	if !session.ExpiresAt.IsZero() {
		if ttl := time.Until(session.ExpiresAt); ttl > time.Second {
			return ttl
		}
	}
	return uc.InternalConfig.Session.TTL()
}

func stateKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeyUIStateFormat, sessionID)
}
