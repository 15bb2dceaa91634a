package clinicapi

import (
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultRefreshTimeout  = 10 * time.Second
	defaultRefreshWaitPoll = 100 * time.Millisecond
)

// handleForbidden runs after the backend rejected usedToken. The request is
// replayed at most once.
func (c *BaseClient) handleForbidden(ctx context.Context, req *Request, sessionID, usedToken string, original *http.Response) (*http.Response, bool, error) {
	requestID := utils.GetRequestID(ctx)

	current, err := c.Tokens.LoadTokens(ctx, sessionID)
	if err != nil {
		c.Log.Error("BaseClient.handleForbidden error loading tokens",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return original, false, nil
	}

	// Another request already rotated the pair.
	if current != nil && current.AccessToken != "" && current.AccessToken != usedToken {
		drain(original)
		resp, err := c.send(ctx, req, current.AccessToken)
		return resp, false, err
	}

	// The session is already gone, a concurrent request logged it out.
	if current == nil {
		return original, true, nil
	}

	refreshToken := current.RefreshToken
	if refreshToken == "" {
		if session, ok := utils.SessionFromContext(ctx); ok {
			refreshToken = session.RefreshToken
		}
	}
	if refreshToken == "" {
		c.Log.Warn("BaseClient.handleForbidden no refresh token, logging out",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		c.logout(ctx, sessionID)
		return original, true, nil
	}

	pair, err := c.refresh(ctx, sessionID, usedToken, refreshToken)
	if err != nil {
		if ctx.Err() != nil {
			drain(original)
			return nil, false, exceptions.ErrServerDeadlineExceeded(ctx.Err())
		}
		c.Log.Warn("BaseClient.handleForbidden refresh failed, logging out",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		c.logout(ctx, sessionID)
		return original, true, nil
	}

	drain(original)
	resp, err := c.send(ctx, req, pair.AccessToken)
	return resp, false, err
}

// refresh joins the in-flight refresh of (session, stale token) or starts it.
// The refresh itself is detached from the caller's cancellation so one
// impatient caller cannot fail it for the others.
func (c *BaseClient) refresh(ctx context.Context, sessionID, staleToken, refreshToken string) (*models.TokenPair, error) {
	flightKey := sessionID + ":" + staleToken
	result := c.refreshGroup.DoChan(flightKey, func() (interface{}, error) {
		timeout := c.RefreshTimeout
		if timeout <= 0 {
			timeout = defaultRefreshTimeout
		}
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		return c.refreshOnce(refreshCtx, sessionID, staleToken, refreshToken)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.TokenPair), nil
	}
}

func (c *BaseClient) refreshOnce(ctx context.Context, sessionID, staleToken, refreshToken string) (*models.TokenPair, error) {
	requestID := utils.GetRequestID(ctx)

	if c.Locker != nil {
		lockKey := fmt.Sprintf(constvars.RedisKeyTokenRefreshLockFormat, sessionID)
		acquired, lockValue, err := c.Locker.TryLock(ctx, lockKey, c.RefreshLockTTL)
		switch {
		case err != nil:
			c.Log.Warn("BaseClient.refreshOnce lock unavailable, refreshing without it",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		case !acquired:
			return c.waitForRotation(ctx, sessionID, staleToken)
		default:
			defer c.Locker.Unlock(context.WithoutCancel(ctx), lockKey, lockValue)
		}
	}

	// A flight for the same stale token may have finished between the
	// caller's check and this one.
	current, err := c.Tokens.LoadTokens(ctx, sessionID)
	if err == nil && current != nil && current.AccessToken != "" && current.AccessToken != staleToken {
		return current, nil
	}

	pair, err := c.callRefresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if pair.RefreshToken == "" {
		pair.RefreshToken = refreshToken
	}

	err = c.Tokens.SaveTokens(ctx, sessionID, pair)
	if err != nil {
		return nil, err
	}

	c.Log.Info("BaseClient.refreshOnce rotated backend tokens",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return pair, nil
}

// waitForRotation polls the store while another replica refreshes.
func (c *BaseClient) waitForRotation(ctx context.Context, sessionID, staleToken string) (*models.TokenPair, error) {
	poll := c.RefreshWaitPoll
	if poll <= 0 {
		poll = defaultRefreshWaitPoll
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, exceptions.ErrRefreshWaitTimeout(ctx.Err())
		case <-ticker.C:
			current, err := c.Tokens.LoadTokens(ctx, sessionID)
			if err != nil {
				return nil, err
			}
			if current == nil {
				return nil, exceptions.ErrSessionNotFound(errors.New(sessionID))
			}
			if current.AccessToken != "" && current.AccessToken != staleToken {
				return current, nil
			}
		}
	}
}

func (c *BaseClient) callRefresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	pair := new(models.TokenPair)
	err := c.DoAnonymous(ctx, &Request{
		Method: constvars.MethodPost,
		Path:   constvars.ResourceAuthRefresh,
		Body:   requests.BackendRefresh{RefreshToken: refreshToken},
	}, pair)
	if err != nil {
		return nil, exceptions.ErrRefreshFailed(errors.New(err.Error()))
	}
	if pair.AccessToken == "" {
		return nil, exceptions.ErrRefreshFailed(errors.New("empty access token"))
	}
	return pair, nil
}

func (c *BaseClient) logout(ctx context.Context, sessionID string) {
	err := c.Tokens.Logout(context.WithoutCancel(ctx), sessionID)
	if err != nil {
		c.Log.Error("BaseClient.logout error clearing session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
	}
}
