package clinicapi

import (
	"bytes"
	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Request describes one call to the clinic backend. It is rebuilt for every
// send so a replay carries the same body.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// BaseClient sends requests to the clinic backend on behalf of a console
// session. A 403 answer triggers the token refresh flow in refresh.go.
type BaseClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Tokens     contracts.TokenStore
	Locker     contracts.LockerService
	Limiter    *rate.Limiter
	Log        *zap.Logger

	RefreshTimeout  time.Duration
	RefreshLockTTL  time.Duration
	RefreshWaitPoll time.Duration

	refreshGroup singleflight.Group
}

// NewBaseClient builds the client from config. locker may be nil, in which case
// refreshes are only deduplicated inside this process.
func NewBaseClient(internalConfig *config.InternalConfig, tokens contracts.TokenStore, locker contracts.LockerService, logger *zap.Logger) *BaseClient {
	backend := internalConfig.Backend
	if !backend.DistributedRefreshLock {
		locker = nil
	}

	limit := rate.Inf
	if backend.RateLimitPerSecond > 0 {
		limit = rate.Limit(backend.RateLimitPerSecond)
	}

	return &BaseClient{
		BaseUrl:         strings.TrimRight(backend.BaseUrl, "/"),
		HTTPClient:      &http.Client{Timeout: backend.RequestTimeout()},
		Tokens:          tokens,
		Locker:          locker,
		Limiter:         rate.NewLimiter(limit, max(backend.RateLimitBurst, 1)),
		Log:             logger,
		RefreshTimeout:  backend.RefreshTimeout(),
		RefreshLockTTL:  backend.RefreshLockTTL(),
		RefreshWaitPoll: backend.RefreshWaitPoll(),
	}
}

// Do sends req with the session's access token. The returned response is
// either the first answer, the single replay after a refresh, or the original
// 403 when the session had to be logged out.
func (c *BaseClient) Do(ctx context.Context, req *Request) (*http.Response, error) {
	resp, _, err := c.do(ctx, req)
	return resp, err
}

// DoJSON sends req and decodes a 2xx body into out. Non-2xx answers become a
// CustomError carrying the backend status and message.
func (c *BaseClient) DoJSON(ctx context.Context, req *Request, out interface{}) error {
	resp, loggedOut, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(ctx, req, resp, loggedOut, out)
}

// DoAnonymous sends req without credentials and without the refresh flow.
func (c *BaseClient) DoAnonymous(ctx context.Context, req *Request, out interface{}) error {
	resp, err := c.send(ctx, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(ctx, req, resp, false, out)
}

func (c *BaseClient) do(ctx context.Context, req *Request) (*http.Response, bool, error) {
	sessionID := utils.SessionIDFromContext(ctx)
	if sessionID == "" {
		resp, err := c.send(ctx, req, "")
		return resp, false, err
	}

	pair, err := c.Tokens.LoadTokens(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	accessToken := ""
	if pair != nil {
		accessToken = pair.AccessToken
	}

	resp, err := c.send(ctx, req, accessToken)
	if err != nil || resp.StatusCode != constvars.StatusForbidden {
		return resp, false, err
	}

	return c.handleForbidden(ctx, req, sessionID, accessToken, resp)
}

func (c *BaseClient) send(ctx context.Context, req *Request, accessToken string) (*http.Response, error) {
	requestID := utils.GetRequestID(ctx)

	err := c.Limiter.Wait(ctx)
	if err != nil {
		return nil, exceptions.ErrThrottleHTTPRequest(err)
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(payload)
	}

	endpoint := c.BaseUrl + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		c.Log.Error("BaseClient.send error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		httpReq.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if accessToken != "" {
		httpReq.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+accessToken)
	}
	if requestID != "" {
		httpReq.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Log.Error("BaseClient.send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, req.Method),
			zap.String(constvars.LoggingEndpointKey, req.Path),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	c.Log.Debug("BaseClient.send backend answered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, req.Method),
		zap.String(constvars.LoggingEndpointKey, req.Path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	return resp, nil
}

func (c *BaseClient) decode(ctx context.Context, req *Request, resp *http.Response, loggedOut bool, out interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := readBackendMessage(resp.Body)
		c.Log.Warn("BaseClient.decode backend returned an error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingMethodKey, req.Method),
			zap.String(constvars.LoggingEndpointKey, req.Path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Bool("logged_out", loggedOut),
		)
		if loggedOut {
			return exceptions.ErrRefreshFailed(fmt.Errorf(constvars.ErrDevBackendRequestFailed, req.Method, req.Path, resp.StatusCode))
		}
		return exceptions.ErrBackendRequest(errors.New(message), resp.StatusCode, message, req.Method, req.Path)
	}

	if out == nil || resp.StatusCode == constvars.StatusNoContent {
		return nil
	}

	err := json.NewDecoder(resp.Body).Decode(out)
	if err != nil && !errors.Is(err, io.EOF) {
		return exceptions.ErrDecodeResponse(err, req.Path)
	}
	return nil
}

func readBackendMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var backendErr responses.BackendError
	if json.Unmarshal(raw, &backendErr) != nil {
		return ""
	}
	return backendErr.Text()
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()
}
