package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockAuthUsecase) Profile(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Profile), args.Error(1)
}

func (m *MockAuthUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func newTestMiddlewares(authUsecase *MockAuthUsecase) *Middlewares {
	return NewMiddlewares(zap.NewNop(), authUsecase, &config.InternalConfig{
		App: config.App{RequestBodyLimitInMegabyte: 1, RequestTimeoutInSeconds: 5},
	})
}

func TestAuthenticate(t *testing.T) {
	authUsecase := new(MockAuthUsecase)
	middlewares := newTestMiddlewares(authUsecase)
	doctor := &models.Session{SessionID: "s-1", UserID: "d-1", Role: models.RoleDoctor}
	authUsecase.On("ResolveSession", mock.Anything, "valid").Return(doctor, nil)
	authUsecase.On("ResolveSession", mock.Anything, "expired").Return(nil, exceptions.ErrSessionNotFound(nil))

	handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := utils.SessionFromContext(r.Context())
		assert.True(t, ok, "session should be set in context")
		assert.Equal(t, "s-1", session.SessionID)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/navigation", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer valid")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/navigation", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/navigation", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer expired")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientNotLoggedIn)
	})
}

func TestRequireRoles(t *testing.T) {
	middlewares := newTestMiddlewares(new(MockAuthUsecase))
	handler := middlewares.RequireRoles(models.RoleAdmin, models.RoleClinic)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	cases := []struct {
		name     string
		session  *models.Session
		expected int
	}{
		{name: "Allowed role", session: &models.Session{Role: models.RoleClinic}, expected: http.StatusOK},
		{name: "Other role", session: &models.Session{Role: models.RolePatient}, expected: http.StatusForbidden},
		{name: "No session", session: nil, expected: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/admin/clinics", nil)
			if tc.session != nil {
				req = req.WithContext(utils.ContextWithSession(req.Context(), tc.session))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expected, rr.Code)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares(new(MockAuthUsecase))
	var seen string
	handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Contains(t, seen, constvars.REQUEST_ID_PREFIX)
	assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "client-id", seen)
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	middlewares := newTestMiddlewares(new(MockAuthUsecase))
	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
