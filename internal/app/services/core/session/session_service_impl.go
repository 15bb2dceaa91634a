package session

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
		now:             time.Now,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, svc.ttl(session))
}

// GetSession returns a 401 error when the session does not exist or expired.
func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrSessionNotFound(errors.New(sessionID))
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

// LoadTokens returns nil when the session is gone.
func (svc *sessionService) LoadTokens(ctx context.Context, sessionID string) (*models.TokenPair, error) {
	session, err := svc.GetSession(ctx, sessionID)
	if err != nil {
		if exceptions.StatusCodeOf(err) == constvars.StatusUnauthorized {
			return nil, nil
		}
		return nil, err
	}
	return session.Tokens(), nil
}

// SaveTokens rotates the backend tokens and keeps the session expiry.
func (svc *sessionService) SaveTokens(ctx context.Context, sessionID string, pair *models.TokenPair) error {
	session, err := svc.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	session.AccessToken = pair.AccessToken
	if pair.RefreshToken != "" {
		session.RefreshToken = pair.RefreshToken
	}

	svc.Log.Info("sessionService.SaveTokens rotated backend tokens",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return svc.RedisRepository.Set(ctx, sessionKey(sessionID), session, svc.ttl(session))
}

// Logout drops the session and every per-session key.
func (svc *sessionService) Logout(ctx context.Context, sessionID string) error {
	svc.Log.Info("sessionService.Logout called",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return svc.RedisRepository.Delete(ctx,
		sessionKey(sessionID),
		fmt.Sprintf(constvars.RedisKeyDoctorClinicsFormat, sessionID),
		fmt.Sprintf(constvars.RedisKeySelectedClinicFormat, sessionID),
		fmt.Sprintf(constvars.RedisKeyUIStateFormat, sessionID),
	)
}

func (svc *sessionService) SaveDoctorClinics(ctx context.Context, sessionID string, clinics []responses.Clinic) error {
	ttl, err := svc.remainingTTL(ctx, sessionID)
	if err != nil {
		return err
	}
	return svc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisKeyDoctorClinicsFormat, sessionID), clinics, ttl)
}

func (svc *sessionService) GetDoctorClinics(ctx context.Context, sessionID string) ([]responses.Clinic, error) {
	raw, err := svc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisKeyDoctorClinicsFormat, sessionID))
	if err != nil {
		return nil, err
	}
	clinics := []responses.Clinic{}
	if raw == "" {
		return clinics, nil
	}
	err = json.Unmarshal([]byte(raw), &clinics)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return clinics, nil
}

func (svc *sessionService) SetSelectedClinic(ctx context.Context, sessionID, clinicID string) error {
	ttl, err := svc.remainingTTL(ctx, sessionID)
	if err != nil {
		return err
	}
	return svc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisKeySelectedClinicFormat, sessionID), clinicID, ttl)
}

func (svc *sessionService) GetSelectedClinic(ctx context.Context, sessionID string) (string, error) {
	raw, err := svc.RedisRepository.Get(ctx, fmt.Sprintf(constvars.RedisKeySelectedClinicFormat, sessionID))
	if err != nil || raw == "" {
		return "", err
	}
	var clinicID string
	err = json.Unmarshal([]byte(raw), &clinicID)
	if err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}
	return clinicID, nil
}

func (svc *sessionService) remainingTTL(ctx context.Context, sessionID string) (time.Duration, error) {
	session, err := svc.GetSession(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return svc.ttl(session), nil
}

func (svc *sessionService) ttl(session *models.Session) time.Duration {
	ttl := session.ExpiresAt.Sub(svc.now())
	if ttl < time.Second {
		return time.Second
	}
	return ttl
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
}
