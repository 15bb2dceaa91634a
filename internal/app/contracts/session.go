package contracts

import (
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/dto/responses"
	"context"
)

// TokenStore is the part of the session the backend client needs to send,
// rotate and drop tokens.
type TokenStore interface {
	LoadTokens(ctx context.Context, sessionID string) (*models.TokenPair, error)
	SaveTokens(ctx context.Context, sessionID string, pair *models.TokenPair) error
	Logout(ctx context.Context, sessionID string) error
}

type SessionService interface {
	TokenStore
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	SaveDoctorClinics(ctx context.Context, sessionID string, clinics []responses.Clinic) error
	GetDoctorClinics(ctx context.Context, sessionID string) ([]responses.Clinic, error)
	SetSelectedClinic(ctx context.Context, sessionID, clinicID string) error
	GetSelectedClinic(ctx context.Context, sessionID string) (string, error)
}
