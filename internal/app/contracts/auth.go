package contracts

import (
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	Profile(ctx context.Context, session *models.Session) (*responses.Profile, error)
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}

type DoctorUsecase interface {
	FindClinics(ctx context.Context, session *models.Session) (*responses.DoctorClinics, error)
	SelectClinic(ctx context.Context, session *models.Session, request *requests.SelectClinic) (*responses.DoctorClinics, error)
	SelectedClinicID(ctx context.Context, session *models.Session) (string, error)
}
