package contracts

import (
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"context"
)

// ResourceClient is the CRUD surface of one REST resource of the clinic backend.
type ResourceClient[T responses.Entity] interface {
	Name() string
	FindAll(ctx context.Context, params *requests.QueryParams) (*responses.PagedResult[T], error)
	FindByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, payload interface{}) (*T, error)
	Update(ctx context.Context, id string, payload interface{}) (*T, error)
	Delete(ctx context.Context, id string) error
}

type AuthClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.BackendLogin, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

type DoctorClient interface {
	FindClinics(ctx context.Context, doctorID string) ([]responses.Clinic, error)
}
