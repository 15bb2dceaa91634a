package resources

import (
	"context"

	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type mockResourceClient[T responses.Entity] struct {
	mock.Mock
}

func (m *mockResourceClient[T]) Name() string {
	return "mock"
}

func (m *mockResourceClient[T]) FindAll(ctx context.Context, params *requests.QueryParams) (*responses.PagedResult[T], error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PagedResult[T]), args.Error(1)
}

func (m *mockResourceClient[T]) FindByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockResourceClient[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockResourceClient[T]) Update(ctx context.Context, id string, payload interface{}) (*T, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockResourceClient[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockActivityPublisher struct {
	mock.Mock
}

func (m *mockActivityPublisher) Publish(ctx context.Context, event *models.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type mockDoctorUsecase struct {
	mock.Mock
}

func (m *mockDoctorUsecase) FindClinics(ctx context.Context, session *models.Session) (*responses.DoctorClinics, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DoctorClinics), args.Error(1)
}

func (m *mockDoctorUsecase) SelectClinic(ctx context.Context, session *models.Session, request *requests.SelectClinic) (*responses.DoctorClinics, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.DoctorClinics), args.Error(1)
}

func (m *mockDoctorUsecase) SelectedClinicID(ctx context.Context, session *models.Session) (string, error) {
	args := m.Called(ctx, session)
	return args.String(0), args.Error(1)
}
