package controllers

import (
	"context"

	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/uistate"

	"github.com/stretchr/testify/mock"
)

type MockClinicUsecase struct {
	mock.Mock
}

func (m *MockClinicUsecase) Name() string {
	return "clinics"
}

func (m *MockClinicUsecase) FindAll(ctx context.Context, session *models.Session, params *requests.QueryParams) (*responses.PagedResult[responses.Clinic], error) {
	args := m.Called(ctx, session, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.PagedResult[responses.Clinic]), args.Error(1)
}

func (m *MockClinicUsecase) FindByID(ctx context.Context, session *models.Session, id string) (*responses.Clinic, error) {
	args := m.Called(ctx, session, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Clinic), args.Error(1)
}

func (m *MockClinicUsecase) Create(ctx context.Context, session *models.Session, form *requests.Clinic) (*responses.Clinic, error) {
	args := m.Called(ctx, session, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Clinic), args.Error(1)
}

func (m *MockClinicUsecase) Update(ctx context.Context, session *models.Session, id string, form *requests.Clinic) (*responses.Clinic, error) {
	args := m.Called(ctx, session, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Clinic), args.Error(1)
}

func (m *MockClinicUsecase) Delete(ctx context.Context, session *models.Session, id string) error {
	args := m.Called(ctx, session, id)
	return args.Error(0)
}

type MockUIStateUsecase struct {
	mock.Mock
}

func (m *MockUIStateUsecase) Get(ctx context.Context, session *models.Session) (*uistate.State, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uistate.State), args.Error(1)
}

func (m *MockUIStateUsecase) Dispatch(ctx context.Context, session *models.Session, action uistate.Action) (*uistate.State, error) {
	args := m.Called(ctx, session, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uistate.State), args.Error(1)
}

func (m *MockUIStateUsecase) PushToast(ctx context.Context, session *models.Session, severity uistate.Severity, summary, detail string) error {
	args := m.Called(ctx, session, severity, summary, detail)
	return args.Error(0)
}

func (m *MockUIStateUsecase) ClearToasts(ctx context.Context, session *models.Session) (*uistate.State, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uistate.State), args.Error(1)
}

type MockLookupRegistry struct {
	mock.Mock
}

func (m *MockLookupRegistry) Source(role models.Role, name string) (contracts.LookupSource, error) {
	args := m.Called(role, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(contracts.LookupSource), args.Error(1)
}

type MockLookupSource struct {
	mock.Mock
}

func (m *MockLookupSource) Name() string {
	return "clinics"
}

func (m *MockLookupSource) Lookup(ctx context.Context, session *models.Session, request *requests.Lookup) ([]responses.LookupOption, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.LookupOption), args.Error(1)
}

func (m *MockLookupSource) ExportRows(ctx context.Context, session *models.Session, params *requests.QueryParams) ([]string, [][]string, error) {
	args := m.Called(ctx, session, params)
	return args.Get(0).([]string), args.Get(1).([][]string), args.Error(2)
}

type MockExportUsecase struct {
	mock.Mock
}

func (m *MockExportUsecase) Export(ctx context.Context, session *models.Session, resource string, request *requests.Export) (*responses.Export, error) {
	args := m.Called(ctx, session, resource, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Export), args.Error(1)
}
