package doctors

import (
	"context"
	"testing"
	"time"

	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/app/services/core/session"
	"clinic-console-service/internal/app/services/shared/redis/redistest"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockDoctorClient struct {
	mock.Mock
}

func (m *mockDoctorClient) FindClinics(ctx context.Context, doctorID string) ([]responses.Clinic, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Clinic), args.Error(1)
}

func newDoctorFixture(t *testing.T) (contracts.DoctorUsecase, contracts.SessionService, *mockDoctorClient, *models.Session) {
	t.Helper()
	sessions := session.NewSessionService(redistest.New(), zap.NewNop())
	client := new(mockDoctorClient)
	doctor := &models.Session{
		SessionID: "s-1",
		UserID:    "d-1",
		Role:      models.RoleDoctor,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessions.CreateSession(context.Background(), doctor))
	return NewDoctorUsecase(client, sessions, zap.NewNop()), sessions, client, doctor
}

var twoClinics = []responses.Clinic{{ID: "cl-1", Name: "North"}, {ID: "cl-2", Name: "South"}}

func TestDoctorUsecase_FindClinicsUsesSavedList(t *testing.T) {
	uc, sessions, client, doctor := newDoctorFixture(t)
	ctx := context.Background()
	require.NoError(t, sessions.SaveDoctorClinics(ctx, doctor.SessionID, twoClinics))
	require.NoError(t, sessions.SetSelectedClinic(ctx, doctor.SessionID, "cl-2"))

	result, err := uc.FindClinics(ctx, doctor)

	require.NoError(t, err)
	assert.Len(t, result.Clinics, 2)
	assert.Equal(t, "cl-2", result.SelectedClinicID)
	client.AssertNotCalled(t, "FindClinics", mock.Anything, mock.Anything)
}

func TestDoctorUsecase_FindClinicsReloadsFromBackend(t *testing.T) {
	uc, _, client, doctor := newDoctorFixture(t)
	client.On("FindClinics", mock.Anything, "d-1").Return(twoClinics, nil).Once()

	result, err := uc.FindClinics(context.Background(), doctor)

	require.NoError(t, err)
	assert.Len(t, result.Clinics, 2)
	assert.Equal(t, "cl-1", result.SelectedClinicID)

	_, err = uc.FindClinics(context.Background(), doctor)
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "FindClinics", 1)
}

func TestDoctorUsecase_SelectClinic(t *testing.T) {
	uc, sessions, _, doctor := newDoctorFixture(t)
	ctx := context.Background()
	require.NoError(t, sessions.SaveDoctorClinics(ctx, doctor.SessionID, twoClinics))

	result, err := uc.SelectClinic(ctx, doctor, &requests.SelectClinic{ClinicID: "cl-2"})
	require.NoError(t, err)
	assert.Equal(t, "cl-2", result.SelectedClinicID)

	selected, err := uc.SelectedClinicID(ctx, doctor)
	require.NoError(t, err)
	assert.Equal(t, "cl-2", selected)
}

func TestDoctorUsecase_SelectClinicOutsideList(t *testing.T) {
	uc, sessions, _, doctor := newDoctorFixture(t)
	ctx := context.Background()
	require.NoError(t, sessions.SaveDoctorClinics(ctx, doctor.SessionID, twoClinics))

	_, err := uc.SelectClinic(ctx, doctor, &requests.SelectClinic{ClinicID: "cl-9"})

	require.Error(t, err)
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
}

func TestDoctorUsecase_SelectedClinicIDMissing(t *testing.T) {
	uc, _, _, doctor := newDoctorFixture(t)

	_, err := uc.SelectedClinicID(context.Background(), doctor)

	require.Error(t, err)
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
}
