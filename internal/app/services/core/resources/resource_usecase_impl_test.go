package resources

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	uistateusecase "clinic-console-service/internal/app/services/core/uistate"
	"clinic-console-service/internal/app/services/shared/locker"
	"clinic-console-service/internal/app/services/shared/querycache"
	"clinic-console-service/internal/app/services/shared/redis/redistest"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/uistate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type harness struct {
	repo     *redistest.Repository
	uiState  contracts.UIStateUsecase
	activity *mockActivityPublisher
	doctors  *mockDoctorUsecase
	scopes   contracts.ScopeResolver
	cache    contracts.QueryCache
	cfg      *config.InternalConfig
}

func newHarness() *harness {
	repo := redistest.New()
	cfg := &config.InternalConfig{
		Session: config.AppSession{ExpiredTimeInHours: 1},
		Cache:   config.AppCache{Enabled: true, TTLInSeconds: 60, LookupTTLSeconds: 30},
	}
	doctors := new(mockDoctorUsecase)
	return &harness{
		repo:     repo,
		uiState:  uistateusecase.NewUIStateUsecase(repo, locker.NewLockService(repo, zap.NewNop()), cfg, zap.NewNop()),
		activity: new(mockActivityPublisher),
		doctors:  doctors,
		scopes:   NewScopeResolver(doctors),
		cache:    querycache.NewQueryCache(repo, zap.NewNop()),
		cfg:      cfg,
	}
}

func clinicUsecase(h *harness, client *mockResourceClient[responses.Clinic]) *Usecase[responses.Clinic, requests.Clinic] {
	return NewUsecase[responses.Clinic, requests.Clinic](
		constvars.ConsoleResourceClinics, "Clinic", client, h.cache, h.scopes, h.uiState, h.activity, h.cfg, zap.NewNop(),
	)
}

func consultationUsecase(h *harness, client *mockResourceClient[responses.MedicalConsultation]) *Usecase[responses.MedicalConsultation, requests.MedicalConsultation] {
	return NewUsecase[responses.MedicalConsultation, requests.MedicalConsultation](
		constvars.ConsoleResourceConsultations, "Consultation", client, h.cache, h.scopes, h.uiState, h.activity, h.cfg, zap.NewNop(),
	)
}

func newSession(role models.Role, userID string) *models.Session {
	return &models.Session{
		SessionID: "s-" + userID,
		UserID:    userID,
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func clinicPage(ids ...string) *responses.PagedResult[responses.Clinic] {
	items := make([]responses.Clinic, 0, len(ids))
	for _, id := range ids {
		items = append(items, responses.Clinic{ID: id, Name: "Clinic " + id})
	}
	return &responses.PagedResult[responses.Clinic]{Items: items, TotalCount: len(items), PageIndex: 1, PageSize: 10}
}

func TestUsecase_FindAllIsCached(t *testing.T) {
	h := newHarness()
	client := new(mockResourceClient[responses.Clinic])
	client.On("FindAll", mock.Anything, mock.Anything).Return(clinicPage("c1", "c2"), nil).Once()
	uc := clinicUsecase(h, client)
	admin := newSession(models.RoleAdmin, "a-1")
	params := &requests.QueryParams{Page: 1, PageSize: 10}

	first, err := uc.FindAll(context.Background(), admin, params)
	require.NoError(t, err)
	second, err := uc.FindAll(context.Background(), admin, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	client.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestUsecase_CacheIsPerUser(t *testing.T) {
	h := newHarness()
	client := new(mockResourceClient[responses.Clinic])
	client.On("FindAll", mock.Anything, mock.Anything).Return(clinicPage("c1"), nil)
	uc := clinicUsecase(h, client)
	params := &requests.QueryParams{Page: 1, PageSize: 10}

	_, err := uc.FindAll(context.Background(), newSession(models.RoleAdmin, "a-1"), params)
	require.NoError(t, err)
	_, err = uc.FindAll(context.Background(), newSession(models.RoleAdmin, "a-2"), params)
	require.NoError(t, err)

	client.AssertNumberOfCalls(t, "FindAll", 2)
}

func TestUsecase_CreateInvalidatesListAndToasts(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	client := new(mockResourceClient[responses.Clinic])
	client.On("FindAll", mock.Anything, mock.Anything).Return(clinicPage("c1"), nil)
	client.On("Create", mock.Anything, requests.ClinicPayload{Name: "North"}).Return(&responses.Clinic{ID: "c9", Name: "North"}, nil)
	h.activity.On("Publish", mock.Anything, mock.MatchedBy(func(event *models.ActivityEvent) bool {
		return event.Action == models.ActivityActionCreated && event.ResourceID == "c9" && event.Resource == constvars.ConsoleResourceClinics
	})).Return(nil).Once()
	uc := clinicUsecase(h, client)
	admin := newSession(models.RoleAdmin, "a-1")
	params := &requests.QueryParams{Page: 1, PageSize: 10}

	_, err := uc.FindAll(ctx, admin, params)
	require.NoError(t, err)

	created, err := uc.Create(ctx, admin, &requests.Clinic{Name: "North"})
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID)

	_, err = uc.FindAll(ctx, admin, params)
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "FindAll", 2)
	h.activity.AssertExpectations(t)

	state, err := h.uiState.Get(ctx, admin)
	require.NoError(t, err)
	require.Len(t, state.Toasts.Items, 1)
	assert.Equal(t, uistate.SeveritySuccess, state.Toasts.Items[0].Severity)
	assert.Equal(t, "Clinic created", state.Toasts.Items[0].Detail)
}

func TestUsecase_UpdateInvalidatesEntity(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	client := new(mockResourceClient[responses.Clinic])
	client.On("FindByID", mock.Anything, "c1").Return(&responses.Clinic{ID: "c1", Name: "Old"}, nil)
	client.On("Update", mock.Anything, "c1", mock.Anything).Return(nil, nil)
	h.activity.On("Publish", mock.Anything, mock.Anything).Return(nil)
	uc := clinicUsecase(h, client)
	admin := newSession(models.RoleAdmin, "a-1")

	_, err := uc.FindByID(ctx, admin, "c1")
	require.NoError(t, err)
	_, err = uc.FindByID(ctx, admin, "c1")
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "FindByID", 1)

	_, err = uc.Update(ctx, admin, "c1", &requests.Clinic{Name: "New"})
	require.NoError(t, err)

	_, err = uc.FindByID(ctx, admin, "c1")
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "FindByID", 2)
}

func TestUsecase_FailurePushesErrorToast(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	client := new(mockResourceClient[responses.Clinic])
	backendErr := exceptions.ErrBackendRequest(nil, constvars.StatusBadRequest, "clinic name already taken", constvars.MethodPost, "/clinics")
	client.On("Create", mock.Anything, mock.Anything).Return(nil, backendErr)
	client.On("Delete", mock.Anything, "c1").Return(fmt.Errorf("connection reset"))
	uc := clinicUsecase(h, client)
	admin := newSession(models.RoleAdmin, "a-1")

	_, err := uc.Create(ctx, admin, &requests.Clinic{Name: "North"})
	require.Error(t, err)
	err = uc.Delete(ctx, admin, "c1")
	require.Error(t, err)

	state, err := h.uiState.Get(ctx, admin)
	require.NoError(t, err)
	require.Len(t, state.Toasts.Items, 2)
	assert.Equal(t, uistate.SeverityError, state.Toasts.Items[0].Severity)
	assert.Equal(t, "clinic name already taken", state.Toasts.Items[0].Detail)
	assert.Equal(t, constvars.ToastDetailGenericError, state.Toasts.Items[1].Detail)
	h.activity.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUsecase_LoggedOutFailureHasNoToast(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	client := new(mockResourceClient[responses.Clinic])
	client.On("Delete", mock.Anything, "c1").Return(exceptions.ErrRefreshFailed(nil))
	uc := clinicUsecase(h, client)
	admin := newSession(models.RoleAdmin, "a-1")

	err := uc.Delete(ctx, admin, "c1")

	require.Error(t, err)
	assert.False(t, h.repo.Has(fmt.Sprintf(constvars.RedisKeyUIStateFormat, admin.SessionID)))
}

func TestUsecase_DoctorScope(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	doctor := newSession(models.RoleDoctor, "d-1")
	h.doctors.On("SelectedClinicID", mock.Anything, doctor).Return("cl-1", nil)
	h.activity.On("Publish", mock.Anything, mock.Anything).Return(nil)
	client := new(mockResourceClient[responses.MedicalConsultation])
	client.On("FindAll", mock.Anything, mock.MatchedBy(func(params *requests.QueryParams) bool {
		return params.Scope == requests.Scope{ClinicID: "cl-1"}
	})).Return(&responses.PagedResult[responses.MedicalConsultation]{Items: []responses.MedicalConsultation{}}, nil).Once()
	client.On("Create", mock.Anything, mock.MatchedBy(func(payload interface{}) bool {
		body, ok := payload.(requests.MedicalConsultationPayload)
		return ok && body.ClinicID == "cl-1" && body.DoctorID == "d-1" && body.PatientID == "p-1"
	})).Return(&responses.MedicalConsultation{ID: "mc-1"}, nil).Once()
	uc := consultationUsecase(h, client)

	_, err := uc.FindAll(ctx, doctor, &requests.QueryParams{Page: 1, PageSize: 10})
	require.NoError(t, err)

	_, err = uc.Create(ctx, doctor, &requests.MedicalConsultation{
		Date:    "2024-05-01",
		Reason:  "checkup",
		Patient: &requests.LookupOption{Value: "p-1"},
		Doctor:  &requests.LookupOption{Value: "d-other"},
		Clinic:  &requests.LookupOption{Value: "cl-other"},
	})
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestUsecase_DoctorWithoutClinic(t *testing.T) {
	h := newHarness()
	doctor := newSession(models.RoleDoctor, "d-1")
	h.doctors.On("SelectedClinicID", mock.Anything, doctor).Return("", exceptions.ErrNoClinicSelected(nil))
	client := new(mockResourceClient[responses.MedicalConsultation])
	uc := consultationUsecase(h, client)

	_, err := uc.FindAll(context.Background(), doctor, &requests.QueryParams{Page: 1, PageSize: 10})

	require.Error(t, err)
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusCodeOf(err))
	client.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestUsecase_PatientScope(t *testing.T) {
	h := newHarness()
	patient := newSession(models.RolePatient, "p-1")
	client := new(mockResourceClient[responses.MedicalConsultation])
	client.On("FindAll", mock.Anything, mock.MatchedBy(func(params *requests.QueryParams) bool {
		return params.Scope == requests.Scope{PatientID: "p-1"}
	})).Return(&responses.PagedResult[responses.MedicalConsultation]{Items: []responses.MedicalConsultation{}}, nil).Once()
	uc := consultationUsecase(h, client)

	_, err := uc.FindAll(context.Background(), patient, &requests.QueryParams{Page: 1, PageSize: 10})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestUsecase_Lookup(t *testing.T) {
	h := newHarness()
	client := new(mockResourceClient[responses.Clinic])
	client.On("FindAll", mock.Anything, mock.MatchedBy(func(params *requests.QueryParams) bool {
		return params.PageSize == constvars.LookupPageSize && params.SearchTerm == "nor" && params.Page == 1
	})).Return(clinicPage("c1"), nil)
	uc := clinicUsecase(h, client)

	options, err := uc.Lookup(context.Background(), newSession(models.RoleAdmin, "a-1"), &requests.Lookup{SearchTerm: "nor"})

	require.NoError(t, err)
	assert.Equal(t, []responses.LookupOption{{Value: "c1", Label: "Clinic c1"}}, options)
}

func TestUsecase_ExportRowsWalksPages(t *testing.T) {
	h := newHarness()
	firstPage := make([]string, constvars.ExportPageSize)
	for i := range firstPage {
		firstPage[i] = fmt.Sprintf("c%d", i)
	}
	full := clinicPage(firstPage...)
	full.TotalCount = constvars.ExportPageSize + 2
	rest := clinicPage("x1", "x2")
	rest.TotalCount = constvars.ExportPageSize + 2

	client := new(mockResourceClient[responses.Clinic])
	client.On("FindAll", mock.Anything, mock.MatchedBy(func(params *requests.QueryParams) bool { return params.Page == 1 })).Return(full, nil).Once()
	client.On("FindAll", mock.Anything, mock.MatchedBy(func(params *requests.QueryParams) bool { return params.Page == 2 })).Return(rest, nil).Once()
	uc := clinicUsecase(h, client)

	header, rows, err := uc.ExportRows(context.Background(), newSession(models.RoleAdmin, "a-1"), &requests.QueryParams{SearchTerm: "c"})

	require.NoError(t, err)
	assert.Equal(t, responses.Clinic{}.CSVHeader(), header)
	assert.Len(t, rows, constvars.ExportPageSize+2)
	assert.Equal(t, []string{"x2", "Clinic x2", "", "", ""}, rows[len(rows)-1])
	client.AssertExpectations(t)
}

func TestUsecase_CreateInvalidatesLookupPages(t *testing.T) {
	h := newHarness()
	h.cfg.Cache.LookupTTLSeconds = 300
	ctx := context.Background()
	client := new(mockResourceClient[responses.Clinic])
	client.On("FindAll", mock.Anything, mock.Anything).Return(clinicPage("c1"), nil)
	client.On("Create", mock.Anything, mock.Anything).Return(&responses.Clinic{ID: "c9", Name: "North"}, nil)
	h.activity.On("Publish", mock.Anything, mock.Anything).Return(nil)
	uc := clinicUsecase(h, client)
	admin := newSession(models.RoleAdmin, "a-1")

	_, err := uc.Lookup(ctx, admin, &requests.Lookup{})
	require.NoError(t, err)
	_, err = uc.FindAll(ctx, admin, &requests.QueryParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "FindAll", 2)

	h.repo.Advance(61 * time.Second)
	_, err = uc.Create(ctx, admin, &requests.Clinic{Name: "North"})
	require.NoError(t, err)

	_, err = uc.Lookup(ctx, admin, &requests.Lookup{})
	require.NoError(t, err)
	client.AssertNumberOfCalls(t, "FindAll", 3)
}

func fullClinicPage(prefix string) *responses.PagedResult[responses.Clinic] {
	ids := make([]string, constvars.ExportPageSize)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	result := clinicPage(ids...)
	result.TotalCount = 0
	return result
}

func TestUsecase_ExportRowsWithoutTotalCount(t *testing.T) {
	h := newHarness()
	rest := clinicPage("x1")
	rest.TotalCount = 0

	client := new(mockResourceClient[responses.Clinic])
	client.On("FindAll", mock.Anything, mock.MatchedBy(func(params *requests.QueryParams) bool { return params.Page == 1 })).Return(fullClinicPage("c"), nil).Once()
	client.On("FindAll", mock.Anything, mock.MatchedBy(func(params *requests.QueryParams) bool { return params.Page == 2 })).Return(rest, nil).Once()
	uc := clinicUsecase(h, client)

	_, rows, err := uc.ExportRows(context.Background(), newSession(models.RoleAdmin, "a-1"), &requests.QueryParams{})

	require.NoError(t, err)
	assert.Len(t, rows, constvars.ExportPageSize+1)
	client.AssertExpectations(t)
}

func TestUsecase_ExportRowsWarnsWhenTruncated(t *testing.T) {
	h := newHarness()
	core, logs := observer.New(zap.WarnLevel)
	client := new(mockResourceClient[responses.Clinic])
	client.On("FindAll", mock.Anything, mock.Anything).Return(fullClinicPage("c"), nil)
	uc := NewUsecase[responses.Clinic, requests.Clinic](
		constvars.ConsoleResourceClinics, "Clinic", client, h.cache, h.scopes, h.uiState, h.activity, h.cfg, zap.New(core),
	)

	_, rows, err := uc.ExportRows(context.Background(), newSession(models.RoleAdmin, "a-1"), &requests.QueryParams{})

	require.NoError(t, err)
	assert.Len(t, rows, constvars.ExportMaxPageCount*constvars.ExportPageSize)
	client.AssertNumberOfCalls(t, "FindAll", constvars.ExportMaxPageCount)
	truncated := logs.FilterMessage("resourceUsecase.ExportRows page limit reached, export truncated").All()
	require.Len(t, truncated, 1)
	assert.Equal(t, int64(constvars.ExportMaxPageCount*constvars.ExportPageSize), truncated[0].ContextMap()[constvars.LoggingResponseLengthKey])
}

func TestRegistry_Source(t *testing.T) {
	h := newHarness()
	uc := clinicUsecase(h, new(mockResourceClient[responses.Clinic]))
	registry := NewRegistry(uc)

	source, err := registry.Source(models.RoleAdmin, constvars.ConsoleResourceClinics)
	require.NoError(t, err)
	assert.Equal(t, constvars.ConsoleResourceClinics, source.Name())

	_, err = registry.Source(models.RolePatient, constvars.ConsoleResourceClinics)
	require.Error(t, err)
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))

	_, err = registry.Source(models.RoleAdmin, "unknown")
	require.Error(t, err)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
}
