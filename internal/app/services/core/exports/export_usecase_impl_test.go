package exports

import (
	"context"
	"strings"
	"testing"
	"time"

	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/app/services/core/resources"
	"clinic-console-service/internal/app/services/shared/ratelimiter"
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

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Name() string {
	return constvars.ConsoleResourceClinics
}

func (m *mockSource) Lookup(ctx context.Context, session *models.Session, request *requests.Lookup) ([]responses.LookupOption, error) {
	args := m.Called(ctx, session, request)
	return args.Get(0).([]responses.LookupOption), args.Error(1)
}

func (m *mockSource) ExportRows(ctx context.Context, session *models.Session, params *requests.QueryParams) ([]string, [][]string, error) {
	args := m.Called(ctx, session, params)
	return args.Get(0).([]string), args.Get(1).([][]string), args.Error(2)
}

var exportConfig = &config.InternalConfig{
	Export: config.AppExport{BucketName: "exports", PreSignedUrlExpiryInMinutes: 10},
}

func newExportUsecase(storage contracts.Storage, source *mockSource) contracts.ExportUsecase {
	return NewExportUsecase(
		resources.NewRegistry(source),
		storage,
		ratelimiter.NewResourceLimiter(redistest.New(), zap.NewNop()),
		exportConfig,
		zap.NewNop(),
	)
}

func TestExportUsecase_Export(t *testing.T) {
	storage := new(mockStorage)
	source := new(mockSource)
	admin := &models.Session{SessionID: "s-1", UserID: "a-1", Role: models.RoleAdmin}
	source.On("ExportRows", mock.Anything, admin, &requests.QueryParams{SearchTerm: "north"}).
		Return([]string{"id", "name"}, [][]string{{"c1", "North, East"}}, nil)
	storage.On("UploadObject", mock.Anything, "exports", mock.MatchedBy(func(object string) bool {
		return strings.HasPrefix(object, "clinics/a-1-") && strings.HasSuffix(object, ".csv")
	}), constvars.MIMETextCSV, []byte("id,name\nc1,\"North, East\"\n")).Return("etag", nil)
	storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "exports", mock.Anything, 10*time.Minute).
		Return("https://minio.local/exports/clinics.csv", nil)
	uc := newExportUsecase(storage, source)

	result, err := uc.Export(context.Background(), admin, constvars.ConsoleResourceClinics, &requests.Export{SearchTerm: "north"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Rows)
	assert.Equal(t, 600, result.ExpiresIn)
	assert.Equal(t, "https://minio.local/exports/clinics.csv", result.URL)
	storage.AssertExpectations(t)
}

func TestExportUsecase_DisabledWithoutStorage(t *testing.T) {
	uc := newExportUsecase(nil, new(mockSource))

	_, err := uc.Export(context.Background(), &models.Session{UserID: "a-1", Role: models.RoleAdmin}, constvars.ConsoleResourceClinics, &requests.Export{})

	require.Error(t, err)
	assert.Equal(t, constvars.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
}

func TestExportUsecase_ForbiddenResource(t *testing.T) {
	uc := newExportUsecase(new(mockStorage), new(mockSource))

	_, err := uc.Export(context.Background(), &models.Session{UserID: "p-1", Role: models.RolePatient}, constvars.ConsoleResourceClinics, &requests.Export{})

	require.Error(t, err)
	assert.Equal(t, constvars.StatusForbidden, exceptions.StatusCodeOf(err))
}

func TestExportUsecase_RateLimited(t *testing.T) {
	storage := new(mockStorage)
	source := new(mockSource)
	admin := &models.Session{SessionID: "s-1", UserID: "a-1", Role: models.RoleAdmin}
	source.On("ExportRows", mock.Anything, admin, mock.Anything).Return([]string{"id"}, [][]string{}, nil)
	storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("etag", nil)
	storage.On("GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("url", nil)
	uc := newExportUsecase(storage, source)
	ctx := context.Background()

	for i := 0; i < constvars.ExportQuotaPerWindow; i++ {
		_, err := uc.Export(ctx, admin, constvars.ConsoleResourceClinics, &requests.Export{})
		require.NoError(t, err)
	}
	_, err := uc.Export(ctx, admin, constvars.ConsoleResourceClinics, &requests.Export{})

	require.Error(t, err)
	assert.Equal(t, constvars.StatusTooManyRequests, exceptions.StatusCodeOf(err))
}
