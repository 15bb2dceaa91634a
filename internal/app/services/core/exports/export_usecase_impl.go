package exports

import (
	"bytes"
	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"context"
	"encoding/csv"
	"errors"
	"time"

	"go.uber.org/zap"
)

type exportUsecase struct {
	Registry       contracts.LookupRegistry
	Storage        contracts.Storage
	Limiter        contracts.ResourceLimiter
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

// NewExportUsecase renders list screens to CSV in object storage. A nil
// storage disables exports.
func NewExportUsecase(
	registry contracts.LookupRegistry,
	storage contracts.Storage,
	limiter contracts.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ExportUsecase {
	return &exportUsecase{
		Registry:       registry,
		Storage:        storage,
		Limiter:        limiter,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *exportUsecase) Export(ctx context.Context, session *models.Session, resource string, request *requests.Export) (*responses.Export, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("exportUsecase.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if uc.Storage == nil {
		return nil, exceptions.ErrFeatureDisabled(nil, "export storage")
	}

	source, err := uc.Registry.Source(session.Role, resource)
	if err != nil {
		return nil, err
	}

	decision, err := uc.Limiter.Allow(ctx, constvars.ExportRateLimitGroup, session.UserID,
		constvars.ExportRateLimitWindowInSeconds*time.Second, constvars.ExportQuotaPerWindow)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		customErr := exceptions.ErrTooManyRequests(errors.New(session.UserID), constvars.ExportRateLimitGroup)
		customErr.RetryAfter = decision.RetryAfterSecs
		return nil, customErr
	}

	header, rows, err := source.ExportRows(ctx, session, &requests.QueryParams{SearchTerm: request.SearchTerm})
	if err != nil {
		uc.Log.Error("exportUsecase.Export error collecting rows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	data, err := renderCSV(header, rows)
	if err != nil {
		return nil, exceptions.ErrWriteCSV(err)
	}

	bucketName := uc.InternalConfig.Export.BucketName
	objectName := utils.GenerateExportObjectName(resource, session.UserID, uc.now())
	_, err = uc.Storage.UploadObject(ctx, bucketName, objectName, constvars.MIMETextCSV, data)
	if err != nil {
		uc.Log.Error("exportUsecase.Export error calling Storage.UploadObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := uc.InternalConfig.Export.PreSignedUrlExpiry()
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "export_created", requestID,
		zap.String(constvars.LoggingResourceKey, resource),
		zap.String(constvars.LoggingObjectKey, objectName),
		zap.Int("rows", len(rows)),
	)

	return &responses.Export{
		Resource:  resource,
		Object:    objectName,
		Rows:      len(rows),
		URL:       url,
		ExpiresIn: int(expiry / time.Second),
	}, nil
}

func renderCSV(header []string, rows [][]string) ([]byte, error) {
	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	err := writer.Write(header)
	if err != nil {
		return nil, err
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
