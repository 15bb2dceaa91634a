package clinicapi

import (
	"bytes"
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorClient struct {
	Base *BaseClient
	Log  *zap.Logger
}

func NewDoctorClient(base *BaseClient, logger *zap.Logger) contracts.DoctorClient {
	return &doctorClient{
		Base: base,
		Log:  logger,
	}
}

// FindClinics accepts either a bare array or a paged envelope.
func (c *doctorClient) FindClinics(ctx context.Context, doctorID string) ([]responses.Clinic, error) {
	c.Log.Info("doctorClient.FindClinics called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, doctorID),
	)

	path := fmt.Sprintf(constvars.ResourceDoctorClinicsFormat, url.PathEscape(doctorID))
	var raw json.RawMessage
	err := c.Base.DoJSON(ctx, &Request{Method: constvars.MethodGet, Path: path}, &raw)
	if err != nil {
		return nil, err
	}

	clinics := []responses.Clinic{}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return clinics, nil
	}

	if trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &clinics)
	} else {
		var paged responses.PagedResult[responses.Clinic]
		err = json.Unmarshal(trimmed, &paged)
		if paged.Items != nil {
			clinics = paged.Items
		}
	}
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, path)
	}
	return clinics, nil
}
