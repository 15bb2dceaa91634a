package clinicapi

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"context"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type resourceClient[T responses.Entity] struct {
	Base     *BaseClient
	Resource string
	Log      *zap.Logger
}

// NewResourceClient serves /<resource> and /<resource>/{id} of the backend.
func NewResourceClient[T responses.Entity](base *BaseClient, resource string, logger *zap.Logger) contracts.ResourceClient[T] {
	return &resourceClient[T]{
		Base:     base,
		Resource: resource,
		Log:      logger,
	}
}

func (c *resourceClient[T]) Name() string {
	return c.Resource
}

func (c *resourceClient[T]) FindAll(ctx context.Context, params *requests.QueryParams) (*responses.PagedResult[T], error) {
	c.Log.Info("resourceClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceKey, c.Resource),
		zap.Any(constvars.LoggingQueryParamsKey, params),
	)

	result := new(responses.PagedResult[T])
	err := c.Base.DoJSON(ctx, &Request{
		Method: constvars.MethodGet,
		Path:   c.collectionPath(),
		Query:  BuildListQuery(params),
	}, result)
	if err != nil {
		return nil, err
	}
	if result.Items == nil {
		result.Items = []T{}
	}
	return result, nil
}

func (c *resourceClient[T]) FindByID(ctx context.Context, id string) (*T, error) {
	c.Log.Info("resourceClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceKey, c.Resource),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	entity := new(T)
	err := c.Base.DoJSON(ctx, &Request{
		Method: constvars.MethodGet,
		Path:   c.itemPath(id),
	}, entity)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *resourceClient[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	c.Log.Info("resourceClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceKey, c.Resource),
	)
	return c.write(ctx, &Request{
		Method: constvars.MethodPost,
		Path:   c.collectionPath(),
		Body:   payload,
	})
}

func (c *resourceClient[T]) Update(ctx context.Context, id string, payload interface{}) (*T, error) {
	c.Log.Info("resourceClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceKey, c.Resource),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.write(ctx, &Request{
		Method: constvars.MethodPut,
		Path:   c.itemPath(id),
		Body:   payload,
	})
}

func (c *resourceClient[T]) Delete(ctx context.Context, id string) error {
	c.Log.Info("resourceClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceKey, c.Resource),
		zap.String(constvars.LoggingResourceIDKey, id),
	)
	return c.Base.DoJSON(ctx, &Request{
		Method: constvars.MethodDelete,
		Path:   c.itemPath(id),
	}, nil)
}

// write returns nil when the backend answers a mutation without a body.
func (c *resourceClient[T]) write(ctx context.Context, req *Request) (*T, error) {
	var raw json.RawMessage
	err := c.Base.DoJSON(ctx, req, &raw)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	entity := new(T)
	err = json.Unmarshal(raw, entity)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, c.Resource)
	}
	return entity, nil
}

func (c *resourceClient[T]) collectionPath() string {
	return "/" + c.Resource
}

func (c *resourceClient[T]) itemPath(id string) string {
	return "/" + c.Resource + "/" + url.PathEscape(id)
}

// BuildListQuery maps console paging and scope onto the backend's query params.
func BuildListQuery(params *requests.QueryParams) url.Values {
	query := url.Values{}
	if params == nil {
		return query
	}
	query.Set(constvars.BackendQueryParamPageIndex, strconv.Itoa(params.Page))
	query.Set(constvars.BackendQueryParamPageSize, strconv.Itoa(params.PageSize))
	if params.SearchTerm != "" {
		query.Set(constvars.BackendQueryParamSearchTerm, params.SearchTerm)
	}
	if params.Scope.ClinicID != "" {
		query.Set(constvars.BackendQueryParamClinicID, params.Scope.ClinicID)
	}
	if params.Scope.DoctorID != "" {
		query.Set(constvars.BackendQueryParamDoctorID, params.Scope.DoctorID)
	}
	if params.Scope.PatientID != "" {
		query.Set(constvars.BackendQueryParamPatientID, params.Scope.PatientID)
	}
	return query
}
