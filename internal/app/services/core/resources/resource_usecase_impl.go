package resources

import (
	"clinic-console-service/internal/app/config"
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/app/services/shared/querycache"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/uistate"
	"clinic-console-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Usecase drives the CRUD screen of one console resource. It also serves the
// resource's dropdown lookups and CSV rows.
type Usecase[T responses.Entity, F requests.Form] struct {
	Resource       string
	Label          string
	Client         contracts.ResourceClient[T]
	QueryCache     contracts.QueryCache
	Scopes         contracts.ScopeResolver
	UIState        contracts.UIStateUsecase
	Activity       contracts.ActivityPublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

var (
	_ contracts.ResourceUsecase[responses.Clinic, requests.Clinic] = (*Usecase[responses.Clinic, requests.Clinic])(nil)
	_ contracts.LookupSource                                       = (*Usecase[responses.Clinic, requests.Clinic])(nil)
)

// NewUsecase builds the usecase of the console resource named resource.
// label is the singular noun used in toasts.
func NewUsecase[T responses.Entity, F requests.Form](
	resource, label string,
	client contracts.ResourceClient[T],
	queryCache contracts.QueryCache,
	scopes contracts.ScopeResolver,
	uiState contracts.UIStateUsecase,
	activity contracts.ActivityPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Usecase[T, F] {
	return &Usecase[T, F]{
		Resource:       resource,
		Label:          label,
		Client:         client,
		QueryCache:     queryCache,
		Scopes:         scopes,
		UIState:        uiState,
		Activity:       activity,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *Usecase[T, F]) Name() string {
	return uc.Resource
}

func (uc *Usecase[T, F]) FindAll(ctx context.Context, session *models.Session, params *requests.QueryParams) (*responses.PagedResult[T], error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("resourceUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.Resource),
		zap.Any(constvars.LoggingQueryParamsKey, params),
	)

	result, err := uc.list(ctx, session, params, uc.InternalConfig.Cache.TTL())
	if err != nil {
		return nil, uc.fail(ctx, session, err)
	}
	return result, nil
}

func (uc *Usecase[T, F]) FindByID(ctx context.Context, session *models.Session, id string) (*T, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("resourceUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.Resource),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	cacheKey := fmt.Sprintf("%s:item:%s:%s:%s", uc.Resource, session.Role, session.UserID, id)
	entity := new(T)
	if uc.fromCache(ctx, cacheKey, entity) {
		return entity, nil
	}

	entity, err := uc.Client.FindByID(utils.ContextWithSession(ctx, session), id)
	if err != nil {
		return nil, uc.fail(ctx, session, err)
	}

	uc.toCache(ctx, cacheKey, entity, []string{querycache.EntityTag(uc.Resource, id)}, uc.InternalConfig.Cache.TTL())
	return entity, nil
}

func (uc *Usecase[T, F]) Create(ctx context.Context, session *models.Session, form *F) (*T, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("resourceUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.Resource),
	)

	err := uc.applyFormScope(ctx, session, form)
	if err != nil {
		return nil, uc.fail(ctx, session, err)
	}

	entity, err := uc.Client.Create(utils.ContextWithSession(ctx, session), (*form).ToPayload())
	if err != nil {
		return nil, uc.fail(ctx, session, err)
	}

	var id string
	if entity != nil {
		id = (*entity).GetID()
	}
	uc.afterMutation(ctx, session, models.ActivityActionCreated, id, constvars.ToastDetailCreatedFormat)
	return entity, nil
}

func (uc *Usecase[T, F]) Update(ctx context.Context, session *models.Session, id string, form *F) (*T, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("resourceUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.Resource),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	err := uc.applyFormScope(ctx, session, form)
	if err != nil {
		return nil, uc.fail(ctx, session, err)
	}

	entity, err := uc.Client.Update(utils.ContextWithSession(ctx, session), id, (*form).ToPayload())
	if err != nil {
		return nil, uc.fail(ctx, session, err)
	}

	uc.afterMutation(ctx, session, models.ActivityActionUpdated, id, constvars.ToastDetailUpdatedFormat)
	return entity, nil
}

func (uc *Usecase[T, F]) Delete(ctx context.Context, session *models.Session, id string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("resourceUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.Resource),
		zap.String(constvars.LoggingResourceIDKey, id),
	)

	err := uc.Client.Delete(utils.ContextWithSession(ctx, session), id)
	if err != nil {
		return uc.fail(ctx, session, err)
	}

	uc.afterMutation(ctx, session, models.ActivityActionDeleted, id, constvars.ToastDetailDeletedFormat)
	return nil
}

// Lookup returns one page of dropdown options.
func (uc *Usecase[T, F]) Lookup(ctx context.Context, session *models.Session, request *requests.Lookup) ([]responses.LookupOption, error) {
	uc.Log.Debug("resourceUsecase.Lookup called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResourceKey, uc.Resource),
		zap.String(constvars.LoggingQueryKey, request.SearchTerm),
	)

	page := request.Page
	if page < 1 {
		page = constvars.DefaultPage
	}
	result, err := uc.list(ctx, session, &requests.QueryParams{
		Page:       page,
		PageSize:   constvars.LookupPageSize,
		SearchTerm: request.SearchTerm,
	}, uc.InternalConfig.Cache.LookupTTL())
	if err != nil {
		return nil, err
	}

	options := make([]responses.LookupOption, 0, len(result.Items))
	for _, item := range result.Items {
		options = append(options, item.ToLookupOption())
	}
	return options, nil
}

// ExportRows walks every page of the scoped list straight from the backend.
func (uc *Usecase[T, F]) ExportRows(ctx context.Context, session *models.Session, params *requests.QueryParams) ([]string, [][]string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("resourceUsecase.ExportRows called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, uc.Resource),
	)

	scope, err := uc.Scopes.QueryScope(ctx, session)
	if err != nil {
		return nil, nil, err
	}

	var zero T
	header := zero.CSVHeader()
	rows := [][]string{}
	sessionCtx := utils.ContextWithSession(ctx, session)
	complete := false
	for page := 1; page <= constvars.ExportMaxPageCount; page++ {
		result, err := uc.Client.FindAll(sessionCtx, &requests.QueryParams{
			Page:       page,
			PageSize:   constvars.ExportPageSize,
			SearchTerm: params.SearchTerm,
			Scope:      scope,
		})
		if err != nil {
			return nil, nil, err
		}
		for _, item := range result.Items {
			rows = append(rows, item.CSVRecord())
		}
		// A zero total count means the backend did not report one.
		if len(result.Items) < constvars.ExportPageSize || (result.TotalCount > 0 && len(rows) >= result.TotalCount) {
			complete = true
			break
		}
	}
	if !complete {
		uc.Log.Warn("resourceUsecase.ExportRows page limit reached, export truncated",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, uc.Resource),
			zap.Int(constvars.LoggingResponseLengthKey, len(rows)),
		)
	}
	return header, rows, nil
}

func (uc *Usecase[T, F]) list(ctx context.Context, session *models.Session, params *requests.QueryParams, ttl time.Duration) (*responses.PagedResult[T], error) {
	scope, err := uc.Scopes.QueryScope(ctx, session)
	if err != nil {
		return nil, err
	}
	scoped := *params
	scoped.Scope = scope

	cacheKey := fmt.Sprintf("%s:list:%s:%s:%s|%s|%s:%d:%d:%s",
		uc.Resource, session.Role, session.UserID,
		scope.ClinicID, scope.DoctorID, scope.PatientID,
		scoped.Page, scoped.PageSize, scoped.SearchTerm,
	)
	result := new(responses.PagedResult[T])
	if uc.fromCache(ctx, cacheKey, result) {
		return result, nil
	}

	result, err = uc.Client.FindAll(utils.ContextWithSession(ctx, session), &scoped)
	if err != nil {
		return nil, err
	}

	uc.toCache(ctx, cacheKey, result, []string{querycache.ListTag(uc.Resource)}, ttl)
	return result, nil
}

func (uc *Usecase[T, F]) applyFormScope(ctx context.Context, session *models.Session, form *F) error {
	aware, ok := any(form).(requests.ScopeAware)
	if !ok {
		return nil
	}
	scope, err := uc.Scopes.FormScope(ctx, session)
	if err != nil {
		return err
	}
	aware.ApplyScope(scope)
	return nil
}

// afterMutation drops stale cache entries, then tells the user and the
// activity queue. None of these undo a mutation the backend already accepted.
func (uc *Usecase[T, F]) afterMutation(ctx context.Context, session *models.Session, action, id, toastFormat string) {
	requestID := utils.GetRequestID(ctx)

	tags := []string{querycache.ListTag(uc.Resource)}
	if id != "" {
		tags = append(tags, querycache.EntityTag(uc.Resource, id))
	}
	err := uc.QueryCache.Invalidate(ctx, tags...)
	if err != nil {
		uc.Log.Error("resourceUsecase.afterMutation error invalidating query cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingCacheTagsKey, tags),
			zap.Error(err),
		)
	}

	uc.toast(ctx, session, uistate.SeveritySuccess, constvars.ToastSummarySuccess, fmt.Sprintf(toastFormat, uc.Label))

	err = uc.Activity.Publish(ctx, &models.ActivityEvent{
		Resource:   uc.Resource,
		Action:     action,
		ResourceID: id,
		Role:       session.Role,
		UserID:     session.UserID,
		RequestID:  requestID,
		OccurredAt: uc.now(),
	})
	if err != nil {
		uc.Log.Error("resourceUsecase.afterMutation error publishing activity",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	utils.LogBusinessEvent(uc.Log, uc.Resource+"_"+action, requestID,
		zap.String(constvars.LoggingResourceIDKey, id),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
}

// fail pushes the error toast for err and returns it. A logged out session
// gets no toast.
func (uc *Usecase[T, F]) fail(ctx context.Context, session *models.Session, err error) error {
	if exceptions.StatusCodeOf(err) != constvars.StatusUnauthorized {
		uc.toast(ctx, session, uistate.SeverityError, constvars.ToastSummaryError,
			exceptions.ClientMessageOf(err, constvars.ToastDetailGenericError))
	}
	return err
}

func (uc *Usecase[T, F]) toast(ctx context.Context, session *models.Session, severity uistate.Severity, summary, detail string) {
	err := uc.UIState.PushToast(ctx, session, severity, summary, detail)
	if err != nil {
		uc.Log.Warn("resourceUsecase.toast error pushing toast",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func (uc *Usecase[T, F]) fromCache(ctx context.Context, key string, dst interface{}) bool {
	raw, hit, err := uc.QueryCache.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("resourceUsecase.fromCache error reading query cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return false
	}
	if !hit {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (uc *Usecase[T, F]) toCache(ctx context.Context, key string, value interface{}, tags []string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	err := uc.QueryCache.Set(ctx, key, value, tags, ttl)
	if err != nil {
		uc.Log.Warn("resourceUsecase.toCache error writing query cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
}
