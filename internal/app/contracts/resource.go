package contracts

import (
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/dto/requests"
	"clinic-console-service/internal/pkg/dto/responses"
	"context"
)

// ResourceUsecase drives one CRUD screen: cached list, detail and mutations
// that invalidate the cache and push toasts.
type ResourceUsecase[T responses.Entity, F requests.Form] interface {
	Name() string
	FindAll(ctx context.Context, session *models.Session, params *requests.QueryParams) (*responses.PagedResult[T], error)
	FindByID(ctx context.Context, session *models.Session, id string) (*T, error)
	Create(ctx context.Context, session *models.Session, form *F) (*T, error)
	Update(ctx context.Context, session *models.Session, id string, form *F) (*T, error)
	Delete(ctx context.Context, session *models.Session, id string) error
}

// LookupSource serves dropdown options and CSV rows of a resource without
// knowing its entity type.
type LookupSource interface {
	Name() string
	Lookup(ctx context.Context, session *models.Session, request *requests.Lookup) ([]responses.LookupOption, error)
	ExportRows(ctx context.Context, session *models.Session, params *requests.QueryParams) (header []string, rows [][]string, err error)
}

type ExportUsecase interface {
	Export(ctx context.Context, session *models.Session, resource string, request *requests.Export) (*responses.Export, error)
}

// ScopeResolver derives the backend scope of a session for queries and forms.
type ScopeResolver interface {
	QueryScope(ctx context.Context, session *models.Session) (requests.Scope, error)
	FormScope(ctx context.Context, session *models.Session) (requests.Scope, error)
}

type LookupRegistry interface {
	Source(role models.Role, name string) (LookupSource, error)
}
