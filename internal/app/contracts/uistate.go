package contracts

import (
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/uistate"
	"context"
)

type UIStateUsecase interface {
	Get(ctx context.Context, session *models.Session) (*uistate.State, error)
	Dispatch(ctx context.Context, session *models.Session, action uistate.Action) (*uistate.State, error)
	PushToast(ctx context.Context, session *models.Session, severity uistate.Severity, summary, detail string) error
	ClearToasts(ctx context.Context, session *models.Session) (*uistate.State, error)
}
