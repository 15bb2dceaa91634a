package utils

import (
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"context"
)

func ContextWithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
}

func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session, ok && session != nil
}

func SessionIDFromContext(ctx context.Context) string {
	if session, ok := SessionFromContext(ctx); ok {
		return session.SessionID
	}
	return ""
}
