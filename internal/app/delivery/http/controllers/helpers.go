package controllers

import (
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/exceptions"
	"clinic-console-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func sessionFrom(r *http.Request) (*models.Session, error) {
	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		return nil, exceptions.ErrTokenMissing(errors.New(constvars.ErrDevSessionNotFound))
	}
	return session, nil
}

func urlParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		return "", exceptions.ErrURLParamIDValidation(nil, name)
	}
	return value, nil
}

// usecaseError maps a request context that ran out into a timeout error.
func usecaseError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(err)
	}
	return err
}
