package contracts

import (
	"clinic-console-service/internal/app/models"
	"context"
)

type ActivityPublisher interface {
	Publish(ctx context.Context, event *models.ActivityEvent) error
}
