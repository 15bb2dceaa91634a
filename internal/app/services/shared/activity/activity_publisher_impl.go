package activity

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/constvars"
	"clinic-console-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Log     *zap.Logger
}

// NewActivityPublisher publishes to queue over conn. A nil conn yields a
// publisher that only logs.
func NewActivityPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.ActivityPublisher, error) {
	if conn == nil {
		return &logOnlyPublisher{Log: logger}, nil
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.ActivityEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"resource":     event.Resource,
			"action":       event.Action,
		},
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish error publishing activity event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}

type logOnlyPublisher struct {
	Log *zap.Logger
}

func (p *logOnlyPublisher) Publish(ctx context.Context, event *models.ActivityEvent) error {
	p.Log.Debug("activity event not published, rabbitmq disabled",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingResourceKey, event.Resource),
		zap.String(constvars.LoggingActionKey, event.Action),
		zap.String(constvars.LoggingResourceIDKey, event.ResourceID),
	)
	return nil
}
