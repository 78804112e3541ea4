package eventqueue

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publishConfirmation is the broker answer for one published message.
type publishConfirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type publishChannel interface {
	PublishWithConfirm(ctx context.Context, key string, msg amqp.Publishing) (publishConfirmation, error)
	Close() error
}

// amqpChannel ties each publish to its own deferred confirmation, so a confirm
// abandoned on timeout can never be credited to a later message.
type amqpChannel struct {
	ch *amqp.Channel
}

func (c *amqpChannel) PublishWithConfirm(ctx context.Context, key string, msg amqp.Publishing) (publishConfirmation, error) {
	confirmation, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if confirmation == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return confirmation, nil
}

func (c *amqpChannel) Close() error {
	return c.ch.Close()
}

// Service publishes booking lifecycle events to a durable RabbitMQ queue and
// waits for the broker confirm of every message.
type Service struct {
	ch        publishChannel
	queueName string
	log       *zap.Logger
}

func NewService(conn *amqp.Connection, queueName string, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        &amqpChannel{ch: ch},
		queueName: queueName,
		log:       log,
	}, nil
}

var _ contracts.BookingEventPublisher = (*Service)(nil)

func (s *Service) PublishBookingCreated(ctx context.Context, event *models.BookingEvent) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("BookingEventQueue.PublishBookingCreated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.queueName),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Type:          event.Type,
		CorrelationId: requestID,
		Timestamp:     event.OccurredAt,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
	}

	confirmation, err := s.ch.PublishWithConfirm(ctx, s.queueName, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(errors.New("message not confirmed"), s.queueName)
	}
	return nil
}

func (s *Service) Close() error {
	return s.ch.Close()
}
