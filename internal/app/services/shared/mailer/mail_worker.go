package mailer

import (
	"context"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MailWorker consumes queued email payloads and delivers them over SMTP.
type MailWorker struct {
	channel *amqp091.Channel
	mailer  contracts.MailerService
	queue   string
	Log     *zap.Logger
	done    chan struct{}
}

func NewMailWorker(rabbitMQConnection *amqp091.Connection, mailerService contracts.MailerService, queue string, logger *zap.Logger) (*MailWorker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &MailWorker{
		channel: channel,
		mailer:  mailerService,
		queue:   queue,
		Log:     logger,
		done:    make(chan struct{}),
	}, nil
}

func (w *MailWorker) Start(ctx context.Context) error {
	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.done:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handle(ctx, delivery)
			}
		}
	}()

	w.Log.Info("mailWorker.Start consuming",
		zap.String(constvars.LoggingQueueNameKey, w.queue),
	)
	return nil
}

func (w *MailWorker) Stop() {
	close(w.done)
	w.channel.Close()
}

func (w *MailWorker) handle(ctx context.Context, delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	err := json.Unmarshal(delivery.Body, &payload)
	if err != nil {
		w.Log.Error("mailWorker.handle error unmarshaling payload",
			zap.String(constvars.LoggingQueueNameKey, w.queue),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	err = w.mailer.SendEmail(ctx, &payload)
	if err != nil {
		w.Log.Error("mailWorker.handle error sending email",
			zap.String(constvars.LoggingQueueNameKey, w.queue),
			zap.String(constvars.LoggingEmailKey, payload.ReceiverEmail),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	delivery.Ack(false)
}
