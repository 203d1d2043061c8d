package contracts

import (
	"context"

	"provilink-service/internal/pkg/dto/requests"
)

// NotificationDispatcher hands an email payload to the notification queue.
type NotificationDispatcher interface {
	DispatchEmail(ctx context.Context, payload *requests.EmailPayload) error
}

// MailerService performs the actual delivery. The queue worker is its only
// caller.
type MailerService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}
