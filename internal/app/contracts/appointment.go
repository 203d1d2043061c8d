package contracts

import (
	"context"
	"time"

	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, request *requests.CreateAppointment) (string, error)
	FindByEmail(ctx context.Context, email string) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByProviderEmail(ctx context.Context, providerEmail string) ([]models.Appointment, error)
	DeleteByID(ctx context.Context, appointmentID string) (int64, error)
	Assign(ctx context.Context, request *requests.AssignAppointment) error
	Progress(ctx context.Context, request *requests.ProgressAppointment) error
	Complete(ctx context.Context, appointmentID string) (*responses.CompleteAppointment, error)
}

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByIDs(ctx context.Context, appointmentIDs []string) ([]models.Appointment, error)
	FindByEmail(ctx context.Context, email string) ([]models.Appointment, error)
	FindByProviderEmail(ctx context.Context, providerEmail string) ([]models.Appointment, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	DeleteByID(ctx context.Context, appointmentID string) (int64, error)
	UpdateAssignment(ctx context.Context, appointmentID, providerEmail, status string) error
	UpdateProgress(ctx context.Context, appointmentID, status, userMeetingLink string) error
	MarkPending(ctx context.Context, appointmentIDs []string, paymentID, customerEmail string, pendingAt time.Time) (int64, error)
	MarkPaidByPaymentID(ctx context.Context, paymentID string) (int64, error)
	RevertStalePending(ctx context.Context, olderThan time.Time) (int64, error)
}

type AppointmentHistoryRepository interface {
	Insert(ctx context.Context, history *models.AppointmentHistory) (string, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.AppointmentHistory, error)
}
