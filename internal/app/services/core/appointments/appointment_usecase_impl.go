package appointments

import (
	"context"
	"sync"
	"time"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/dto/responses"
	"provilink-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	HistoryRepository     contracts.AppointmentHistoryRepository
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	historyRepository contracts.AppointmentHistoryRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			HistoryRepository:     historyRepository,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	appointment := &models.Appointment{
		Name:            request.Name,
		Email:           request.Email,
		ServiceName:     request.ServiceName,
		ServiceCategory: request.ServiceCategory,
		Date:            request.Date,
		Time:            request.Time,
		Price:           request.Price,
		Status:          models.AppointmentStatusUnpaid,
		CreatedAt:       time.Now(),
	}

	appointmentID, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}
	return appointmentID, nil
}

func (uc *appointmentUsecase) FindByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindByEmail(ctx, email)
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindAll(ctx)
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) FindByProviderEmail(ctx context.Context, providerEmail string) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindByProviderEmail(ctx, providerEmail)
}

func (uc *appointmentUsecase) DeleteByID(ctx context.Context, appointmentID string) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
}

func (uc *appointmentUsecase) Assign(ctx context.Context, request *requests.AssignAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Assign called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String(constvars.LoggingEmailKey, request.ProviderEmail),
	)
	return uc.AppointmentRepository.UpdateAssignment(ctx, request.AppointmentID, request.ProviderEmail, request.Status)
}

func (uc *appointmentUsecase) Progress(ctx context.Context, request *requests.ProgressAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Progress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)
	return uc.AppointmentRepository.UpdateProgress(ctx, request.AppointmentID, request.Status, request.UserMeetingLink)
}

// Complete archives the appointment into the history collection and only then
// removes the active document. A failed delete is reported as a partial
// completion, never rolled back, so the archived copy always survives.
func (uc *appointmentUsecase) Complete(ctx context.Context, appointmentID string) (*responses.CompleteAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	history := &models.AppointmentHistory{
		AppointmentID:   appointment.ID,
		Name:            appointment.Name,
		Email:           appointment.Email,
		ServiceName:     appointment.ServiceName,
		ServiceCategory: appointment.ServiceCategory,
		Date:            appointment.Date,
		Time:            appointment.Time,
		Price:           appointment.Price,
		ProviderEmail:   appointment.ProviderEmail,
		PaymentID:       appointment.PaymentID,
		CustomerEmail:   appointment.CustomerEmail,
		CreatedAt:       appointment.CreatedAt,
		CompletedAt:     time.Now(),
	}

	historyID, err := uc.HistoryRepository.Insert(ctx, history)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Complete error archiving appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	deletedCount, err := uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.Complete archived but failed to delete source",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingHistoryIDKey, historyID),
			zap.Error(err),
		)
		return &responses.CompleteAppointment{
			HistoryID:    historyID,
			DeletedCount: 0,
		}, nil
	}

	uc.Log.Info("appointmentUsecase.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHistoryIDKey, historyID),
		zap.Int64(constvars.LoggingDeletedCountKey, deletedCount),
	)
	return &responses.CompleteAppointment{
		HistoryID:    historyID,
		DeletedCount: deletedCount,
	}, nil
}
