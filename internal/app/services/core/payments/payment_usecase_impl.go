package payments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"provilink-service/internal/app/config"
	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const callbackLockTTL = 30 * time.Second

type paymentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PaymentGateway        contracts.PaymentGatewayService
	Locker                contracts.LockerService
	Dispatcher            contracts.NotificationDispatcher
	FrontendURL           string
	Log                   *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	paymentGateway contracts.PaymentGatewayService,
	lockerService contracts.LockerService,
	dispatcher contracts.NotificationDispatcher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			AppointmentRepository: appointmentRepository,
			PaymentGateway:        paymentGateway,
			Locker:                lockerService,
			Dispatcher:            dispatcher,
			FrontendURL:           internalConfig.App.FrontendURL,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

// InitiatePayment reserves the selected appointments under a fresh
// transaction ID and only then contacts the gateway. A gateway failure leaves
// the batch pending; the reconciler reverts stale reservations.
func (uc *paymentUsecase) InitiatePayment(ctx context.Context, request *requests.InitiatePayment) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.InitiatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.CustomerEmail),
		zap.Int(constvars.LoggingAppointmentsCountKey, len(request.SelectedAppointments)),
	)

	appointments, err := uc.AppointmentRepository.FindByIDs(ctx, request.SelectedAppointments)
	if err != nil {
		return "", err
	}
	if len(appointments) != len(request.SelectedAppointments) {
		return "", exceptions.ErrAppointmentNotPayable(nil)
	}
	for _, appointment := range appointments {
		if appointment.Status != models.AppointmentStatusUnpaid {
			return "", exceptions.ErrAppointmentNotPayable(nil)
		}
	}

	transactionID := uuid.NewString()

	modifiedCount, err := uc.AppointmentRepository.MarkPending(ctx, request.SelectedAppointments, transactionID, request.CustomerEmail, time.Now())
	if err != nil {
		uc.Log.Error("paymentUsecase.InitiatePayment error reserving appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("paymentUsecase.InitiatePayment reserved appointments",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
		zap.Int64(constvars.LoggingModifiedCountKey, modifiedCount),
	)

	gatewayURL, err := uc.PaymentGateway.InitiateTransaction(ctx, request, transactionID)
	if err != nil {
		// The reservation stands. The reconciler reverts it once the TTL
		// passes without a callback.
		uc.Log.Error("paymentUsecase.InitiatePayment gateway initiation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.Error(err),
		)
		return "", err
	}

	return gatewayURL, nil
}

// HandleSuccessCallback settles the transaction. It is idempotent: a repeat
// callback for an already-paid transaction succeeds without re-notifying.
func (uc *paymentUsecase) HandleSuccessCallback(ctx context.Context, request *requests.PaymentCallback) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.HandleSuccessCallback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)

	status := constvars.SSLCommerzCallbackStatus(request.Status)
	if status != constvars.SSLCommerzStatusValid {
		return "", exceptions.ErrInvalidPayment(nil)
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyPaymentCallbackLockFormat, request.TransactionID)
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, callbackLockTTL)
	if err != nil {
		return "", err
	}
	if !acquired {
		// A concurrent callback for the same transaction is in flight. Treat
		// this one as settled.
		return uc.successRedirectURL(), nil
	}
	defer uc.Locker.Unlock(ctx, lockKey, lockValue)

	anchor, err := uc.AppointmentRepository.FindByPaymentID(ctx, request.TransactionID)
	if err != nil {
		return "", err
	}
	if anchor == nil {
		return "", exceptions.ErrTransactionNotFound(nil)
	}

	if anchor.Status == models.AppointmentStatusPaid {
		uc.Log.Info("paymentUsecase.HandleSuccessCallback transaction already settled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		)
		return uc.successRedirectURL(), nil
	}

	modifiedCount, err := uc.AppointmentRepository.MarkPaidByPaymentID(ctx, request.TransactionID)
	if err != nil {
		return "", err
	}

	uc.Log.Info("paymentUsecase.HandleSuccessCallback marked appointments paid",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
		zap.Int64(constvars.LoggingModifiedCountKey, modifiedCount),
	)

	payload := &requests.EmailPayload{
		ReceiverEmail: anchor.CustomerEmail,
		Subject:       constvars.EmailPaymentSuccessSubject,
		Body:          fmt.Sprintf(constvars.EmailBodyPaymentSuccessFormat, request.Currency, request.Amount, request.TransactionID),
		HTML:          true,
	}
	err = uc.Dispatcher.DispatchEmail(ctx, payload)
	if err != nil {
		// Notification failure never reverts the settlement.
		uc.Log.Error("paymentUsecase.HandleSuccessCallback error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
			zap.String(constvars.LoggingEmailKey, anchor.CustomerEmail),
			zap.Error(err),
		)
	}

	return uc.successRedirectURL(), nil
}

func (uc *paymentUsecase) HandleFailureCallback(ctx context.Context) string {
	return uc.failRedirectURL()
}

func (uc *paymentUsecase) HandleCancelCallback(ctx context.Context) string {
	return uc.failRedirectURL()
}

func (uc *paymentUsecase) successRedirectURL() string {
	return fmt.Sprintf("%s/success", uc.FrontendURL)
}

func (uc *paymentUsecase) failRedirectURL() string {
	return fmt.Sprintf("%s/fail", uc.FrontendURL)
}
