package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByIDs(ctx context.Context, appointmentIDs []string) ([]models.Appointment, error) {
	args := m.Called(ctx, appointmentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByProviderEmail(ctx context.Context, providerEmail string) ([]models.Appointment, error) {
	args := m.Called(ctx, providerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPaymentID(ctx context.Context, paymentID string) (*models.Appointment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) (int64, error) {
	args := m.Called(ctx, appointmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateAssignment(ctx context.Context, appointmentID, providerEmail, status string) error {
	args := m.Called(ctx, appointmentID, providerEmail, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) UpdateProgress(ctx context.Context, appointmentID, status, userMeetingLink string) error {
	args := m.Called(ctx, appointmentID, status, userMeetingLink)
	return args.Error(0)
}

func (m *MockAppointmentRepository) MarkPending(ctx context.Context, appointmentIDs []string, paymentID, customerEmail string, pendingAt time.Time) (int64, error) {
	args := m.Called(ctx, appointmentIDs, paymentID, customerEmail, pendingAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) MarkPaidByPaymentID(ctx context.Context, paymentID string) (int64, error) {
	args := m.Called(ctx, paymentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) RevertStalePending(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentGatewayService struct {
	mock.Mock
}

func (m *MockPaymentGatewayService) InitiateTransaction(ctx context.Context, request *requests.InitiatePayment, transactionID string) (string, error) {
	args := m.Called(ctx, request, transactionID)
	return args.String(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockNotificationDispatcher struct {
	mock.Mock
}

func (m *MockNotificationDispatcher) DispatchEmail(ctx context.Context, payload *requests.EmailPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newTestPaymentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	paymentGateway contracts.PaymentGatewayService,
	lockerService contracts.LockerService,
	dispatcher contracts.NotificationDispatcher,
) *paymentUsecase {
	return &paymentUsecase{
		AppointmentRepository: appointmentRepository,
		PaymentGateway:        paymentGateway,
		Locker:                lockerService,
		Dispatcher:            dispatcher,
		FrontendURL:           "https://frontend.test",
		Log:                   zap.NewNop(),
	}
}

func TestPaymentUsecase_InitiatePayment(t *testing.T) {
	ctx := context.Background()

	request := &requests.InitiatePayment{
		Amount:               1500,
		CustomerEmail:        "customer@example.com",
		SelectedAppointments: []string{"64f000000000000000000001", "64f000000000000000000002"},
	}

	unpaidBatch := []models.Appointment{
		{Status: models.AppointmentStatusUnpaid},
		{Status: models.AppointmentStatusUnpaid},
	}

	t.Run("reserves appointments before contacting the gateway", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockGateway := new(MockPaymentGatewayService)
		uc := newTestPaymentUsecase(mockRepo, mockGateway, new(MockLockerService), new(MockNotificationDispatcher))

		mockRepo.On("FindByIDs", mock.Anything, request.SelectedAppointments).Return(unpaidBatch, nil)
		mockRepo.On("MarkPending", mock.Anything, request.SelectedAppointments, mock.AnythingOfType("string"), request.CustomerEmail, mock.AnythingOfType("time.Time")).Return(int64(2), nil)
		mockGateway.On("InitiateTransaction", mock.Anything, request, mock.AnythingOfType("string")).Return("https://gateway.test/checkout", nil)

		gatewayURL, err := uc.InitiatePayment(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, "https://gateway.test/checkout", gatewayURL)
		mockRepo.AssertExpectations(t)
		mockGateway.AssertExpectations(t)
	})

	t.Run("rejects batch with non-unpaid appointment", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockGateway := new(MockPaymentGatewayService)
		uc := newTestPaymentUsecase(mockRepo, mockGateway, new(MockLockerService), new(MockNotificationDispatcher))

		mixedBatch := []models.Appointment{
			{Status: models.AppointmentStatusUnpaid},
			{Status: models.AppointmentStatusPending},
		}
		mockRepo.On("FindByIDs", mock.Anything, request.SelectedAppointments).Return(mixedBatch, nil)

		_, err := uc.InitiatePayment(ctx, request)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "MarkPending")
		mockGateway.AssertNotCalled(t, "InitiateTransaction")
	})

	t.Run("rejects batch with unknown appointment id", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockGateway := new(MockPaymentGatewayService)
		uc := newTestPaymentUsecase(mockRepo, mockGateway, new(MockLockerService), new(MockNotificationDispatcher))

		mockRepo.On("FindByIDs", mock.Anything, request.SelectedAppointments).Return([]models.Appointment{{Status: models.AppointmentStatusUnpaid}}, nil)

		_, err := uc.InitiatePayment(ctx, request)

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "MarkPending")
	})

	t.Run("gateway failure leaves the reservation standing", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockGateway := new(MockPaymentGatewayService)
		uc := newTestPaymentUsecase(mockRepo, mockGateway, new(MockLockerService), new(MockNotificationDispatcher))

		mockRepo.On("FindByIDs", mock.Anything, request.SelectedAppointments).Return(unpaidBatch, nil)
		mockRepo.On("MarkPending", mock.Anything, request.SelectedAppointments, mock.AnythingOfType("string"), request.CustomerEmail, mock.AnythingOfType("time.Time")).Return(int64(2), nil)
		mockGateway.On("InitiateTransaction", mock.Anything, request, mock.AnythingOfType("string")).Return("", errors.New("gateway unreachable"))

		_, err := uc.InitiatePayment(ctx, request)

		assert.Error(t, err)
		mockRepo.AssertExpectations(t)
		mockRepo.AssertNotCalled(t, "RevertStalePending")
	})
}

func TestPaymentUsecase_HandleSuccessCallback(t *testing.T) {
	ctx := context.Background()

	request := &requests.PaymentCallback{
		Status:        "VALID",
		TransactionID: "tran-123",
		Amount:        "1500.00",
		Currency:      "BDT",
	}

	t.Run("settles pending transaction and dispatches notification", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockLocker := new(MockLockerService)
		mockDispatcher := new(MockNotificationDispatcher)
		uc := newTestPaymentUsecase(mockRepo, new(MockPaymentGatewayService), mockLocker, mockDispatcher)

		mockLocker.On("TryLock", mock.Anything, "payment:callback:lock:tran-123", mock.AnythingOfType("time.Duration")).Return(true, "lock-value", nil)
		mockLocker.On("Unlock", mock.Anything, "payment:callback:lock:tran-123", "lock-value").Return(nil)
		mockRepo.On("FindByPaymentID", mock.Anything, "tran-123").Return(&models.Appointment{
			Status:        models.AppointmentStatusPending,
			PaymentID:     "tran-123",
			CustomerEmail: "customer@example.com",
		}, nil)
		mockRepo.On("MarkPaidByPaymentID", mock.Anything, "tran-123").Return(int64(2), nil)
		mockDispatcher.On("DispatchEmail", mock.Anything, mock.MatchedBy(func(payload *requests.EmailPayload) bool {
			return payload.ReceiverEmail == "customer@example.com" && payload.HTML
		})).Return(nil)

		redirectURL, err := uc.HandleSuccessCallback(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, "https://frontend.test/success", redirectURL)
		mockRepo.AssertExpectations(t)
		mockLocker.AssertExpectations(t)
		mockDispatcher.AssertExpectations(t)
	})

	t.Run("rejects non-VALID status without touching the store", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockLocker := new(MockLockerService)
		uc := newTestPaymentUsecase(mockRepo, new(MockPaymentGatewayService), mockLocker, new(MockNotificationDispatcher))

		invalid := &requests.PaymentCallback{Status: "FAILED", TransactionID: "tran-123"}

		_, err := uc.HandleSuccessCallback(ctx, invalid)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		mockLocker.AssertNotCalled(t, "TryLock")
		mockRepo.AssertNotCalled(t, "MarkPaidByPaymentID")
	})

	t.Run("unknown transaction returns not found", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockLocker := new(MockLockerService)
		uc := newTestPaymentUsecase(mockRepo, new(MockPaymentGatewayService), mockLocker, new(MockNotificationDispatcher))

		mockLocker.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(true, "lock-value", nil)
		mockLocker.On("Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-value").Return(nil)
		mockRepo.On("FindByPaymentID", mock.Anything, "tran-123").Return(nil, nil)

		_, err := uc.HandleSuccessCallback(ctx, request)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("repeat callback for settled transaction does not re-notify", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockLocker := new(MockLockerService)
		mockDispatcher := new(MockNotificationDispatcher)
		uc := newTestPaymentUsecase(mockRepo, new(MockPaymentGatewayService), mockLocker, mockDispatcher)

		mockLocker.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(true, "lock-value", nil)
		mockLocker.On("Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-value").Return(nil)
		mockRepo.On("FindByPaymentID", mock.Anything, "tran-123").Return(&models.Appointment{
			Status:    models.AppointmentStatusPaid,
			PaymentID: "tran-123",
		}, nil)

		redirectURL, err := uc.HandleSuccessCallback(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, "https://frontend.test/success", redirectURL)
		mockRepo.AssertNotCalled(t, "MarkPaidByPaymentID")
		mockDispatcher.AssertNotCalled(t, "DispatchEmail")
	})

	t.Run("concurrent callback is treated as settled when lock is held", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockLocker := new(MockLockerService)
		uc := newTestPaymentUsecase(mockRepo, new(MockPaymentGatewayService), mockLocker, new(MockNotificationDispatcher))

		mockLocker.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(false, "", nil)

		redirectURL, err := uc.HandleSuccessCallback(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, "https://frontend.test/success", redirectURL)
		mockRepo.AssertNotCalled(t, "FindByPaymentID")
		mockLocker.AssertNotCalled(t, "Unlock")
	})

	t.Run("notification failure never reverts the settlement", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockLocker := new(MockLockerService)
		mockDispatcher := new(MockNotificationDispatcher)
		uc := newTestPaymentUsecase(mockRepo, new(MockPaymentGatewayService), mockLocker, mockDispatcher)

		mockLocker.On("TryLock", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration")).Return(true, "lock-value", nil)
		mockLocker.On("Unlock", mock.Anything, mock.AnythingOfType("string"), "lock-value").Return(nil)
		mockRepo.On("FindByPaymentID", mock.Anything, "tran-123").Return(&models.Appointment{
			Status:        models.AppointmentStatusPending,
			CustomerEmail: "customer@example.com",
		}, nil)
		mockRepo.On("MarkPaidByPaymentID", mock.Anything, "tran-123").Return(int64(1), nil)
		mockDispatcher.On("DispatchEmail", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		redirectURL, err := uc.HandleSuccessCallback(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, "https://frontend.test/success", redirectURL)
	})
}

func TestPaymentUsecase_FailureAndCancelCallbacks(t *testing.T) {
	uc := newTestPaymentUsecase(new(MockAppointmentRepository), new(MockPaymentGatewayService), new(MockLockerService), new(MockNotificationDispatcher))

	assert.Equal(t, "https://frontend.test/fail", uc.HandleFailureCallback(context.Background()))
	assert.Equal(t, "https://frontend.test/fail", uc.HandleCancelCallback(context.Background()))
}
