package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
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

type MockAppointmentHistoryRepository struct {
	mock.Mock
}

func (m *MockAppointmentHistoryRepository) Insert(ctx context.Context, history *models.AppointmentHistory) (string, error) {
	args := m.Called(ctx, history)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentHistoryRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.AppointmentHistory, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppointmentHistory), args.Error(1)
}

func newTestAppointmentUsecase(repo *MockAppointmentRepository, historyRepo *MockAppointmentHistoryRepository) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: repo,
		HistoryRepository:     historyRepo,
		Log:                   zap.NewNop(),
	}
}

func TestAppointmentUsecase_Create(t *testing.T) {
	mockRepo := new(MockAppointmentRepository)
	uc := newTestAppointmentUsecase(mockRepo, new(MockAppointmentHistoryRepository))

	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(appointment *models.Appointment) bool {
		return appointment.Status == models.AppointmentStatusUnpaid && !appointment.CreatedAt.IsZero()
	})).Return("64f000000000000000000001", nil)

	insertedID, err := uc.Create(context.Background(), &requests.CreateAppointment{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ServiceName: "Consultation",
		Date:        "2026-09-01",
		Time:        "10:00 AM",
		Price:       1500,
	})

	assert.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", insertedID)
	mockRepo.AssertExpectations(t)
}

func TestAppointmentUsecase_FindByID(t *testing.T) {
	t.Run("unknown id returns not found", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		uc := newTestAppointmentUsecase(mockRepo, new(MockAppointmentHistoryRepository))

		mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.FindByID(context.Background(), "missing")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestAppointmentUsecase_Complete(t *testing.T) {
	ctx := context.Background()
	appointmentID := "64f000000000000000000001"
	objectID, _ := primitive.ObjectIDFromHex(appointmentID)

	active := &models.Appointment{
		ID:            objectID,
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Status:        models.AppointmentStatusPaid,
		ProviderEmail: "provider@example.com",
		PaymentID:     "tran-123",
		CustomerEmail: "customer@example.com",
		CreatedAt:     time.Now().Add(-time.Hour),
	}

	t.Run("archives before deleting the active document", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockHistoryRepo := new(MockAppointmentHistoryRepository)
		uc := newTestAppointmentUsecase(mockRepo, mockHistoryRepo)

		mockRepo.On("FindByID", mock.Anything, appointmentID).Return(active, nil)
		mockHistoryRepo.On("Insert", mock.Anything, mock.MatchedBy(func(history *models.AppointmentHistory) bool {
			return history.AppointmentID == objectID && history.PaymentID == "tran-123" && !history.CompletedAt.IsZero()
		})).Return("hist-1", nil)
		mockRepo.On("DeleteByID", mock.Anything, appointmentID).Return(int64(1), nil)

		result, err := uc.Complete(ctx, appointmentID)

		assert.NoError(t, err)
		assert.Equal(t, "hist-1", result.HistoryID)
		assert.Equal(t, int64(1), result.DeletedCount)
		mockRepo.AssertExpectations(t)
		mockHistoryRepo.AssertExpectations(t)
	})

	t.Run("unknown appointment returns not found", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockHistoryRepo := new(MockAppointmentHistoryRepository)
		uc := newTestAppointmentUsecase(mockRepo, mockHistoryRepo)

		mockRepo.On("FindByID", mock.Anything, appointmentID).Return(nil, nil)

		_, err := uc.Complete(ctx, appointmentID)

		assert.Error(t, err)
		mockHistoryRepo.AssertNotCalled(t, "Insert")
		mockRepo.AssertNotCalled(t, "DeleteByID")
	})

	t.Run("archive failure aborts without deleting", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockHistoryRepo := new(MockAppointmentHistoryRepository)
		uc := newTestAppointmentUsecase(mockRepo, mockHistoryRepo)

		mockRepo.On("FindByID", mock.Anything, appointmentID).Return(active, nil)
		mockHistoryRepo.On("Insert", mock.Anything, mock.Anything).Return("", errors.New("write failed"))

		_, err := uc.Complete(ctx, appointmentID)

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "DeleteByID")
	})

	t.Run("delete failure reports partial completion", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		mockHistoryRepo := new(MockAppointmentHistoryRepository)
		uc := newTestAppointmentUsecase(mockRepo, mockHistoryRepo)

		mockRepo.On("FindByID", mock.Anything, appointmentID).Return(active, nil)
		mockHistoryRepo.On("Insert", mock.Anything, mock.Anything).Return("hist-1", nil)
		mockRepo.On("DeleteByID", mock.Anything, appointmentID).Return(int64(0), errors.New("delete failed"))

		result, err := uc.Complete(ctx, appointmentID)

		assert.NoError(t, err)
		assert.Equal(t, "hist-1", result.HistoryID)
		assert.Equal(t, int64(0), result.DeletedCount)
	})
}
