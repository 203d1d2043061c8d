package users

import (
	"context"
	"testing"

	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRoleByID(ctx context.Context, userID, role string) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRoleByEmail(ctx context.Context, email, role string) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

func newTestUserUsecase(repo *MockUserRepository) *userUsecase {
	return &userUsecase{
		UserRepository: repo,
		Log:            zap.NewNop(),
	}
}

func TestUserUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts new user with the default role", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		uc := newTestUserUsecase(mockRepo)

		mockRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Role == constvars.RoleUser && !user.CreatedAt.IsZero()
		})).Return("64f000000000000000000001", nil)

		result, err := uc.Register(ctx, &requests.CreateUser{
			Name:  "New User",
			Email: "new@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "64f000000000000000000001", result.InsertedID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("stores the password hashed, never verbatim", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		uc := newTestUserUsecase(mockRepo)

		mockRepo.On("FindByEmail", mock.Anything, "secure@example.com").Return(nil, nil)
		mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Password != "" && user.Password != "plaintext-password" && utils.CheckPasswordHash("plaintext-password", user.Password)
		})).Return("64f000000000000000000002", nil)

		_, err := uc.Register(ctx, &requests.CreateUser{
			Name:     "Secure User",
			Email:    "secure@example.com",
			Password: "plaintext-password",
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email is a no-op", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		uc := newTestUserUsecase(mockRepo)

		mockRepo.On("FindByEmail", mock.Anything, "existing@example.com").Return(&models.User{
			Email: "existing@example.com",
			Role:  constvars.RoleUser,
		}, nil)

		result, err := uc.Register(ctx, &requests.CreateUser{
			Name:  "Existing User",
			Email: "existing@example.com",
		})

		assert.NoError(t, err)
		assert.Empty(t, result.InsertedID)
		mockRepo.AssertNotCalled(t, "Insert")
	})
}

func TestUserUsecase_RoleChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("admin role", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		uc := newTestUserUsecase(mockRepo)

		mockRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(&models.User{Role: constvars.RoleAdmin}, nil)
		mockRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(&models.User{Role: constvars.RoleUser}, nil)
		mockRepo.On("FindByEmail", mock.Anything, "unknown@example.com").Return(nil, nil)

		admin, err := uc.IsAdmin(ctx, "admin@example.com")
		assert.NoError(t, err)
		assert.True(t, admin)

		admin, err = uc.IsAdmin(ctx, "user@example.com")
		assert.NoError(t, err)
		assert.False(t, admin)

		admin, err = uc.IsAdmin(ctx, "unknown@example.com")
		assert.NoError(t, err)
		assert.False(t, admin)
	})

	t.Run("provider role", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		uc := newTestUserUsecase(mockRepo)

		mockRepo.On("FindByEmail", mock.Anything, "provider@example.com").Return(&models.User{Role: constvars.RoleProvider}, nil)

		provider, err := uc.IsProvider(ctx, "provider@example.com")
		assert.NoError(t, err)
		assert.True(t, provider)
	})
}

func TestUserUsecase_PromoteToAdmin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestUserUsecase(mockRepo)

	mockRepo.On("UpdateRoleByID", mock.Anything, "64f000000000000000000001", constvars.RoleAdmin).Return(nil)

	err := uc.PromoteToAdmin(context.Background(), "64f000000000000000000001")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
