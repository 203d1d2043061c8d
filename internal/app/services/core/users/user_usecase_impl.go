package users

import (
	"context"
	"sync"
	"time"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/dto/responses"
	"provilink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

// Register inserts the user only when the email is new. A duplicate email is
// not an error; the response simply carries no inserted ID.
func (uc *userUsecase) Register(ctx context.Context, request *requests.CreateUser) (*responses.CreateUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return &responses.CreateUser{}, nil
	}

	role := request.Role
	if role == "" {
		role = constvars.RoleUser
	}

	// Password is optional; social sign-ins register without one.
	var hashedPassword string
	if request.Password != "" {
		hashedPassword, err = utils.HashPassword(request.Password)
		if err != nil {
			return nil, err
		}
	}

	user := &models.User{
		Name:      request.Name,
		Email:     request.Email,
		Password:  hashedPassword,
		UserImg:   request.UserImg,
		Role:      role,
		CreatedAt: time.Now(),
	}
	insertedID, err := uc.UserRepository.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.CreateUser{InsertedID: insertedID}, nil
}

func (uc *userUsecase) FindAll(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

func (uc *userUsecase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return uc.UserRepository.FindByEmail(ctx, email)
}

func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == constvars.RoleAdmin, nil
}

func (uc *userUsecase) IsProvider(ctx context.Context, email string) (bool, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == constvars.RoleProvider, nil
}

func (uc *userUsecase) PromoteToAdmin(ctx context.Context, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.PromoteToAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.UserRepository.UpdateRoleByID(ctx, userID, constvars.RoleAdmin)
}
