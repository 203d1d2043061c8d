package providers

import (
	"context"
	"sync"
	"time"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type providerUsecase struct {
	ProviderRepository contracts.ProviderRepository
	UserRepository     contracts.UserRepository
	Log                *zap.Logger
}

var (
	providerUsecaseInstance contracts.ProviderUsecase
	onceProviderUsecase     sync.Once
)

func NewProviderUsecase(
	providerRepository contracts.ProviderRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.ProviderUsecase {
	onceProviderUsecase.Do(func() {
		providerUsecaseInstance = &providerUsecase{
			ProviderRepository: providerRepository,
			UserRepository:     userRepository,
			Log:                logger,
		}
	})
	return providerUsecaseInstance
}

func (uc *providerUsecase) FindAll(ctx context.Context) ([]models.Provider, error) {
	return uc.ProviderRepository.FindAll(ctx)
}

func (uc *providerUsecase) FindByID(ctx context.Context, providerID string) (*models.Provider, error) {
	return uc.ProviderRepository.FindByID(ctx, providerID)
}

// Add promotes an existing user to the provider role and inserts the provider
// document. The returned message mirrors the outcome: already a provider, no
// such user, or added.
func (uc *providerUsecase) Add(ctx context.Context, request *requests.CreateProvider) (string, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.Add called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	existingProvider, err := uc.ProviderRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", "", err
	}
	if existingProvider != nil {
		return "", constvars.ProviderAlreadyExists, nil
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", constvars.ErrClientUserNotFound, nil
	}

	err = uc.UserRepository.UpdateRoleByEmail(ctx, request.Email, constvars.RoleProvider)
	if err != nil {
		return "", "", err
	}

	provider := &models.Provider{
		Name:        request.Name,
		Email:       request.Email,
		Category:    request.Category,
		UserImg:     request.UserImg,
		Description: request.Description,
		Location:    request.Location,
		Phone:       request.Phone,
		Rating:      request.Rating,
		CreatedAt:   time.Now(),
	}
	insertedID, err := uc.ProviderRepository.Insert(ctx, provider)
	if err != nil {
		return "", "", err
	}

	return insertedID, constvars.ProviderCreatedSuccess, nil
}

func (uc *providerUsecase) DeleteByID(ctx context.Context, providerID string) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("providerUsecase.DeleteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.ProviderRepository.DeleteByID(ctx, providerID)
}
