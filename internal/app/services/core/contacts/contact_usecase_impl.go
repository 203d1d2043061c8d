package contacts

import (
	"context"
	"sync"
	"time"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type contactUsecase struct {
	ContactRepository contracts.ContactRepository
	Log               *zap.Logger
}

var (
	contactUsecaseInstance contracts.ContactUsecase
	onceContactUsecase     sync.Once
)

func NewContactUsecase(contactRepository contracts.ContactRepository, logger *zap.Logger) contracts.ContactUsecase {
	onceContactUsecase.Do(func() {
		contactUsecaseInstance = &contactUsecase{
			ContactRepository: contactRepository,
			Log:               logger,
		}
	})
	return contactUsecaseInstance
}

func (uc *contactUsecase) Create(ctx context.Context, request *requests.CreateContact) (string, error) {
	contact := &models.Contact{
		Name:      request.Name,
		Email:     request.Email,
		Subject:   request.Subject,
		Message:   request.Message,
		CreatedAt: time.Now(),
	}
	return uc.ContactRepository.Insert(ctx, contact)
}

func (uc *contactUsecase) FindAll(ctx context.Context) ([]models.Contact, error) {
	return uc.ContactRepository.FindAll(ctx)
}
