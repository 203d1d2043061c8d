package contracts

import (
	"context"

	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/dto/requests"
)

type ProviderUsecase interface {
	FindAll(ctx context.Context) ([]models.Provider, error)
	FindByID(ctx context.Context, providerID string) (*models.Provider, error)
	Add(ctx context.Context, request *requests.CreateProvider) (string, string, error)
	DeleteByID(ctx context.Context, providerID string) (int64, error)
}

type ProviderRepository interface {
	Insert(ctx context.Context, provider *models.Provider) (string, error)
	FindAll(ctx context.Context) ([]models.Provider, error)
	FindByID(ctx context.Context, providerID string) (*models.Provider, error)
	FindByEmail(ctx context.Context, email string) (*models.Provider, error)
	FindAuthorByEmail(ctx context.Context, email string) (*models.BlogAuthor, error)
	DeleteByID(ctx context.Context, providerID string) (int64, error)
}
