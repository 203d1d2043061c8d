package contracts

import (
	"context"

	"provilink-service/internal/app/models"
)

type CategoryUsecase interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByType(ctx context.Context, serviceProviderType string) (*models.Category, error)
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByType(ctx context.Context, serviceProviderType string) (*models.Category, error)
}
