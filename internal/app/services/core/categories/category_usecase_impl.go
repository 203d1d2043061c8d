package categories

import (
	"context"
	"sync"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"

	"go.uber.org/zap"
)

type categoryUsecase struct {
	CategoryRepository contracts.CategoryRepository
	Log                *zap.Logger
}

var (
	categoryUsecaseInstance contracts.CategoryUsecase
	onceCategoryUsecase     sync.Once
)

func NewCategoryUsecase(categoryRepository contracts.CategoryRepository, logger *zap.Logger) contracts.CategoryUsecase {
	onceCategoryUsecase.Do(func() {
		categoryUsecaseInstance = &categoryUsecase{
			CategoryRepository: categoryRepository,
			Log:                logger,
		}
	})
	return categoryUsecaseInstance
}

func (uc *categoryUsecase) FindAll(ctx context.Context) ([]models.Category, error) {
	return uc.CategoryRepository.FindAll(ctx)
}

func (uc *categoryUsecase) FindByType(ctx context.Context, serviceProviderType string) (*models.Category, error) {
	return uc.CategoryRepository.FindByType(ctx, serviceProviderType)
}
