package reviews

import (
	"context"
	"sync"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"

	"go.uber.org/zap"
)

type reviewUsecase struct {
	ReviewRepository contracts.ReviewRepository
	Log              *zap.Logger
}

var (
	reviewUsecaseInstance contracts.ReviewUsecase
	onceReviewUsecase     sync.Once
)

func NewReviewUsecase(reviewRepository contracts.ReviewRepository, logger *zap.Logger) contracts.ReviewUsecase {
	onceReviewUsecase.Do(func() {
		reviewUsecaseInstance = &reviewUsecase{
			ReviewRepository: reviewRepository,
			Log:              logger,
		}
	})
	return reviewUsecaseInstance
}

func (uc *reviewUsecase) FindAll(ctx context.Context) ([]models.Review, error) {
	return uc.ReviewRepository.FindAll(ctx)
}
