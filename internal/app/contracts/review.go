package contracts

import (
	"context"

	"provilink-service/internal/app/models"
)

type ReviewUsecase interface {
	FindAll(ctx context.Context) ([]models.Review, error)
}

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]models.Review, error)
}
