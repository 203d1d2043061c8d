package contracts

import (
	"context"

	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/dto/requests"
)

type ContactUsecase interface {
	Create(ctx context.Context, request *requests.CreateContact) (string, error)
	FindAll(ctx context.Context) ([]models.Contact, error)
}

type ContactRepository interface {
	Insert(ctx context.Context, contact *models.Contact) (string, error)
	FindAll(ctx context.Context) ([]models.Contact, error)
}
