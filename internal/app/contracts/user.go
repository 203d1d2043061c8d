package contracts

import (
	"context"

	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	Register(ctx context.Context, request *requests.CreateUser) (*responses.CreateUser, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	IsProvider(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, userID string) error
}

type UserRepository interface {
	Insert(ctx context.Context, user *models.User) (string, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateRoleByID(ctx context.Context, userID, role string) error
	UpdateRoleByEmail(ctx context.Context, email, role string) error
}
