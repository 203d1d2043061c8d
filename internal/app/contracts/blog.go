package contracts

import (
	"context"
	"io"
	"mime/multipart"

	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/dto/requests"
)

type BlogUsecase interface {
	FindAll(ctx context.Context) ([]models.Blog, error)
	FindPage(ctx context.Context, page, pageSize int) ([]models.Blog, int, error)
	FindByID(ctx context.Context, blogID string) (*models.Blog, error)
	FindByAuthorEmail(ctx context.Context, authorEmail string) ([]models.Blog, error)
	FindAuthor(ctx context.Context, authorEmail string) (*models.BlogAuthor, error)
	Create(ctx context.Context, request *requests.CreateBlog) (string, error)
	UploadImage(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader) (string, error)
}

type BlogRepository interface {
	Insert(ctx context.Context, blog *models.Blog) (string, error)
	FindAll(ctx context.Context) ([]models.Blog, error)
	FindPage(ctx context.Context, page, pageSize int) ([]models.Blog, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, blogID string) (*models.Blog, error)
	FindByAuthorEmail(ctx context.Context, authorEmail string) ([]models.Blog, error)
}
