package blogs

import (
	"context"
	"io"
	"mime/multipart"
	"sync"
	"time"

	"provilink-service/internal/app/config"
	"provilink-service/internal/app/contracts"
	"provilink-service/internal/app/models"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type blogUsecase struct {
	BlogRepository     contracts.BlogRepository
	ProviderRepository contracts.ProviderRepository
	Storage            contracts.Storage
	BucketName         string
	Log                *zap.Logger
}

var (
	blogUsecaseInstance contracts.BlogUsecase
	onceBlogUsecase     sync.Once
)

func NewBlogUsecase(
	blogRepository contracts.BlogRepository,
	providerRepository contracts.ProviderRepository,
	storage contracts.Storage,
	driverConfig *config.DriverConfig,
	logger *zap.Logger,
) contracts.BlogUsecase {
	onceBlogUsecase.Do(func() {
		blogUsecaseInstance = &blogUsecase{
			BlogRepository:     blogRepository,
			ProviderRepository: providerRepository,
			Storage:            storage,
			BucketName:         driverConfig.Minio.BucketName,
			Log:                logger,
		}
	})
	return blogUsecaseInstance
}

func (uc *blogUsecase) FindAll(ctx context.Context) ([]models.Blog, error) {
	return uc.BlogRepository.FindAll(ctx)
}

func (uc *blogUsecase) FindPage(ctx context.Context, page, pageSize int) ([]models.Blog, int, error) {
	blogs, err := uc.BlogRepository.FindPage(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.BlogRepository.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return blogs, int(total), nil
}

func (uc *blogUsecase) FindByID(ctx context.Context, blogID string) (*models.Blog, error) {
	blog, err := uc.BlogRepository.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, exceptions.BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientBlogNotFound, constvars.ErrDevDBFailedToFindDocument)
	}
	return blog, nil
}

func (uc *blogUsecase) FindByAuthorEmail(ctx context.Context, authorEmail string) ([]models.Blog, error) {
	return uc.BlogRepository.FindByAuthorEmail(ctx, authorEmail)
}

func (uc *blogUsecase) FindAuthor(ctx context.Context, authorEmail string) (*models.BlogAuthor, error) {
	author, err := uc.ProviderRepository.FindAuthorByEmail(ctx, authorEmail)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, exceptions.BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientAuthorNotFound, constvars.ErrDevDBFailedToFindDocument)
	}
	return author, nil
}

// Create stamps the post with the author's category resolved from the
// providers collection. An unknown author is a 404.
func (uc *blogUsecase) Create(ctx context.Context, request *requests.CreateBlog) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("blogUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.AuthorEmail),
	)

	author, err := uc.ProviderRepository.FindByEmail(ctx, request.AuthorEmail)
	if err != nil {
		return "", err
	}
	if author == nil {
		return "", exceptions.BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientAuthorNotFound, constvars.ErrDevDBFailedToFindDocument)
	}

	now := time.Now()
	blog := &models.Blog{
		Title:       request.Title,
		Content:     request.Content,
		AuthorEmail: request.AuthorEmail,
		Img:         request.Img,
		Category:    author.Category,
		Time:        now.Format("3:04 PM"),
		Date:        now.Format("2006-01-02"),
		TotalView:   request.TotalView,
		Rating:      request.Rating,
		TotalRating: request.TotalRating,
		CreatedAt:   now,
	}
	return uc.BlogRepository.Insert(ctx, blog)
}

func (uc *blogUsecase) UploadImage(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("blogUsecase.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, uc.BucketName),
		zap.String(constvars.LoggingObjectNameKey, fileHeader.Filename),
	)
	return uc.Storage.UploadFile(ctx, file, fileHeader, uc.BucketName)
}
