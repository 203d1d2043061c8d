package auth

import (
	"context"
	"sync"
	"time"

	"provilink-service/internal/app/config"
	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	JWTSecret string
	ExpiresIn time.Duration
	Log       *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			JWTSecret: internalConfig.JWT.Secret,
			ExpiresIn: time.Duration(internalConfig.JWT.ExpTimeInHour) * time.Hour,
			Log:       logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) IssueToken(ctx context.Context, email string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.IssueToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)
	return utils.GenerateJWT(email, uc.JWTSecret, uc.ExpiresIn)
}
