package controllers

import (
	"net/http"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/dto/responses"
	"provilink-service/internal/pkg/exceptions"
	"provilink-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	request := new(requests.IssueToken)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	token, err := ctrl.AuthUsecase.IssueToken(r.Context(), request.Email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TokenIssuedSuccess, responses.IssueToken{Token: token})
}
