package controllers

import (
	"net/http"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ReviewController struct {
	Log           *zap.Logger
	ReviewUsecase contracts.ReviewUsecase
}

func NewReviewController(logger *zap.Logger, reviewUsecase contracts.ReviewUsecase) *ReviewController {
	return &ReviewController{
		Log:           logger,
		ReviewUsecase: reviewUsecase,
	}
}

func (ctrl *ReviewController) FindAll(w http.ResponseWriter, r *http.Request) {
	reviews, err := ctrl.ReviewUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, reviews)
}
