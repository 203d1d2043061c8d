package controllers

import (
	"net/http"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type CategoryController struct {
	Log             *zap.Logger
	CategoryUsecase contracts.CategoryUsecase
}

func NewCategoryController(logger *zap.Logger, categoryUsecase contracts.CategoryUsecase) *CategoryController {
	return &CategoryController{
		Log:             logger,
		CategoryUsecase: categoryUsecase,
	}
}

func (ctrl *CategoryController) FindAll(w http.ResponseWriter, r *http.Request) {
	categories, err := ctrl.CategoryUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, categories)
}

func (ctrl *CategoryController) FindByType(w http.ResponseWriter, r *http.Request) {
	serviceProviderType := r.URL.Query().Get("category")

	category, err := ctrl.CategoryUsecase.FindByType(r.Context(), serviceProviderType)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, category)
}
