package controllers

import (
	"net/http"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/exceptions"
	"provilink-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProviderController struct {
	Log             *zap.Logger
	ProviderUsecase contracts.ProviderUsecase
}

func NewProviderController(logger *zap.Logger, providerUsecase contracts.ProviderUsecase) *ProviderController {
	return &ProviderController{
		Log:             logger,
		ProviderUsecase: providerUsecase,
	}
}

func (ctrl *ProviderController) FindAll(w http.ResponseWriter, r *http.Request) {
	providers, err := ctrl.ProviderUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, providers)
}

func (ctrl *ProviderController) FindByID(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")

	provider, err := ctrl.ProviderUsecase.FindByID(r.Context(), providerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, provider)
}

func (ctrl *ProviderController) Add(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateProvider)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	insertedID, message, err := ctrl.ProviderUsecase.Add(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if insertedID == "" {
		utils.BuildSuccessResponse(w, constvars.StatusOK, message, nil)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, map[string]string{"inserted_id": insertedID})
}

func (ctrl *ProviderController) Delete(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")

	deletedCount, err := ctrl.ProviderUsecase.DeleteByID(r.Context(), providerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProviderDeletedSuccess, map[string]int64{"deleted_count": deletedCount})
}
