package controllers

import (
	"net/http"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/exceptions"
	"provilink-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ContactController struct {
	Log            *zap.Logger
	ContactUsecase contracts.ContactUsecase
}

func NewContactController(logger *zap.Logger, contactUsecase contracts.ContactUsecase) *ContactController {
	return &ContactController{
		Log:            logger,
		ContactUsecase: contactUsecase,
	}
}

func (ctrl *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateContact)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	contactID, err := ctrl.ContactUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ContactCreatedSuccess, map[string]string{"inserted_id": contactID})
}

func (ctrl *ContactController) FindAll(w http.ResponseWriter, r *http.Request) {
	contacts, err := ctrl.ContactUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, contacts)
}
