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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	appointmentID, err := ctrl.AppointmentUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, map[string]string{"inserted_id": appointmentID})
}

func (ctrl *AppointmentController) FindMine(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		email, _ = r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	}

	appointments, err := ctrl.AppointmentUsecase.FindByEmail(r.Context(), email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointments)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	appointments, err := ctrl.AppointmentUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointments)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "id")

	appointment, err := ctrl.AppointmentUsecase.FindByID(r.Context(), appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointment)
}

func (ctrl *AppointmentController) FindByProvider(w http.ResponseWriter, r *http.Request) {
	providerEmail := chi.URLParam(r, "email")

	appointments, err := ctrl.AppointmentUsecase.FindByProviderEmail(r.Context(), providerEmail)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointments)
}

func (ctrl *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "id")

	deletedCount, err := ctrl.AppointmentUsecase.DeleteByID(r.Context(), appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentDeletedSuccess, map[string]int64{"deleted_count": deletedCount})
}

func (ctrl *AppointmentController) Assign(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AssignAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := ctrl.AppointmentUsecase.Assign(r.Context(), request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, nil)
}

func (ctrl *AppointmentController) Progress(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ProgressAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := ctrl.AppointmentUsecase.Progress(r.Context(), request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, nil)
}

func (ctrl *AppointmentController) Complete(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "id")

	result, err := ctrl.AppointmentUsecase.Complete(r.Context(), appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.AppointmentCompletedSuccess
	if result.DeletedCount == 0 {
		message = constvars.AppointmentPartialComplete
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}
