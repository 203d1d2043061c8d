package controllers

import (
	"net/http"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/dto/responses"
	"provilink-service/internal/pkg/exceptions"
	"provilink-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
	}
}

func (ctrl *UserController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateUser)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.UserUsecase.Register(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if result.InsertedID == "" {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserAlreadyExists, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UserCreatedSuccess, result)
}

func (ctrl *UserController) FindAll(w http.ResponseWriter, r *http.Request) {
	users, err := ctrl.UserUsecase.FindAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, users)
}

func (ctrl *UserController) FindByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	user, err := ctrl.UserUsecase.FindByEmail(r.Context(), email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, user)
}

// IsAdmin only answers for the authenticated user's own email.
func (ctrl *UserController) IsAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	authenticatedEmail, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	if email != authenticatedEmail {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotMatchRoleType(nil))
		return
	}

	admin, err := ctrl.UserUsecase.IsAdmin(r.Context(), email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, responses.AdminFlag{Admin: admin})
}

// IsProvider only answers for the authenticated user's own email.
func (ctrl *UserController) IsProvider(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	authenticatedEmail, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	if email != authenticatedEmail {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotMatchRoleType(nil))
		return
	}

	provider, err := ctrl.UserUsecase.IsProvider(r.Context(), email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, responses.ProviderFlag{Provider: provider})
}

func (ctrl *UserController) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := ctrl.UserUsecase.PromoteToAdmin(r.Context(), userID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserPromotedToAdmin, nil)
}
