package controllers

import (
	"context"
	"net/http"
	"time"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/exceptions"
	"provilink-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
	}
}

// InitiatePayment answers with the bare gateway URL so the frontend can
// redirect the customer straight to the hosted checkout page.
func (ctrl *PaymentController) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.InitiatePayment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse payment initiation request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	gatewayURL, err := ctrl.PaymentUsecase.InitiatePayment(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to initiate payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "usecase error"),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildPlainTextResponse(w, constvars.StatusOK, gatewayURL)
}

func (ctrl *PaymentController) SuccessCallback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := r.ParseForm(); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidPayment(err))
		return
	}

	request := &requests.PaymentCallback{
		Status:        r.PostFormValue("status"),
		TransactionID: r.PostFormValue("tran_id"),
		Amount:        r.PostFormValue("amount"),
		Currency:      r.PostFormValue("currency"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	redirectURL, err := ctrl.PaymentUsecase.HandleSuccessCallback(ctx, request)
	if err != nil {
		ctrl.Log.Error("Failed to process success callback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRedirectResponse(w, redirectURL)
}

func (ctrl *PaymentController) FailCallback(w http.ResponseWriter, r *http.Request) {
	utils.BuildRedirectResponse(w, ctrl.PaymentUsecase.HandleFailureCallback(r.Context()))
}

func (ctrl *PaymentController) CancelCallback(w http.ResponseWriter, r *http.Request) {
	utils.BuildRedirectResponse(w, ctrl.PaymentUsecase.HandleCancelCallback(r.Context()))
}
