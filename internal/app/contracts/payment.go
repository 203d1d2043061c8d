package contracts

import (
	"context"

	"provilink-service/internal/pkg/dto/requests"
)

type PaymentUsecase interface {
	// InitiatePayment reserves the selected appointments and returns the
	// gateway redirect URL.
	InitiatePayment(ctx context.Context, request *requests.InitiatePayment) (string, error)
	// HandleSuccessCallback settles the transaction and returns the frontend
	// URL the gateway should redirect the customer to.
	HandleSuccessCallback(ctx context.Context, request *requests.PaymentCallback) (string, error)
	HandleFailureCallback(ctx context.Context) string
	HandleCancelCallback(ctx context.Context) string
}
