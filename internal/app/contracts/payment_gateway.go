package contracts

import (
	"context"

	"provilink-service/internal/pkg/dto/requests"
)

type PaymentGatewayService interface {
	// InitiateTransaction registers the transaction with the gateway and
	// returns the hosted checkout page URL.
	InitiateTransaction(ctx context.Context, request *requests.InitiatePayment, transactionID string) (string, error)
}
