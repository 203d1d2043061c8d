package routers

import (
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.With(middlewares.Authenticate).Post("/", paymentController.InitiatePayment)

	// Gateway callbacks are form posts from the payment provider, never
	// authenticated.
	router.Post("/success", paymentController.SuccessCallback)
	router.Post("/fail", paymentController.FailCallback)
	router.Post("/cancel", paymentController.CancelCallback)
}
