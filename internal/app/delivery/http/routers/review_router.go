package routers

import (
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReviewRoutes(router chi.Router, _ *middlewares.Middlewares, reviewController *controllers.ReviewController) {
	router.Get("/", reviewController.FindAll)
}
