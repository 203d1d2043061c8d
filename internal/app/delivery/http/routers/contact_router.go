package routers

import (
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachContactRoutes(router chi.Router, middlewares *middlewares.Middlewares, contactController *controllers.ContactController) {
	router.With(middlewares.Authenticate).Post("/", contactController.Create)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", contactController.FindAll)
}
