package routers

import (
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, middlewares *middlewares.Middlewares, providerController *controllers.ProviderController) {
	router.Get("/", providerController.FindAll)
	router.Get("/{id}", providerController.FindByID)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/", providerController.Add)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/{id}", providerController.Delete)
}
