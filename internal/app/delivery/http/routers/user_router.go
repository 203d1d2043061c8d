package routers

import (
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Post("/", userController.Register)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", userController.FindAll)
	router.With(middlewares.Authenticate).Get("/detail", userController.FindByEmail)
	router.With(middlewares.Authenticate).Get("/admin/{email}", userController.IsAdmin)
	router.With(middlewares.Authenticate).Get("/provider/{email}", userController.IsProvider)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Patch("/admin/{id}", userController.PromoteToAdmin)
}
