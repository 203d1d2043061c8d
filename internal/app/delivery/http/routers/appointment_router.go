package routers

import (
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", appointmentController.Create)
	router.Get("/", appointmentController.FindMine)
	router.With(middlewares.RequireAdmin).Get("/all", appointmentController.FindAll)
	router.With(middlewares.RequireProvider).Get("/assigned/{email}", appointmentController.FindByProvider)
	router.Get("/{id}", appointmentController.FindByID)
	router.Delete("/{id}", appointmentController.Delete)
	router.With(middlewares.RequireAdmin).Patch("/assignment", appointmentController.Assign)
	router.With(middlewares.RequireProvider).Patch("/progress", appointmentController.Progress)
	router.With(middlewares.RequireProvider).Post("/{id}/complete", appointmentController.Complete)
}
