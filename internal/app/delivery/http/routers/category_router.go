package routers

import (
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCategoryRoutes(router chi.Router, _ *middlewares.Middlewares, categoryController *controllers.CategoryController) {
	router.Get("/", categoryController.FindAll)
	router.Get("/detail", categoryController.FindByType)
}
