package routers

import (
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBlogRoutes(router chi.Router, middlewares *middlewares.Middlewares, blogController *controllers.BlogController) {
	router.Get("/", blogController.FindAll)
	router.Get("/mine/{email}", blogController.FindMine)
	router.Get("/author/{email}", blogController.FindAuthor)
	router.Get("/{id}", blogController.FindByID)

	router.With(middlewares.Authenticate, middlewares.RequireProvider).Post("/", blogController.Create)
	router.With(middlewares.Authenticate, middlewares.RequireProvider).Post("/image", blogController.UploadImage)
}
