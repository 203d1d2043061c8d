package routers

import (
	"fmt"
	"strings"
	"time"

	"provilink-service/internal/app/config"
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	paymentController *controllers.PaymentController,
	appointmentController *controllers.AppointmentController,
	userController *controllers.UserController,
	providerController *controllers.ProviderController,
	categoryController *controllers.CategoryController,
	blogController *controllers.BlogController,
	reviewController *controllers.ReviewController,
	contactController *controllers.ContactController,
	authController *controllers.AuthController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := internalConfig.App.EndpointPrefix
	if !strings.HasPrefix(endpointPrefix, "/") {
		endpointPrefix = fmt.Sprintf("/%s", endpointPrefix)
	}

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, middlewares, paymentController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})

		r.Route("/providers", func(r chi.Router) {
			attachProviderRoutes(r, middlewares, providerController)
		})

		r.Route("/categories", func(r chi.Router) {
			attachCategoryRoutes(r, middlewares, categoryController)
		})

		r.Route("/blogs", func(r chi.Router) {
			attachBlogRoutes(r, middlewares, blogController)
		})

		r.Route("/reviews", func(r chi.Router) {
			attachReviewRoutes(r, middlewares, reviewController)
		})

		r.Route("/contacts", func(r chi.Router) {
			attachContactRoutes(r, middlewares, contactController)
		})
	})
}
