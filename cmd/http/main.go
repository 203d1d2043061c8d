package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"provilink-service/internal/app/config"
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"
	"provilink-service/internal/app/delivery/http/routers"
	"provilink-service/internal/app/drivers/database"
	"provilink-service/internal/app/drivers/logger"
	driverMailer "provilink-service/internal/app/drivers/mailer"
	"provilink-service/internal/app/drivers/messaging"
	driverStorage "provilink-service/internal/app/drivers/storage"
	"provilink-service/internal/app/services/core/appointments"
	"provilink-service/internal/app/services/core/auth"
	"provilink-service/internal/app/services/core/blogs"
	"provilink-service/internal/app/services/core/categories"
	"provilink-service/internal/app/services/core/contacts"
	"provilink-service/internal/app/services/core/payments"
	"provilink-service/internal/app/services/core/providers"
	"provilink-service/internal/app/services/core/reviews"
	"provilink-service/internal/app/services/core/users"
	"provilink-service/internal/app/services/shared/locker"
	"provilink-service/internal/app/services/shared/mailer"
	"provilink-service/internal/app/services/shared/payment_gateway"
	"provilink-service/internal/app/services/shared/redis"
	"provilink-service/internal/app/services/shared/smtp"
	"provilink-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(&bootstrap, bootLog); err != nil {
		bootLog.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Failed to close app resources: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, bootLog *logrus.Logger) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	smtpClient := driverMailer.NewSMTPClient(bootstrap.DriverConfig)
	smtpService := smtp.NewSmtpService(smtpClient)

	dispatcher, err := mailer.NewNotificationDispatcher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		return err
	}

	mailWorker, err := mailer.NewMailWorker(bootstrap.RabbitMQ, smtpService, bootstrap.InternalConfig.App.RabbitMQMailerQueue, bootstrap.Logger)
	if err != nil {
		return err
	}
	if err := mailWorker.Start(context.Background()); err != nil {
		return err
	}
	bootLog.Println("Mail worker started")

	minioClient := driverStorage.NewMinio(bootstrap.DriverConfig)
	minioStorage := storage.NewMinioStorage(minioClient)

	paymentGateway, err := payment_gateway.NewSSLCommerzService(bootstrap.InternalConfig)
	if err != nil {
		return err
	}

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	appointmentHistoryMongoRepository := appointments.NewAppointmentHistoryMongoRepository(bootstrap.MongoDB, dbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, appointmentHistoryMongoRepository, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Payment
	paymentUsecase := payments.NewPaymentUsecase(
		appointmentMongoRepository,
		paymentGateway,
		lockerService,
		dispatcher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, paymentUsecase)

	reconciler := payments.NewReconciler(
		appointmentMongoRepository,
		time.Duration(bootstrap.InternalConfig.PaymentGateway.PendingTTLInMinutes)*time.Minute,
		time.Duration(bootstrap.InternalConfig.PaymentGateway.ReconcileIntervalInMinutes)*time.Minute,
		bootstrap.Logger,
	)
	reconciler.Start(context.Background())
	bootLog.Println("Payment reconciler started")

	bootstrap.WorkerStop = func() {
		reconciler.Stop()
		mailWorker.Stop()
	}

	// Provider
	providerMongoRepository := providers.NewProviderMongoRepository(bootstrap.MongoDB, dbName)
	providerUsecase := providers.NewProviderUsecase(providerMongoRepository, userMongoRepository, bootstrap.Logger)
	providerController := controllers.NewProviderController(bootstrap.Logger, providerUsecase)

	// Category
	categoryMongoRepository := categories.NewCategoryMongoRepository(bootstrap.MongoDB, dbName)
	categoryUsecase := categories.NewCategoryUsecase(categoryMongoRepository, bootstrap.Logger)
	categoryController := controllers.NewCategoryController(bootstrap.Logger, categoryUsecase)

	// Blog
	blogMongoRepository := blogs.NewBlogMongoRepository(bootstrap.MongoDB, dbName)
	blogUsecase := blogs.NewBlogUsecase(blogMongoRepository, providerMongoRepository, minioStorage, bootstrap.DriverConfig, bootstrap.Logger)
	blogController := controllers.NewBlogController(bootstrap.Logger, blogUsecase)

	// Review
	reviewMongoRepository := reviews.NewReviewMongoRepository(bootstrap.MongoDB, dbName)
	reviewUsecase := reviews.NewReviewUsecase(reviewMongoRepository, bootstrap.Logger)
	reviewController := controllers.NewReviewController(bootstrap.Logger, reviewUsecase)

	// Contact
	contactMongoRepository := contacts.NewContactMongoRepository(bootstrap.MongoDB, dbName)
	contactUsecase := contacts.NewContactUsecase(contactMongoRepository, bootstrap.Logger)
	contactController := controllers.NewContactController(bootstrap.Logger, contactUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, userUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		paymentController,
		appointmentController,
		userController,
		providerController,
		categoryController,
		blogController,
		reviewController,
		contactController,
		authController,
	)

	return nil
}
