package main

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/delivery/http/routers"
	"doctors-portal-service/internal/app/drivers/database"
	"doctors-portal-service/internal/app/drivers/logger"
	"doctors-portal-service/internal/app/drivers/messaging"
	"doctors-portal-service/internal/app/drivers/storage"
	appointmentOptions "doctors-portal-service/internal/app/services/core/appointment_options"
	"doctors-portal-service/internal/app/services/core/auth"
	"doctors-portal-service/internal/app/services/core/bookings"
	"doctors-portal-service/internal/app/services/core/doctors"
	"doctors-portal-service/internal/app/services/core/users"
	"doctors-portal-service/internal/app/services/shared/eventqueue"
	"doctors-portal-service/internal/app/services/shared/jwtmanager"
	"doctors-portal-service/internal/app/services/shared/locker"
	"doctors-portal-service/internal/app/services/shared/metrics"
	"doctors-portal-service/internal/app/services/shared/ratelimiter"
	redisRepo "doctors-portal-service/internal/app/services/shared/redis"
	minioStorage "doctors-portal-service/internal/app/services/shared/storage"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redis := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minio := storage.NewMinio(driverConfig, internalConfig.Minio.BucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redis,
		RabbitMQ:       rabbitMQ,
		Minio:          minio,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	closeQueue, err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %s", err.Error())
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %s", err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	closeQueue()

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release resources: %s", err.Error())
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) (func(), error) {
	mongoDatabase := bootstrap.MongoDB.Database(bootstrap.InternalConfig.MongoDB.DbName)
	err := database.EnsureIndexes(context.Background(), mongoDatabase, bootstrap.Logger)
	if err != nil {
		return nil, err
	}

	// Shared
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio)
	bookingMetrics := metrics.NewBookingMetrics(nil)
	tokenManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		return nil, err
	}

	// A broken channel only disables booking events; bookings still work.
	var eventPublisher contracts.BookingEventPublisher
	closeQueue := func() {}
	bookingQueue, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.BookingQueue, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Warn("Booking events disabled", zap.Error(err))
	} else {
		eventPublisher = bookingQueue
		closeQueue = func() {
			if err := bookingQueue.Close(); err != nil {
				bootstrap.Logger.Warn("Failed to close booking queue channel", zap.Error(err))
			}
		}
	}

	// Repositories
	dbName := bootstrap.InternalConfig.MongoDB.DbName
	appointmentOptionRepository := appointmentOptions.NewAppointmentOptionMongoRepository(bootstrap.MongoDB, dbName)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	appointmentOptionUsecase := appointmentOptions.NewAppointmentOptionUsecase(appointmentOptionRepository, bookingRepository, bookingMetrics, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		appointmentOptionRepository,
		lockerService,
		eventPublisher,
		bookingMetrics,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	userUsecase := users.NewUserUsecase(userRepository, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, storageService, bootstrap.InternalConfig, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(userRepository, tokenManager, resourceLimiter, bootstrap.InternalConfig, bootstrap.Logger)

	// Controllers
	appointmentOptionController := controllers.NewAppointmentOptionController(bootstrap.Logger, appointmentOptionUsecase)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		appointmentOptionController,
		bookingController,
		authController,
		userController,
		doctorController,
	)

	return closeQueue, nil
}
