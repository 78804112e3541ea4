package routers

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentOptionController *controllers.AppointmentOptionController,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	doctorController *controllers.DoctorController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimiter())
	router.Use(middlewares.BodyLimit)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildTextResponse(w, constvars.StatusOK, constvars.AppLivenessMessage)
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	attachAppointmentOptionRoutes(router, middlewares, appointmentOptionController)
	attachBookingRoutes(router, middlewares, bookingController)
	attachAuthRoutes(router, middlewares, authController)

	router.Route("/users", func(r chi.Router) {
		attachUserRoutes(r, middlewares, userController)
	})

	router.Route("/doctors", func(r chi.Router) {
		attachDoctorRoutes(r, middlewares, doctorController)
	})
}
