package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentOptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentOptionController *controllers.AppointmentOptionController) {
	router.Get("/appointmentOptions", appointmentOptionController.GetAvailableOptions)
	router.Get("/v2/appointmentOptions", appointmentOptionController.GetAvailableOptionsByPipeline)
	router.Get("/appointmentSpeciality", appointmentOptionController.GetSpecialities)
}
