package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	if middlewares.InternalConfig.App.ProtectUserList {
		router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/", userController.ListUsers)
	} else {
		router.Get("/", userController.ListUsers)
	}
	router.Post("/", userController.CreateUser)
	router.Get("/admin/{email}", userController.IsAdmin)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/admin/{id}", userController.MakeAdmin)
}
