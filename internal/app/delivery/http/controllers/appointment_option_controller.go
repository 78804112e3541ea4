package controllers

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type AppointmentOptionController struct {
	Log                      *zap.Logger
	AppointmentOptionUsecase contracts.AppointmentOptionUsecase
}

func NewAppointmentOptionController(logger *zap.Logger, appointmentOptionUsecase contracts.AppointmentOptionUsecase) *AppointmentOptionController {
	return &AppointmentOptionController{
		Log:                      logger,
		AppointmentOptionUsecase: appointmentOptionUsecase,
	}
}

func (ctrl *AppointmentOptionController) GetAvailableOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	date := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamDate))
	result, err := ctrl.AppointmentOptionUsecase.GetAvailableOptions(ctx, date)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *AppointmentOptionController) GetAvailableOptionsByPipeline(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	date := strings.TrimSpace(r.URL.Query().Get(constvars.URLQueryParamDate))
	result, err := ctrl.AppointmentOptionUsecase.GetAvailableOptionsByPipeline(ctx, date)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *AppointmentOptionController) GetSpecialities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	result, err := ctrl.AppointmentOptionUsecase.GetSpecialities(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
