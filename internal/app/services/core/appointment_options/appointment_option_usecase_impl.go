package appointmentOptions

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/app/services/shared/metrics"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type appointmentOptionUsecase struct {
	AppointmentOptionRepository contracts.AppointmentOptionRepository
	BookingRepository           contracts.BookingRepository
	Metrics                     *metrics.BookingMetrics
	Log                         *zap.Logger
}

func NewAppointmentOptionUsecase(
	appointmentOptionRepository contracts.AppointmentOptionRepository,
	bookingRepository contracts.BookingRepository,
	bookingMetrics *metrics.BookingMetrics,
	logger *zap.Logger,
) contracts.AppointmentOptionUsecase {
	return &appointmentOptionUsecase{
		AppointmentOptionRepository: appointmentOptionRepository,
		BookingRepository:           bookingRepository,
		Metrics:                     bookingMetrics,
		Log:                         logger,
	}
}

func (uc *appointmentOptionUsecase) GetAvailableOptions(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentOptionUsecase.GetAvailableOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)
	start := time.Now()

	appointmentOptions, err := uc.AppointmentOptionRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentOptionUsecase.GetAvailableOptions error fetching appointment options",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var bookings []models.Booking
	if date != "" {
		bookings, err = uc.BookingRepository.FindByDate(ctx, date)
		if err != nil {
			uc.Log.Error("appointmentOptionUsecase.GetAvailableOptions error fetching bookings",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	result := ComputeAvailability(date, appointmentOptions, bookings)
	uc.Metrics.ObserveAvailabilityLatency(metrics.AvailabilityVariantFilter, time.Since(start).Seconds())
	return result, nil
}

func (uc *appointmentOptionUsecase) GetAvailableOptionsByPipeline(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentOptionUsecase.GetAvailableOptionsByPipeline called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)
	start := time.Now()

	result, err := uc.AppointmentOptionRepository.AggregateAvailability(ctx, date)
	if err != nil {
		uc.Log.Error("appointmentOptionUsecase.GetAvailableOptionsByPipeline error running aggregation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Metrics.ObserveAvailabilityLatency(metrics.AvailabilityVariantPipeline, time.Since(start).Seconds())
	return result, nil
}

func (uc *appointmentOptionUsecase) GetSpecialities(ctx context.Context) ([]models.Speciality, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentOptionUsecase.GetSpecialities called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.AppointmentOptionRepository.FindSpecialities(ctx)
}
