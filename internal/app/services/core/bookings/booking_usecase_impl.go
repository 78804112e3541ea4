package bookings

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/app/services/shared/metrics"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultLockRetryInterval = 100 * time.Millisecond

type bookingUsecase struct {
	BookingRepository           contracts.BookingRepository
	AppointmentOptionRepository contracts.AppointmentOptionRepository
	LockerService               contracts.LockerService
	EventPublisher              contracts.BookingEventPublisher
	Metrics                     *metrics.BookingMetrics
	InternalConfig              *config.InternalConfig
	Log                         *zap.Logger
	lockRetryInterval           time.Duration
	now                         func() time.Time
}

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	appointmentOptionRepository contracts.AppointmentOptionRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.BookingEventPublisher,
	bookingMetrics *metrics.BookingMetrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository:           bookingRepository,
		AppointmentOptionRepository: appointmentOptionRepository,
		LockerService:               lockerService,
		EventPublisher:              eventPublisher,
		Metrics:                     bookingMetrics,
		InternalConfig:              internalConfig,
		Log:                         logger,
		lockRetryInterval:           defaultLockRetryInterval,
		now:                         time.Now,
	}
}

func (uc *bookingUsecase) SubmitBooking(ctx context.Context, request *requests.CreateBooking) (*responses.SubmitBooking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.SubmitBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
		zap.String(constvars.LoggingTreatmentKey, request.Treatment),
		zap.String(constvars.LoggingDateKey, request.AppointmentDate),
		zap.String(constvars.LoggingSlotKey, request.Slot),
	)

	option, err := uc.AppointmentOptionRepository.FindByName(ctx, request.Treatment)
	if err != nil {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeError)
		return nil, err
	}
	if option == nil {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeInvalid)
		return nil, exceptions.ErrBookingUnknownTreatment(nil, request.Treatment)
	}
	if !slices.Contains(option.Slots, request.Slot) {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeInvalid)
		return nil, exceptions.ErrBookingUnknownSlot(nil, request.Slot, request.Treatment)
	}

	alreadyBooked, err := uc.BookingRepository.ExistsForRequester(ctx, request.AppointmentDate, request.Email, request.Treatment)
	if err != nil {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeError)
		return nil, err
	}
	if alreadyBooked {
		return uc.rejectDuplicate(ctx, request), nil
	}

	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, request.Treatment, request.AppointmentDate)
	lockValue, err := uc.acquireLock(ctx, lockKey)
	if err != nil {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeLockBusy)
		return nil, err
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("bookingUsecase.SubmitBooking error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	slotTaken, err := uc.BookingRepository.IsSlotTaken(ctx, request.AppointmentDate, request.Treatment, request.Slot)
	if err != nil {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeError)
		return nil, err
	}
	if slotTaken {
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeSlotUnavailable)
		return &responses.SubmitBooking{
			Acknowledged: false,
			Message:      fmt.Sprintf(constvars.BookingSlotUnavailableMessageFormat, request.Slot, request.AppointmentDate),
		}, nil
	}

	booking := buildBooking(request, uc.now().UTC())
	bookingID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		if errors.Is(err, exceptions.ErrBookingConflict) {
			return uc.rejectDuplicate(ctx, request), nil
		}
		uc.Log.Error("bookingUsecase.SubmitBooking error creating booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.Metrics.ObserveBooking(metrics.BookingOutcomeError)
		return nil, err
	}

	uc.Metrics.ObserveBooking(metrics.BookingOutcomeCreated)
	uc.publishBookingCreated(ctx, bookingID, booking)

	return &responses.SubmitBooking{
		Acknowledged: true,
		InsertedID:   bookingID,
	}, nil
}

func (uc *bookingUsecase) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.GetBookingsByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	return uc.BookingRepository.FindByEmail(ctx, email)
}

func (uc *bookingUsecase) rejectDuplicate(ctx context.Context, request *requests.CreateBooking) *responses.SubmitBooking {
	uc.Log.Info("bookingUsecase.SubmitBooking duplicate booking rejected",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)
	uc.Metrics.ObserveBooking(metrics.BookingOutcomeDuplicate)
	return &responses.SubmitBooking{
		Acknowledged: false,
		Message:      fmt.Sprintf(constvars.BookingAlreadyExistsMessageFormat, request.AppointmentDate),
	}
}

// acquireLock retries TryLock a bounded number of times before giving up with
// ErrBookingLockBusy.
func (uc *bookingUsecase) acquireLock(ctx context.Context, key string) (string, error) {
	attempts := uc.InternalConfig.App.BookingLockMaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	ttl := time.Duration(uc.InternalConfig.App.BookingLockTTLInSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Second
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, ttl)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(uc.lockRetryInterval):
		}
	}
	return "", exceptions.ErrBookingLockBusy(nil)
}

func (uc *bookingUsecase) publishBookingCreated(ctx context.Context, bookingID string, booking *models.Booking) {
	if uc.EventPublisher == nil {
		return
	}

	event := &models.BookingEvent{
		Type:            constvars.RabbitMQEventBookingCreate,
		BookingID:       bookingID,
		AppointmentDate: booking.AppointmentDate,
		Treatment:       booking.Treatment,
		Slot:            booking.Slot,
		Email:           booking.Email,
		Patient:         booking.Patient,
		OccurredAt:      createdAtOrZero(booking.CreatedAt),
	}
	err := uc.EventPublisher.PublishBookingCreated(ctx, event)
	uc.Metrics.ObserveEventPublish(err == nil)
	if err != nil {
		uc.Log.Warn("bookingUsecase.SubmitBooking error publishing booking event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func buildBooking(request *requests.CreateBooking, createdAt time.Time) *models.Booking {
	booking := &models.Booking{
		AppointmentDate: request.AppointmentDate,
		Treatment:       request.Treatment,
		Slot:            request.Slot,
		Email:           request.Email,
		Patient:         request.Patient,
		Phone:           request.Phone,
		CreatedAt:       &createdAt,
	}

	for key, value := range request.Extra {
		if models.BookingKnownFields[key] || key == "" || strings.HasPrefix(key, "$") {
			continue
		}
		if booking.Extra == nil {
			booking.Extra = make(map[string]interface{}, len(request.Extra))
		}
		booking.Extra[key] = value
	}
	return booking
}

func createdAtOrZero(createdAt *time.Time) time.Time {
	if createdAt == nil {
		return time.Time{}
	}
	return *createdAt
}
