package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type BookingRepository interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	ExistsForRequester(ctx context.Context, date, email, treatment string) (bool, error)
	IsSlotTaken(ctx context.Context, date, treatment, slot string) (bool, error)
	// CreateBooking returns an error wrapping exceptions.ErrBookingConflict when
	// the (email, treatment, appointmentDate) unique index rejects the insert.
	CreateBooking(ctx context.Context, booking *models.Booking) (bookingID string, err error)
}

type BookingUsecase interface {
	SubmitBooking(ctx context.Context, request *requests.CreateBooking) (*responses.SubmitBooking, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
}

type BookingEventPublisher interface {
	PublishBookingCreated(ctx context.Context, event *models.BookingEvent) error
}
