package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
)

type AppointmentOptionRepository interface {
	FindAll(ctx context.Context) ([]models.AppointmentOption, error)
	FindByName(ctx context.Context, name string) (*models.AppointmentOption, error)
	FindSpecialities(ctx context.Context) ([]models.Speciality, error)
	AggregateAvailability(ctx context.Context, date string) ([]models.AppointmentOption, error)
}

// AppointmentOptionUsecase computes the slots still open per treatment for a
// date. Both Get methods honour the same contract; the pipeline variant may
// return the remaining slots of an option in a different order.
type AppointmentOptionUsecase interface {
	GetAvailableOptions(ctx context.Context, date string) ([]models.AppointmentOption, error)
	GetAvailableOptionsByPipeline(ctx context.Context, date string) ([]models.AppointmentOption, error)
	GetSpecialities(ctx context.Context) ([]models.Speciality, error)
}
