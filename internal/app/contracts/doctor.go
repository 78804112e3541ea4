package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	DeleteByID(ctx context.Context, doctorID string) (deletedCount int64, err error)
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertResult, error)
	DeleteDoctor(ctx context.Context, doctorID string) (*responses.DeleteResult, error)
}
