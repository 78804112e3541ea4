package doctors

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

const doctorImageFolder = "doctors"

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	MinioStorage     contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		MinioStorage:     minioStorage,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	doctor := &models.Doctor{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
		CreatedAt: time.Now().UTC(),
	}

	if request.Image != "" {
		objectName, err := uc.uploadDoctorImage(ctx, request)
		if err != nil {
			return nil, err
		}
		doctor.Image = objectName
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.InsertResult{
		Acknowledged: true,
		InsertedID:   doctorID,
	}, nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) (*responses.DeleteResult, error) {
	uc.Log.Info("doctorUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingIDKey, doctorID),
	)

	deletedCount, err := uc.DoctorRepository.DeleteByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if deletedCount == 0 {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	return &responses.DeleteResult{
		Acknowledged: true,
		DeletedCount: deletedCount,
	}, nil
}

func (uc *doctorUsecase) uploadDoctorImage(ctx context.Context, request *requests.CreateDoctor) (string, error) {
	data, extension, err := utils.DecodeBase64Image(request.Image)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageFormat(extension, constvars.ImageAllowedDoctorPictureFormats); err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(data, uc.InternalConfig.App.DoctorImageMaxUploadSizeInMB); err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	objectName := utils.GenerateObjectName(doctorImageFolder, extension)
	uc.Log.Info("doctorUsecase.CreateDoctor uploading doctor image",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingBucketKey, uc.InternalConfig.Minio.BucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return uc.MinioStorage.UploadBase64Image(ctx, data, uc.InternalConfig.Minio.BucketName, objectName, extension)
}
