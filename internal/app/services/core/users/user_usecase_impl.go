package users

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	uc.Log.Info("userUsecase.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return uc.UserRepository.FindAll(ctx)
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.CreateUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	userID, inserted, err := uc.UserRepository.UpsertByEmail(ctx, &models.User{
		Email: request.Email,
		Name:  request.Name,
	})
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error upserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !inserted {
		return &responses.CreateUser{
			Acknowledged: true,
			Message:      constvars.UserAlreadyExistsMessage,
		}, nil
	}
	return &responses.CreateUser{
		Acknowledged: true,
		InsertedID:   userID,
	}, nil
}

// IsAdmin reports whether the stored role is exactly "admin". Unknown users
// are not admins.
func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	uc.Log.Info("userUsecase.IsAdmin called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEmailKey, email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == constvars.RoleAdmin, nil
}

func (uc *userUsecase) MakeAdmin(ctx context.Context, userID string) (*responses.UpdateResult, error) {
	uc.Log.Info("userUsecase.MakeAdmin called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingIDKey, userID),
	)
	return uc.UserRepository.SetRoleByID(ctx, userID, constvars.RoleAdmin)
}
