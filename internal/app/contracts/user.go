package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertByEmail(ctx context.Context, user *models.User) (userID string, inserted bool, err error)
	SetRoleByID(ctx context.Context, userID, role string) (*responses.UpdateResult, error)
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.CreateUser, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, userID string) (*responses.UpdateResult, error)
}
