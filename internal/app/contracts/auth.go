package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
)

type AuthUsecase interface {
	IssueToken(ctx context.Context, email string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.AccessTokenClaims, error)
	AuthorizeAdmin(ctx context.Context, email string) (bool, error)
}

type TokenManager interface {
	CreateToken(ctx context.Context, email string) (string, error)
	VerifyToken(ctx context.Context, token string) (*models.AccessTokenClaims, error)
}
