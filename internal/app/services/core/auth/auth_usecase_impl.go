package auth

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"fmt"

	"go.uber.org/zap"
)

const tokenIssueWindowInSeconds = 60

type authUsecase struct {
	UserRepository  contracts.UserRepository
	TokenManager    contracts.TokenManager
	ResourceLimiter contracts.ResourceLimiter
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	tokenManager contracts.TokenManager,
	resourceLimiter contracts.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		TokenManager:    tokenManager,
		ResourceLimiter: resourceLimiter,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// IssueToken signs an access token for a registered email. Requests for the
// same email are throttled per minute.
func (uc *authUsecase) IssueToken(ctx context.Context, email string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.IssueToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	limit, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &contracts.ApplyResourceLimiterInput{
		ResourceName:      email,
		LimiterGroupName:  constvars.TokenIssueLimiterGroupName,
		WindowDurationSec: tokenIssueWindowInSeconds,
		MaxQuota:          uc.InternalConfig.App.TokenIssueLimitPerMinute,
	})
	if err != nil {
		return "", err
	}
	if !limit.Allowed {
		uc.Log.Warn("authUsecase.IssueToken limit reached",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
		)
		return "", exceptions.ErrTokenIssueLimited(fmt.Errorf("retry after %d seconds", limit.RetryAfterSecs))
	}

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", exceptions.ErrUserNotExist(nil)
	}

	return uc.TokenManager.CreateToken(ctx, user.Email)
}

func (uc *authUsecase) Authenticate(ctx context.Context, token string) (*models.AccessTokenClaims, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return uc.TokenManager.VerifyToken(ctx, token)
}

// AuthorizeAdmin reports whether email belongs to a user whose role is exactly
// "admin".
func (uc *authUsecase) AuthorizeAdmin(ctx context.Context, email string) (bool, error) {
	uc.Log.Info("authUsecase.AuthorizeAdmin called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEmailKey, email),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == constvars.RoleAdmin, nil
}
