package controllers

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"doctors-portal-service/internal/pkg/utils"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

// IssueToken answers unknown emails with 403 and an empty accessToken, the
// shape the portal checks for.
func (ctrl *AuthController) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := utils.SanitizeEmail(r.URL.Query().Get(constvars.URLQueryParamEmail))

	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	token, err := ctrl.AuthUsecase.IssueToken(ctx, email)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusForbidden {
			ctrl.Log.Info("AuthController.IssueToken refused",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingEmailKey, email),
			)
			utils.BuildJSONResponse(w, constvars.StatusForbidden, responses.AccessToken{AccessToken: ""})
			return
		}
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.AccessToken{AccessToken: token})
}
