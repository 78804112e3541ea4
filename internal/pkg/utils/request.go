package utils

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"strings"
)

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>"
// header, or "" when the header is absent or uses another scheme.
func ExtractBearerToken(authHeader string) string {
	authHeader = strings.TrimSpace(authHeader)
	if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
}

// GetTokenClaims returns the claims stored by the authentication middleware,
// or nil on public routes.
func GetTokenClaims(ctx context.Context) *models.AccessTokenClaims {
	claims, _ := ctx.Value(constvars.CONTEXT_TOKEN_CLAIMS_KEY).(*models.AccessTokenClaims)
	return claims
}
