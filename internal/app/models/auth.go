package models

import "time"

type AccessTokenClaims struct {
	Email     string
	ExpiresAt time.Time
}
