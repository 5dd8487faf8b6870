package service

import (
	"context"
	"time"

	"profilecard/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for admin access tokens.
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken issues an access token for an admin.
	GenerateAccessToken(identity *entity.AdminIdentity) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}

// AdminVerifier turns a bearer token into an admin identity.
// Implemented by the local JWT service and by the Firebase ID-token verifier.
type AdminVerifier interface {
	VerifyAdmin(ctx context.Context, bearerToken string) (*entity.AdminIdentity, error)
}
