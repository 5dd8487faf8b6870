// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"profilecard/config"
	"profilecard/internal/domain/constants"
	"profilecard/internal/domain/entity"
	domainerrors "profilecard/internal/domain/errors"
	"profilecard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

// Verifier failures carry their HTTP meaning so the API can render them directly.
var (
	ErrInvalidToken = domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
	ErrNotAdmin     = domainerrors.ErrForbidden.WithDetails("token does not grant admin access")
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	now          func() time.Time
}

// JWTService is both the token issuer for /auth/login and the admin verifier for the jwt provider.
type JWTService interface {
	service.TokenService
	service.AdminVerifier
}

// NewJWTService is the constructor for jwtService. secretKey.access is required unless
// auth.provider is firebase, where an unset secret becomes a random per-process key.
func NewJWTService(cfg *config.Config) (JWTService, error) {
	secret := cfg.SecretKey.Access
	if secret == "" {
		if cfg.Auth == nil || cfg.Auth.Provider != constants.AuthProviderFirebase {
			return nil, errors.New("jwt access secret must be provided")
		}

		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, errors.Wrap(err, "failed to generate jwt access secret")
		}
		secret = hex.EncodeToString(key)
	}

	ttl := time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTTL > 0 {
		ttl = cfg.Auth.AccessTTL
	}

	return &jwtService{
		accessSecret: secret,
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken signs an access token carrying the admin's email and roles.
func (s *jwtService) GenerateAccessToken(identity *entity.AdminIdentity) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := &service.Claims{
		Email: identity.Email,
		Roles: identity.Roles.ToStrings(),
		Type:  accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// ValidateToken checks the signature and expiry of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// VerifyAdmin accepts only access tokens that carry the admin role.
func (s *jwtService) VerifyAdmin(_ context.Context, bearerToken string) (*entity.AdminIdentity, error) {
	claims, err := s.ValidateToken(bearerToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != accessTokenType {
		return nil, ErrInvalidToken
	}

	roles := entity.RolesFromStrings(claims.Roles)
	if !roles.Contains(entity.RoleAdmin) {
		return nil, ErrNotAdmin
	}

	return &entity.AdminIdentity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Roles:   roles,
	}, nil
}
