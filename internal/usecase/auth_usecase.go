package usecase

import (
	"context"
	"time"
)

// AuthUsecase signs admins in with the locally configured accounts.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)
}

// LoginInput defines the credentials posted to /auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the issued access token.
type LoginResult struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Email       string    `json:"email"`
}
