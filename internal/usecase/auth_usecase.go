package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// TokenOutput is the session token handed out at login.
type TokenOutput struct {
	Token     string `json:"token"`
	ExpiredAt int64  `json:"expiredAt"`
}

// AuthUsecase resolves and manages session tokens.
type AuthUsecase interface {
	// Login checks the credentials and issues a fresh token, replacing any previous one.
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)

	// Logout clears the caller's token and expiry.
	Logout(ctx context.Context, user *entity.User) error

	// Authenticate resolves the user holding a non-expired token.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
