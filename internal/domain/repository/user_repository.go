package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores users keyed by username.
type UserRepository interface {
	Repository[entity.User, string]

	// FindByToken retrieves the user currently holding the exact token.
	FindByToken(ctx context.Context, token string) (*entity.User, error)
}
