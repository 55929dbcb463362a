// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"contacts/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
// Passwords stop at 72 characters, the most bcrypt will hash.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name" validate:"required,max=100"`
}

// UpdateUserInput carries the profile fields to change. Nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Password *string `json:"password" validate:"omitempty,max=72"`
}

// --- Output DTOs ---

// UserOutput is the public view of a user. It never includes the password or token.
type UserOutput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// UserUsecase defines registration and profile management of the calling user.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) error
	GetCurrent(ctx context.Context, user *entity.User) (*UserOutput, error)
	UpdateCurrent(ctx context.Context, user *entity.User, input *UpdateUserInput) (*UserOutput, error)
}

// ToUserOutput maps a user entity to its public view.
func ToUserOutput(user *entity.User) *UserOutput {
	return &UserOutput{
		Username: user.Username,
		Name:     user.Name,
	}
}
