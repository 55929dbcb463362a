package handler

import (
	"log/slog"

	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterUserInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, response.OK)
}

// GetCurrent returns the caller's profile.
func (h *UserHandler) GetCurrent(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetCurrent(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output)
}

// UpdateCurrent applies a partial update to the caller's profile.
func (h *UserHandler) UpdateCurrent(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateUserInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	output, err := h.uc.UpdateCurrent(c.Request().Context(), user, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output)
}
