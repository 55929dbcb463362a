// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "contacts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindBody decodes the request body into input.
func bindBody(c echo.Context, input any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed request body"), err.Error())
	}

	return nil
}

// optionalIntQuery returns nil when the parameter is absent.
func optionalIntQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer"))
	}

	return &value, nil
}
