package handler

import (
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler serves the address endpoints nested under a contact.
type AddressHandler struct {
	uc usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

func (h *AddressHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	input := new(usecase.AddressInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), user, c.Param("contactId"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output)
}

func (h *AddressHandler) Get(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), user, c.Param("contactId"), c.Param("addressId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output)
}

func (h *AddressHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	input := new(usecase.AddressInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), user, c.Param("contactId"), c.Param("addressId"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output)
}

func (h *AddressHandler) Delete(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), user, c.Param("contactId"), c.Param("addressId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, response.OK)
}

func (h *AddressHandler) List(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), user, c.Param("contactId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output)
}
