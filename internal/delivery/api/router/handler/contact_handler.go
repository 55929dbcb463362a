package handler

import (
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler serves the contact endpoints.
type ContactHandler struct {
	uc usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	input := new(usecase.CreateContactInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), user, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output)
}

// Get handles GET /api/contacts/:contactId.
func (h *ContactHandler) Get(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Get(c.Request().Context(), user, c.Param("contactId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output)
}

// Update handles PUT /api/contacts/:contactId.
func (h *ContactHandler) Update(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	input := new(usecase.UpdateContactInput)
	if err := bindBody(c, input); err != nil {
		return err
	}

	output, err := h.uc.Update(c.Request().Context(), user, c.Param("contactId"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, output)
}

// Delete handles DELETE /api/contacts/:contactId.
func (h *ContactHandler) Delete(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), user, c.Param("contactId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, response.OK)
}

// Search handles GET /api/contacts with name, email, phone, page and size query parameters.
func (h *ContactHandler) Search(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	input := &usecase.SearchContactInput{
		Name:  c.QueryParam("name"),
		Email: c.QueryParam("email"),
		Phone: c.QueryParam("phone"),
	}
	if input.Page, err = optionalIntQuery(c, "page"); err != nil {
		return err
	}
	if input.Size, err = optionalIntQuery(c, "size"); err != nil {
		return err
	}

	page, err := h.uc.Search(c.Request().Context(), user, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithPaging(c, page.Items, page.Paging)
}

// QRCode handles GET /api/contacts/:contactId/qrcode.
func (h *ContactHandler) QRCode(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	image, err := h.uc.QRCode(c.Request().Context(), user, c.Param("contactId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, image)
}
