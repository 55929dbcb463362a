// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OK is the payload of calls that have nothing else to return.
const OK = "ok"

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data   any                   `json:"data"`
	Paging *usecase.PagingOutput `json:"paging,omitempty"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Errors string `json:"errors"`
}

// Success returns a 200 response wrapping data.
func Success(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data})
}

// SuccessWithPaging returns a 200 response carrying one page of results.
func SuccessWithPaging(c echo.Context, data any, paging usecase.PagingOutput) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: data, Paging: &paging})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Errors: message})
}

// PNG writes raw image bytes.
func PNG(c echo.Context, image []byte) error {
	return c.Blob(http.StatusOK, "image/png", image)
}
