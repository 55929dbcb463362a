package middleware

import (
	"log/slog"
	"net/http"

	"contacts/internal/delivery/api/response"
	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPCode()
		if status >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
			_ = response.Error(c, status, internalErrorMessage)

			return
		}

		message := appErr.Message()
		if details := appErr.Details(); details != "" {
			message += ": " + details
		}
		_ = response.Error(c, status, message)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, message)

		return
	}

	m.logUnhandled(c, err)

	// Internals stay in the log.
	_ = response.Error(c, http.StatusInternalServerError, internalErrorMessage)
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
