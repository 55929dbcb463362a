package middleware

import (
	"log/slog"

	deliverycontext "contacts/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client supplied IDs so they cannot bloat every log line.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns each request an ID and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a client supplied X-Request-Id when it is sane, otherwise generates one.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Prefer the ID a proxy or client already assigned
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)

		// Missing or oversized IDs are replaced rather than rejected
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		// Keep it on echo.Context for the access log and error handler
		deliverycontext.SetRequestID(c, requestID)

		// Echo it back so clients can quote it in bug reports
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		// Usecases and repositories only see context.Context, so the ID and
		// the tagged logger travel there as well
		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
