package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Without debug only
// server errors are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// Execute next handler
		err := next(c)
		if err != nil {
			// Render now so the logged status is the one the client sees.
			// Returning nil afterwards stops echo from rendering it twice.
			c.Error(err)
		}

		// Server errors are always logged; everything else only in debug
		status := c.Response().Status
		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, start, status, err)
		}

		return nil
	}
}

// logRequest emits the access log line at a level derived from status.
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	// Only set once the auth middleware has accepted a token
	if username := deliverycontext.GetUsername(c); username != "" {
		fields = append(fields, slog.String("username", username))
	}
	// Search filters arrive as query parameters
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	// Choose log level based on status code
	logLevel := slog.LevelInfo
	if status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	// Base logger: request_id is already in fields
	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
