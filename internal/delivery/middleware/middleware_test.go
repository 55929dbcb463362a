package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("reuses client id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := m.Process(func(c echo.Context) error {
			assert.Equal(t, "client-id", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces oversized id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 500))
		rec := httptest.NewRecorder()

		require.NoError(t, m.Process(func(echo.Context) error { return nil })(e.NewContext(req, rec)))

		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newMiddleware := func(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		return NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg), &buf
	}

	t.Run("debug logs successful requests with username", func(t *testing.T) {
		m, buf := newMiddleware(true)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/contacts?name=eko", nil), httptest.NewRecorder())

		err := m.Handle(func(c echo.Context) error {
			deliverycontext.BindUsername(c, slog.Default(), "khannedy")

			return c.NoContent(http.StatusOK)
		})(c)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "status=200")
		assert.Contains(t, buf.String(), "username=khannedy")
		assert.Contains(t, buf.String(), `query="name=eko"`)
	})

	t.Run("quiet mode only logs server errors", func(t *testing.T) {
		m, buf := newMiddleware(false)
		e := echo.New()

		ok := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(ok))
		assert.Empty(t, buf.String())

		failing := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		require.NoError(t, m.Handle(func(echo.Context) error { return errors.New("boom") })(failing))
		assert.Contains(t, buf.String(), "status=500")
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}
