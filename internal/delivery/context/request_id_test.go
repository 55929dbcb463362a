package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	c := newEchoContext()
	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestBindUsername_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), base)))

	BindUsername(c, base, "khannedy")
	GetLoggerOrDefault(c.Request().Context(), nil).Info("hello")

	assert.Equal(t, "khannedy", GetUsername(c))
	assert.Contains(t, buf.String(), "username=khannedy")
}

func TestGetLoggerOrDefault_Fallback(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "id", GetRequestIDFromContext(WithRequestID(context.Background(), "id")))
}
