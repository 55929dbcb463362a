package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"contacts/config"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	mockUsecase "contacts/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("stores resolved user", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		user := &entity.User{Username: "khannedy"}
		authUC.EXPECT().Authenticate(mock.Anything, "tok").Return(user, nil)

		m := NewAuthMiddleware(authUC, nil, slog.Default())
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
		req.Header.Set("X-API-TOKEN", "tok")
		c := e.NewContext(req, httptest.NewRecorder())

		var seen *entity.User
		err := m.Authenticate(func(c echo.Context) error {
			var err error
			seen, err = CurrentUser(c)

			return err
		})(c)

		require.NoError(t, err)
		assert.Same(t, user, seen)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "").Return(nil, domainerrors.ErrUnauthenticated)

		m := NewAuthMiddleware(authUC, nil, slog.Default())
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users/current", nil), httptest.NewRecorder())

		called := false
		err := m.Authenticate(func(echo.Context) error {
			called = true

			return nil
		})(c)

		require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		assert.False(t, called)
	})

	t.Run("header name comes from config", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		authUC.EXPECT().Authenticate(mock.Anything, "tok").Return(&entity.User{Username: "khannedy"}, nil)

		m := NewAuthMiddleware(authUC, &config.Config{Auth: &config.AuthConfig{TokenHeader: "X-Session"}}, slog.Default())
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
		req.Header.Set("X-Session", "tok")
		c := e.NewContext(req, httptest.NewRecorder())

		err := m.Authenticate(func(echo.Context) error { return nil })(c)

		require.NoError(t, err)
	})
}

func TestCurrentUser_WithoutAuthentication(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := CurrentUser(c)

	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
