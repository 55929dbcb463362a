package middleware

import (
	"log/slog"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultTokenHeader = "X-API-TOKEN"
	currentUserKey     = "currentUser"
)

// AuthMiddleware resolves the session token header into the calling user.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	header string
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	header := defaultTokenHeader
	if cfg != nil && cfg.Auth != nil && cfg.Auth.TokenHeader != "" {
		header = cfg.Auth.TokenHeader
	}

	return &AuthMiddleware{authUC: authUC, header: header, logger: logger}
}

// Authenticate rejects the request unless the token header names a live session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(m.header)

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		SetCurrentUser(c, user)
		deliverycontext.BindUsername(c, m.logger, user.Username)

		return next(c)
	}
}

// SetCurrentUser stores the authenticated user on the request context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, error) {
	user, ok := c.Get(currentUserKey).(*entity.User)
	if !ok || user == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return user, nil
}
