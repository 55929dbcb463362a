// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenGenerator service.TokenGenerator
	validator      service.Validator
	tokenTTL       time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenGenerator service.TokenGenerator
	Validator      service.Validator
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	tokenTTL := 30 * 24 * time.Hour
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.TokenTTL > 0 {
		tokenTTL = params.Config.Auth.TokenTTL
	}

	return &authService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenGenerator: params.TokenGenerator,
		validator:      params.Validator,
		tokenTTL:       tokenTTL,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and replaces the user's token with a fresh one.
// Unknown usernames and wrong passwords produce the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.WithStack(err)
	}

	var output *usecase.TokenOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.Username)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user for login")
		}

		if !srv.hasher.Check(input.Password, user.Password) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		token, err := srv.tokenGenerator.Generate()
		if err != nil {
			return errors.Wrap(err, "failed to generate token")
		}

		user.IssueToken(token, srv.now(), srv.tokenTTL)
		if err := userRepo.Save(ctx, user); err != nil {
			return errors.Wrap(err, "failed to store token")
		}

		output = &usecase.TokenOutput{Token: user.Token, ExpiredAt: user.TokenExpiredAt}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User logged in", slog.String("username", input.Username))

	return output, nil
}

// Logout clears the caller's token so it no longer resolves.
func (srv *authService) Logout(ctx context.Context, user *entity.User) error {
	loggedOut := *user
	loggedOut.ClearToken()

	if err := srv.userRepo.Save(ctx, &loggedOut); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "user vanished during logout")
		}

		return errors.Wrap(err, "failed to clear token")
	}

	user.ClearToken()
	srv.log(ctx).Debug("User logged out", slog.String("username", user.Username))

	return nil
}

// Authenticate resolves the user owning the token. Missing, unknown and expired
// tokens all fail with the same error.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := srv.userRepo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve token")
	}

	if user.IsTokenExpired(srv.now()) {
		srv.log(ctx).Debug("Expired token presented", slog.String("username", user.Username))

		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return user, nil
}
