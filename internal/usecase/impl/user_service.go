package impl

import (
	"context"
	"log/slog"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	validator service.Validator
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Validator service.Validator
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user with a hashed password. A taken username fails with ErrUserAlreadyExists.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) error {
	if err := srv.validator.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		exists, err := userRepo.ExistsByID(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "register")
		}

		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		user := &entity.User{
			Username: input.Username,
			Password: hashed,
			Name:     input.Name,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("User registered", slog.String("username", input.Username))

	return nil
}

// GetCurrent returns the caller's profile.
func (srv *userService) GetCurrent(_ context.Context, user *entity.User) (*usecase.UserOutput, error) {
	return usecase.ToUserOutput(user), nil
}

// UpdateCurrent applies only the fields present in the input.
func (srv *userService) UpdateCurrent(ctx context.Context, user *entity.User, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, errors.WithStack(err)
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		current, err := userRepo.FindByID(ctx, user.Username)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "user vanished during update")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load user for update")
		}

		if input.Name != nil {
			current.Name = *input.Name
		}
		if input.Password != nil {
			hashed, err := srv.hasher.Hash(*input.Password)
			if err != nil {
				return errors.Wrap(err, "failed to hash password during update")
			}
			current.Password = hashed
		}

		if err := userRepo.Save(ctx, current); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	return usecase.ToUserOutput(updated), nil
}
