package impl

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/infra/validation"
	mockRepo "contacts/internal/mocks/repository"
	mockSvc "contacts/internal/mocks/service"
	"contacts/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *mockRepo.MockTransactionManager, *testRepos, *mockSvc.MockPasswordHasher, *mockSvc.MockValidator) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newTestRepos(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	validator := mockSvc.NewMockValidator(t)

	srv := NewUserService(UserServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Validator: validator,
		Logger:    newDiscardLogger(),
	})

	return srv, txManager, repos, hasher, validator
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	input := &usecase.RegisterUserInput{Username: "khannedy", Password: "rahasia", Name: "Eko"}

	t.Run("stores hashed password", func(t *testing.T) {
		srv, txManager, repos, hasher, validator := newUserServiceForTest(t)
		validator.EXPECT().Validate(input).Return(nil)
		expectTransaction(t, txManager, repos)
		repos.users.EXPECT().ExistsByID(ctx, "khannedy").Return(false, nil)
		hasher.EXPECT().Hash("rahasia").Return("$2a$hash", nil)
		repos.users.EXPECT().Create(ctx, &entity.User{Username: "khannedy", Password: "$2a$hash", Name: "Eko"}).Return(nil)

		require.NoError(t, srv.Register(ctx, input))
	})

	t.Run("duplicate username", func(t *testing.T) {
		srv, txManager, repos, _, validator := newUserServiceForTest(t)
		validator.EXPECT().Validate(input).Return(nil)
		expectTransaction(t, txManager, repos)
		repos.users.EXPECT().ExistsByID(ctx, "khannedy").Return(true, nil)

		err := srv.Register(ctx, input)

		require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("insert race surfaces the duplicate", func(t *testing.T) {
		srv, txManager, repos, hasher, validator := newUserServiceForTest(t)
		validator.EXPECT().Validate(input).Return(nil)
		expectTransaction(t, txManager, repos)
		repos.users.EXPECT().ExistsByID(ctx, "khannedy").Return(false, nil)
		hasher.EXPECT().Hash("rahasia").Return("$2a$hash", nil)
		repos.users.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

		err := srv.Register(ctx, input)

		require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("invalid input", func(t *testing.T) {
		srv, _, _, _, validator := newUserServiceForTest(t)
		bad := &usecase.RegisterUserInput{}
		validator.EXPECT().Validate(bad).Return(domainerrors.ErrValidationFailed.WithDetails("username is required"))

		err := srv.Register(ctx, bad)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_GetCurrent(t *testing.T) {
	srv, _, _, _, _ := newUserServiceForTest(t)

	out, err := srv.GetCurrent(context.Background(), &entity.User{Username: "khannedy", Name: "Eko", Password: "secret", Token: "tok"})

	require.NoError(t, err)
	assert.Equal(t, &usecase.UserOutput{Username: "khannedy", Name: "Eko"}, out)
}

func TestUserService_UpdateCurrent(t *testing.T) {
	ctx := context.Background()
	caller := &entity.User{Username: "khannedy", Name: "Eko", Password: "old-hash"}

	t.Run("name only keeps password", func(t *testing.T) {
		srv, txManager, repos, _, validator := newUserServiceForTest(t)
		input := &usecase.UpdateUserInput{Name: strPtr("Eko Kurniawan")}
		validator.EXPECT().Validate(input).Return(nil)
		expectTransaction(t, txManager, repos)
		repos.users.EXPECT().FindByID(ctx, "khannedy").Return(&entity.User{Username: "khannedy", Name: "Eko", Password: "old-hash"}, nil)
		repos.users.EXPECT().Save(ctx, &entity.User{Username: "khannedy", Name: "Eko Kurniawan", Password: "old-hash"}).Return(nil)

		out, err := srv.UpdateCurrent(ctx, caller, input)

		require.NoError(t, err)
		assert.Equal(t, "Eko Kurniawan", out.Name)
	})

	t.Run("password is rehashed", func(t *testing.T) {
		srv, txManager, repos, hasher, validator := newUserServiceForTest(t)
		input := &usecase.UpdateUserInput{Password: strPtr("baru")}
		validator.EXPECT().Validate(input).Return(nil)
		expectTransaction(t, txManager, repos)
		repos.users.EXPECT().FindByID(ctx, "khannedy").Return(&entity.User{Username: "khannedy", Name: "Eko", Password: "old-hash"}, nil)
		hasher.EXPECT().Hash("baru").Return("new-hash", nil)
		repos.users.EXPECT().Save(ctx, &entity.User{Username: "khannedy", Name: "Eko", Password: "new-hash"}).Return(nil)

		out, err := srv.UpdateCurrent(ctx, caller, input)

		require.NoError(t, err)
		assert.Equal(t, "Eko", out.Name)
	})

	t.Run("vanished user", func(t *testing.T) {
		srv, txManager, repos, _, validator := newUserServiceForTest(t)
		input := &usecase.UpdateUserInput{Name: strPtr("x")}
		validator.EXPECT().Validate(input).Return(nil)
		expectTransaction(t, txManager, repos)
		repos.users.EXPECT().FindByID(ctx, "khannedy").Return(nil, repository.ErrUserNotFound)

		_, err := srv.UpdateCurrent(ctx, caller, input)

		require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestUserService_PasswordBeyondBcryptLimit(t *testing.T) {
	ctx := context.Background()
	caller := &entity.User{Username: "khannedy", Name: "Eko", Password: "old-hash"}

	t.Run("register rejects 80 characters before touching the store", func(t *testing.T) {
		srv := NewUserService(UserServiceParams{
			TxManager: mockRepo.NewMockTransactionManager(t),
			Hasher:    mockSvc.NewMockPasswordHasher(t),
			Validator: validation.NewService(validation.New()),
			Logger:    newDiscardLogger(),
		})

		err := srv.Register(ctx, &usecase.RegisterUserInput{Username: "khannedy", Password: strings.Repeat("a", 80), Name: "Eko"})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("update rejects 80 characters", func(t *testing.T) {
		srv := NewUserService(UserServiceParams{
			TxManager: mockRepo.NewMockTransactionManager(t),
			Hasher:    mockSvc.NewMockPasswordHasher(t),
			Validator: validation.NewService(validation.New()),
			Logger:    newDiscardLogger(),
		})

		_, err := srv.UpdateCurrent(ctx, caller, &usecase.UpdateUserInput{Password: strPtr(strings.Repeat("a", 80))})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("hasher byte limit surfaces as a bad request", func(t *testing.T) {
		srv, txManager, repos, hasher, validator := newUserServiceForTest(t)
		password := strings.Repeat("é", 72)
		input := &usecase.UpdateUserInput{Password: &password}
		validator.EXPECT().Validate(input).Return(nil)
		expectTransaction(t, txManager, repos)
		repos.users.EXPECT().FindByID(ctx, "khannedy").Return(&entity.User{Username: "khannedy", Name: "Eko", Password: "old-hash"}, nil)
		hasher.EXPECT().Hash(password).Return("", domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes"))

		_, err := srv.UpdateCurrent(ctx, caller, input)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	})
}
