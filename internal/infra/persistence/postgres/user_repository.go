// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"
	"contacts/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	*crudStore[entity.User, model.UserModel]
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		crudStore: &crudStore[entity.User, model.UserModel]{
			db:         db,
			keyColumn:  "username",
			name:       "user",
			notFound:   repository.ErrUserNotFound,
			toDomain:   toUserDomain,
			fromDomain: fromUserDomain,
			writeErr:   userWriteError,
		},
	}
}

// FindByToken retrieves the user holding exactly this token.
func (repo *userRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Take(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by token")
	}

	return toUserDomain(&userM), nil
}

func userWriteError(err error) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		Username: data.Username,
		Password: data.Password,
		Name:     data.Name,
	}
	if data.Token != nil && data.TokenExpiredAt != nil {
		user.Token = *data.Token
		user.TokenExpiredAt = *data.TokenExpiredAt
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
// Token and expiry are written as NULL together when the user holds no token.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		Username: data.Username,
		Password: data.Password,
		Name:     data.Name,
	}
	if data.HasToken() {
		token := data.Token
		expiredAt := data.TokenExpiredAt
		userM.Token = &token
		userM.TokenExpiredAt = &expiredAt
	}

	return userM
}
