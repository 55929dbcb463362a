package postgres

import (
	"context"
	"testing"
	"time"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 LIMIT`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u1", "hash", "User One", "tok", int64(1000), now, now))

	user, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &entity.User{Username: "u1", Password: "hash", Name: "User One", Token: "tok", TokenExpiredAt: 1000}, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_NullToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 LIMIT`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u1", "hash", "User One", nil, nil, now, now))

	user, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, user.Token)
	assert.Zero(t, user.TokenExpiredAt)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 LIMIT`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := repo.FindByID(context.Background(), "ghost")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_ExistsByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1`).
		WithArgs("u2").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(context.Background(), "u2")
	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE token = \$1 LIMIT`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u1", "hash", "User One", "tok", int64(2000), now, now))

	user, err := repo.FindByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.Username)
	assert.Equal(t, int64(2000), user.TokenExpiredAt)
}

func TestUserRepository_FindByToken_EmptyTokenSkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	user, err := repo.FindByToken(context.Background(), "")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByToken_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE token = \$1 LIMIT`).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindByToken(context.Background(), "unknown")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &entity.User{Username: "u1", Password: "hash", Name: "User One"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &entity.User{Username: "u1", Password: "hash", Name: "User One"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET .+ WHERE .*"username" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &entity.User{Username: "u1", Password: "hash", Name: "New", Token: "t", TokenExpiredAt: 10})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), &entity.User{Username: "ghost", Name: "x"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Save_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(errors.New("connection reset"))

	err := repo.Save(context.Background(), &entity.User{Username: "u1", Name: "x"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestUserMappers_TokenPair(t *testing.T) {
	withToken := fromUserDomain(&entity.User{Username: "u1", Token: "t", TokenExpiredAt: 5})
	require.NotNil(t, withToken.Token)
	require.NotNil(t, withToken.TokenExpiredAt)
	assert.Equal(t, "t", *withToken.Token)
	assert.Equal(t, int64(5), *withToken.TokenExpiredAt)

	cleared := fromUserDomain(&entity.User{Username: "u1"})
	assert.Nil(t, cleared.Token)
	assert.Nil(t, cleared.TokenExpiredAt)

	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}
