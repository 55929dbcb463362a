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

func TestContactRepository_FindByOwnerAndID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "contacts" WHERE username = \$1 AND id = \$2 LIMIT`).
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow("c1", "u1", "Anas", "", "a@x.com", "", now, now))

	contact, err := repo.FindByOwnerAndID(context.Background(), "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, &entity.Contact{ID: "c1", Username: "u1", FirstName: "Anas", Email: "a@x.com"}, contact)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_FindByOwnerAndID_OtherOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "contacts" WHERE username = \$1 AND id = \$2 LIMIT`).
		WillReturnRows(sqlmock.NewRows(contactColumns))

	contact, err := repo.FindByOwnerAndID(context.Background(), "u2", "c1")
	assert.Nil(t, contact)
	assert.ErrorIs(t, err, repository.ErrContactNotFound)
}

func TestContactRepository_Create_DuplicateID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectExec(`INSERT INTO "contacts"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.Create(context.Background(), &entity.Contact{ID: "c1", Username: "u1", FirstName: "Anas"})
	assert.True(t, errors.Is(err, domainerrors.ErrContactAlreadyExists))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Contact id is not available", appErr.Message())
	assert.Empty(t, appErr.Details())
}

func TestContactRepository_SaveAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectExec(`UPDATE "contacts" SET .+ WHERE .*"id" = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "contacts" WHERE id = \$1`).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "contacts" WHERE id = \$1`).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Save(context.Background(), &entity.Contact{ID: "c1", Username: "u1", FirstName: "Anas2"}))
	require.NoError(t, repo.Delete(context.Background(), "c1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "c1"), repository.ErrContactNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Search_AllFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)
	now := time.Now()

	filter := entity.ContactFilter{Name: "an", Email: "x.com", Phone: "08"}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts" WHERE username = \$1 AND .*first_name ILIKE \$2 OR last_name ILIKE \$3.* AND email ILIKE \$4 AND phone LIKE \$5`).
		WithArgs("u1", "%an%", "%an%", "%x.com%", "%08%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "contacts" WHERE username = \$1 AND .*first_name ILIKE .* ORDER BY id ASC LIMIT`).
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow("c1", "u1", "Anas", "", "a@x.com", "0812", now, now).
			AddRow("c2", "u1", "Hanna", "", "h@x.com", "0813", now, now))

	contacts, total, err := repo.Search(context.Background(), "u1", filter, entity.Pageable{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, contacts, 2)
	assert.Equal(t, "c1", contacts[0].ID)
	assert.Equal(t, "c2", contacts[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Search_NoFiltersOnlyOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts" WHERE username = \$1$`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`SELECT \* FROM "contacts" WHERE username = \$1 ORDER BY id ASC LIMIT .+ OFFSET`).
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow("c11", "u1", "Last", "", "", "", now, now))

	contacts, total, err := repo.Search(context.Background(), "u1", entity.ContactFilter{}, entity.Pageable{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, contacts, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Search_PageBeyondLastSkipsFetch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	contacts, total, err := repo.Search(context.Background(), "u1", entity.ContactFilter{}, entity.Pageable{Page: 5, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Search_HugePageSkipsFetch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	page := entity.Pageable{Page: 922337203685477581, Size: 10}
	contacts, total, err := repo.Search(context.Background(), "u1", entity.ContactFilter{}, page)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Search_NoMatches(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	contacts, total, err := repo.Search(context.Background(), "u1", entity.ContactFilter{Name: "zz"}, entity.Pageable{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, contacts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_Search_CountError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts"`).
		WillReturnError(errors.New("boom"))

	_, _, err := repo.Search(context.Background(), "u1", entity.ContactFilter{}, entity.Pageable{Page: 0, Size: 10})
	assert.Error(t, err)
}

func TestContainsPattern_EscapesLikeMetacharacters(t *testing.T) {
	assert.Equal(t, "%anas%", containsPattern("anas"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\dir%`, containsPattern(`c:\dir`))
}
