package postgres

import (
	"context"

	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crudStore implements repository.Repository[E, string] for a GORM model M keyed by one
// string column. Entity repositories embed it and add their own queries.
type crudStore[E any, M any] struct {
	db         *gorm.DB
	keyColumn  string
	name       string
	notFound   error
	toDomain   func(*M) *E
	fromDomain func(*E) *M
	// writeErr maps a constraint violation to a domain error; nil means unmapped.
	writeErr func(err error) error
}

// FindByID retrieves one row by key.
func (s *crudStore[E, M]) FindByID(ctx context.Context, id string) (*E, error) {
	var row M
	err := s.db.WithContext(ctx).
		Where(s.keyColumn+" = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by id", s.name)
	}

	return s.toDomain(&row), nil
}

// ExistsByID reports whether a row with the key exists.
func (s *crudStore[E, M]) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(new(M)).
		Where(s.keyColumn+" = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrapf(err, "failed to check %s existence", s.name)
	}

	return count > 0, nil
}

// Create inserts the entity.
func (s *crudStore[E, M]) Create(ctx context.Context, entity *E) error {
	row := s.fromDomain(entity)
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return s.translate(err, "failed to create "+s.name)
	}

	return nil
}

// Save overwrites every column except the key and creation time.
func (s *crudStore[E, M]) Save(ctx context.Context, entity *E) error {
	row := s.fromDomain(entity)
	result := s.db.WithContext(ctx).
		Model(row).
		Select("*").
		Omit(s.keyColumn, "created_at", clause.Associations).
		Updates(row)
	if result.Error != nil {
		return s.translate(result.Error, "failed to save "+s.name)
	}

	if result.RowsAffected == 0 {
		return s.notFound
	}

	return nil
}

// Delete removes the row with the key.
func (s *crudStore[E, M]) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).
		Where(s.keyColumn+" = ?", id).
		Delete(new(M))
	if result.Error != nil {
		return s.translate(result.Error, "failed to delete "+s.name)
	}

	// If no rows were affected, it means the row was not found.
	if result.RowsAffected == 0 {
		return s.notFound
	}

	return nil
}

// translate converts PostgreSQL errors to domain errors
func (s *crudStore[E, M]) translate(err error, details string) error {
	if s.writeErr != nil {
		if mapped := s.writeErr(err); mapped != nil {
			return mapped
		}
	}

	// For other database errors, return a generic database error
	return domainerrors.NewDatabaseExecuteError(err, details)
}
