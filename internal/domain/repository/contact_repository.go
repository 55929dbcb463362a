package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// ErrContactNotFound is returned when a contact is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository stores contacts keyed by id.
type ContactRepository interface {
	Repository[entity.Contact, string]

	// FindByOwnerAndID retrieves a contact only if it belongs to the given username.
	FindByOwnerAndID(ctx context.Context, username, id string) (*entity.Contact, error)

	// Search returns one page of the owner's contacts matching the filter, ordered by id,
	// together with the total number of matches.
	Search(ctx context.Context, username string, filter entity.ContactFilter, page entity.Pageable) ([]*entity.Contact, int64, error)
}
