package repository

import (
	"context"

	"contacts/internal/domain/entity"
	"contacts/internal/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository stores addresses keyed by id.
type AddressRepository interface {
	Repository[entity.Address, string]

	// FindByContactAndID retrieves an address only if it belongs to the given contact.
	FindByContactAndID(ctx context.Context, contactID, id string) (*entity.Address, error)

	// FindAllByContact lists every address of a contact ordered by id.
	FindAllByContact(ctx context.Context, contactID string) ([]*entity.Address, error)

	// DeleteAllByContact removes every address of a contact and returns how many were removed.
	DeleteAllByContact(ctx context.Context, contactID string) (int64, error)
}
