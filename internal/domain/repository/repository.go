// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "context"

// Repository is the set of operations every entity store provides, keyed by K.
type Repository[E any, K comparable] interface {
	// FindByID retrieves one entity by key. Returns the entity's not-found sentinel when absent.
	FindByID(ctx context.Context, id K) (*E, error)

	// ExistsByID reports whether an entity with the key is stored.
	ExistsByID(ctx context.Context, id K) (bool, error)

	// Create inserts a new entity. Fails if the key is already taken.
	Create(ctx context.Context, entity *E) error

	// Save writes every column of an existing entity.
	Save(ctx context.Context, entity *E) error

	// Delete removes the entity with the key. Returns the not-found sentinel when nothing was removed.
	Delete(ctx context.Context, id K) error
}
