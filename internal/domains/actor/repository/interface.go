package repository

import (
	"context"

	"actor-catalog/internal/domains/actor/model"
)

// RepositoryInterface is the actor store capability set.
// Implementations must agree on one schema layout across all operations.
type RepositoryInterface interface {
	// ListAll returns every actor in database-default order.
	ListAll(ctx context.Context) ([]model.Actor, error)

	// FindByID returns nil, nil when no row matches.
	FindByID(ctx context.Context, id int64) (*model.Actor, error)

	// Create inserts a row and returns it with the assigned id.
	// Errors: *model.StorageError wrapping ErrInvalidReference or ErrConstraint.
	Create(ctx context.Context, a model.NewActor) (*model.Actor, error)

	// Update writes only the supplied columns. Unknown ids are a no-op.
	Update(ctx context.Context, id int64, changes model.ActorChanges) error

	// Delete removes by id. Unknown ids are a no-op.
	Delete(ctx context.Context, id int64) error

	// ListCountries returns all countries sorted by name ascending.
	ListCountries(ctx context.Context) ([]model.Country, error)
}

// CountryLookup resolves country names to ids for the normalized schema.
type CountryLookup interface {
	// ResolveCountryID matches name case-insensitively; found is false when nothing matches.
	ResolveCountryID(ctx context.Context, name string) (id int64, found bool, err error)
}

// Store is what the Postgres implementation provides.
type Store interface {
	RepositoryInterface
	CountryLookup
}
