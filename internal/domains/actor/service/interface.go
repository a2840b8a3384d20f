package service

import (
	"context"
	"encoding/json"

	"actor-catalog/internal/domains/actor/gateway/tmdb"
	"actor-catalog/internal/domains/actor/model"
)

// ServiceInterface is the actor CRUD boundary used by the HTTP handlers.
// Input validation happens here, before the store is touched.
type ServiceInterface interface {
	List(ctx context.Context, page, perPage int) (*model.ActorPage, error)
	GetByID(ctx context.Context, id int64) (*model.Actor, error)
	Create(ctx context.Context, in model.ActorInput) (*model.Actor, error)
	Update(ctx context.Context, id int64, in model.ActorInput) (*model.Actor, error)
	Delete(ctx context.Context, id int64) error
	ListCountries(ctx context.Context) ([]model.Country, error)
}

// ImportServiceInterface fronts the metadata provider.
type ImportServiceInterface interface {
	Search(ctx context.Context, query string, page int) (json.RawMessage, error)
	GetDetails(ctx context.Context, externalID int64) (*tmdb.Person, error)
	GetProfile(ctx context.Context, externalID int64) (*tmdb.Profile, error)
	Import(ctx context.Context, externalID int64) (*model.Actor, error)
}
