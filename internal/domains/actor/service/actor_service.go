package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"actor-catalog/internal/domains/actor/model"
	"actor-catalog/internal/domains/actor/repository"
)

// actorService implements ServiceInterface
type actorService struct {
	repo repository.Store
}

// NewActorService creates a new actor service instance
func NewActorService(repo repository.Store) ServiceInterface {
	return &actorService{repo: repo}
}

// List pages through the full actor list in memory.
func (s *actorService) List(ctx context.Context, page, perPage int) (*model.ActorPage, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	p := model.Paginate(all, page, perPage)
	return &p, nil
}

func (s *actorService) GetByID(ctx context.Context, id int64) (*model.Actor, error) {
	if id < 1 {
		return nil, model.ErrInvalidID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.ErrActorNotFound
	}
	return a, nil
}

func (s *actorService) Create(ctx context.Context, in model.ActorInput) (*model.Actor, error) {
	in.Normalize()
	if err := in.ValidateCreate(); err != nil {
		return nil, err
	}

	countryID, err := s.resolveCountry(ctx, *in.Country)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.Create(ctx, in.ToNewActor(countryID))
	if err != nil {
		return nil, err
	}

	log.Info().Int64("actor_id", a.ID).Str("name", a.Name).Msg("actor created")
	return a, nil
}

// Update applies only the supplied fields and returns the actor as stored afterwards.
func (s *actorService) Update(ctx context.Context, id int64, in model.ActorInput) (*model.Actor, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Normalize()
	if err := in.ValidateUpdate(); err != nil {
		return nil, err
	}

	var countryID *int64
	if in.Country != nil {
		cid, err := s.resolveCountry(ctx, *in.Country)
		if err != nil {
			return nil, err
		}
		countryID = &cid
	}

	changes := in.ToChanges(countryID)
	if changes.IsEmpty() {
		return existing, nil
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, err
	}

	log.Info().Int64("actor_id", id).Msg("actor updated")
	return s.GetByID(ctx, id)
}

func (s *actorService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("actor_id", id).Msg("actor deleted")
	return nil
}

func (s *actorService) ListCountries(ctx context.Context) ([]model.Country, error) {
	return s.repo.ListCountries(ctx)
}

// resolveCountry maps a name onto its id; unknown names are a validation failure.
func (s *actorService) resolveCountry(ctx context.Context, name string) (int64, error) {
	id, ok, err := s.repo.ResolveCountryID(ctx, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, model.InvalidCountry(name)
	}
	return id, nil
}
