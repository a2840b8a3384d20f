package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"actor-catalog/internal/domains/actor/gateway/tmdb"
	"actor-catalog/internal/domains/actor/model"
)

type importService struct {
	actors       ServiceInterface
	client       tmdb.Client
	imageBaseURL string
}

// NewImportService wires the provider client to the actor service used for imports.
func NewImportService(actors ServiceInterface, client tmdb.Client, imageBaseURL string) ImportServiceInterface {
	return &importService{
		actors:       actors,
		client:       client,
		imageBaseURL: imageBaseURL,
	}
}

func (s *importService) Search(ctx context.Context, query string, page int) (json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &model.ValidationError{Missing: []string{"query"}}
	}
	return s.client.SearchPeople(ctx, query, page)
}

func (s *importService) GetDetails(ctx context.Context, externalID int64) (*tmdb.Person, error) {
	if externalID < 1 {
		return nil, model.ErrInvalidID
	}
	return s.client.GetPersonDetails(ctx, externalID)
}

func (s *importService) GetProfile(ctx context.Context, externalID int64) (*tmdb.Profile, error) {
	p, err := s.GetDetails(ctx, externalID)
	if err != nil {
		return nil, err
	}

	profile := tmdb.BuildProfile(*p, s.imageBaseURL)
	return &profile, nil
}

// Import maps a provider person onto an actor and creates it through the regular create path.
func (s *importService) Import(ctx context.Context, externalID int64) (*model.Actor, error) {
	p, err := s.GetDetails(ctx, externalID)
	if err != nil {
		return nil, err
	}

	a, err := s.actors.Create(ctx, tmdb.MapToActor(*p))
	if err != nil {
		log.Warn().Err(err).Int64("tmdb_id", externalID).Msg("import rejected")
		return nil, err
	}

	log.Info().Int64("tmdb_id", externalID).Int64("actor_id", a.ID).Msg("actor imported")
	return a, nil
}
