package service

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"actor-catalog/internal/domains/actor/gateway/tmdb"
	"actor-catalog/internal/domains/actor/model"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListAll(ctx context.Context) ([]model.Actor, error) {
	args := m.Called(ctx)
	actors, _ := args.Get(0).([]model.Actor)
	return actors, args.Error(1)
}

func (m *mockStore) FindByID(ctx context.Context, id int64) (*model.Actor, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.Actor)
	return a, args.Error(1)
}

func (m *mockStore) Create(ctx context.Context, a model.NewActor) (*model.Actor, error) {
	args := m.Called(ctx, a)
	created, _ := args.Get(0).(*model.Actor)
	return created, args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, id int64, changes model.ActorChanges) error {
	return m.Called(ctx, id, changes).Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStore) ListCountries(ctx context.Context) ([]model.Country, error) {
	args := m.Called(ctx)
	countries, _ := args.Get(0).([]model.Country)
	return countries, args.Error(1)
}

func (m *mockStore) ResolveCountryID(ctx context.Context, name string) (int64, bool, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

type mockTMDB struct {
	mock.Mock
}

func (m *mockTMDB) SearchPeople(ctx context.Context, query string, page int) (json.RawMessage, error) {
	args := m.Called(ctx, query, page)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *mockTMDB) GetPersonDetails(ctx context.Context, id int64) (*tmdb.Person, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*tmdb.Person)
	return p, args.Error(1)
}
