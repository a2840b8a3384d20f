package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"actor-catalog/internal/domains/actor/model"
)

func strp(s string) *string { return &s }

func TestMapToActor_Gender(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{2, model.GenderMale},
		{1, model.GenderFemale},
		{0, model.GenderUnknown},
		{3, model.GenderUnknown},
		{-1, model.GenderUnknown},
	}
	for _, tt := range tests {
		in := MapToActor(Person{Name: "X", Gender: tt.code})
		require.NotNil(t, in.Gender)
		assert.Equal(t, tt.want, *in.Gender, "code %d", tt.code)
	}
}

func TestMapToActor_Country(t *testing.T) {
	tests := []struct {
		name  string
		place *string
		want  string
	}{
		{"last segment", strp("Los Angeles, California, USA"), "USA"},
		{"single segment", strp("London"), "London"},
		{"trims", strp("Rome, Lazio,  Italy "), "Italy"},
		{"absent", nil, model.UnknownCountry},
		{"empty", strp(""), model.UnknownCountry},
		{"trailing comma", strp("Somewhere, "), model.UnknownCountry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := MapToActor(Person{Name: "X", PlaceOfBirth: tt.place})
			require.NotNil(t, in.Country)
			assert.Equal(t, tt.want, *in.Country)
		})
	}
}

func TestMapToActor_DOB(t *testing.T) {
	in := MapToActor(Person{Name: "X", Birthday: strp("1956-07-09")})
	require.NotNil(t, in.DOB)
	assert.Equal(t, "1956-07-09", *in.DOB)

	assert.Nil(t, MapToActor(Person{Name: "X"}).DOB)
	assert.Nil(t, MapToActor(Person{Name: "X", Birthday: strp("")}).DOB)
}

func TestMapToActor_IsDeterministic(t *testing.T) {
	p := Person{ID: 31, Name: "Tom Hanks", Gender: 2, Birthday: strp("1956-07-09"), PlaceOfBirth: strp("Concord, California, USA")}

	first := MapToActor(p)
	second := MapToActor(p)

	assert.Equal(t, first, second)
	assert.Equal(t, "Tom Hanks", *first.Name)
	assert.NoError(t, first.ValidateCreate())
}

func TestBuildProfile(t *testing.T) {
	p := Person{
		ID:          31,
		Name:        "Tom Hanks",
		Biography:   "bio",
		Birthday:    strp("1956-07-09"),
		ProfilePath: strp("/tom.jpg"),
		CombinedCredits: &Credits{Cast: []Credit{
			{ID: 13, MediaType: "movie", Title: "Forrest Gump", Character: "Forrest", ReleaseDate: "1994-06-23", PosterPath: strp("/fg.jpg")},
			{ID: 1400, MediaType: "tv", Name: "Band of Brothers"},
			{ID: 862, MediaType: "movie", Title: "Toy Story", Character: "Woody (voice)"},
		}},
	}

	profile := BuildProfile(p, "https://image.tmdb.org/t/p/")

	assert.Equal(t, int64(31), profile.ID)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/tom.jpg", profile.ProfileImage)
	assert.Equal(t, []Movie{
		{ID: 13, Title: "Forrest Gump", Character: "Forrest", ReleaseDate: "1994-06-23", Poster: "https://image.tmdb.org/t/p/w500/fg.jpg"},
		{ID: 862, Title: "Toy Story", Character: "Woody (voice)"},
	}, profile.Movies)
}

func TestBuildProfile_NoCreditsOrImage(t *testing.T) {
	profile := BuildProfile(Person{ID: 1, Name: "Nobody"}, "https://image.tmdb.org/t/p")

	assert.Empty(t, profile.ProfileImage)
	assert.NotNil(t, profile.Movies)
	assert.Empty(t, profile.Movies)
}
