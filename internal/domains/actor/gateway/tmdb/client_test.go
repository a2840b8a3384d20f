package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(&Config{
		BaseURL:      srv.URL + "/3",
		BearerToken:  "test-token",
		Language:     "en-US",
		ImageBaseURL: "https://image.tmdb.org/t/p",
		Timeout:      5 * time.Second,
	})
	require.NoError(t, err)
	return c
}

func TestConfigValidate(t *testing.T) {
	valid := Config{BaseURL: "https://api.themoviedb.org/3", BearerToken: "t", Language: "en-US", Timeout: time.Second}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing base url", func(c *Config) { c.BaseURL = "" }, "base_url is required"},
		{"relative base url", func(c *Config) { c.BaseURL = "api/3" }, "absolute URL"},
		{"missing token", func(c *Config) { c.BearerToken = "" }, "bearer_token"},
		{"missing language", func(c *Config) { c.Language = "" }, "language"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSearchPeople_ForwardsQueryAndReturnsBodyVerbatim(t *testing.T) {
	const body = `{"page":2,"results":[{"id":31,"name":"Tom Hanks"}],"total_pages":3,"total_results":41}`

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/person", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		q := r.URL.Query()
		assert.Equal(t, "Tom Hanks", q.Get("query"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "false", q.Get("include_adult"))
		assert.Equal(t, "en-US", q.Get("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	got, err := c.SearchPeople(context.Background(), "Tom Hanks", 2)

	require.NoError(t, err)
	assert.JSONEq(t, body, string(got))
}

func TestSearchPeople_PageBelowOneIsSentAsOne(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
	})

	_, err := c.SearchPeople(context.Background(), "x", 0)
	require.NoError(t, err)
	_, err = c.SearchPeople(context.Background(), "x", -3)
	require.NoError(t, err)
}

func TestSearchPeople_InvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := c.SearchPeople(context.Background(), "x", 1)
	assert.Error(t, err)
}

func TestGetPersonDetails_DecodesCombinedCredits(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/person/31", r.URL.Path)
		assert.Equal(t, "combined_credits", r.URL.Query().Get("append_to_response"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))

		_, _ = w.Write([]byte(`{
			"id": 31,
			"name": "Tom Hanks",
			"gender": 2,
			"birthday": "1956-07-09",
			"place_of_birth": "Concord, California, USA",
			"biography": "Thomas Jeffrey Hanks...",
			"profile_path": "/xndWFsBlClOJFRdhSt4NBwiPq2o.jpg",
			"combined_credits": {"cast": [
				{"id": 13, "media_type": "movie", "title": "Forrest Gump", "character": "Forrest Gump", "release_date": "1994-06-23", "poster_path": "/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg"},
				{"id": 1400, "media_type": "tv", "name": "Band of Brothers", "character": "Narrator"}
			]}
		}`))
	})

	p, err := c.GetPersonDetails(context.Background(), 31)

	require.NoError(t, err)
	assert.Equal(t, int64(31), p.ID)
	assert.Equal(t, "Tom Hanks", p.Name)
	assert.Equal(t, 2, p.Gender)
	require.NotNil(t, p.Birthday)
	assert.Equal(t, "1956-07-09", *p.Birthday)
	require.NotNil(t, p.CombinedCredits)
	assert.Len(t, p.CombinedCredits.Cast, 2)
	assert.Equal(t, "tv", p.CombinedCredits.Cast[1].MediaType)
}

func TestGetPersonDetails_Upstream404(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`))
	})

	_, err := c.GetPersonDetails(context.Background(), 999999999)

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusNotFound, upErr.StatusCode)
	assert.Contains(t, upErr.Body, "could not be found")
	assert.Equal(t, "/person/999999999", upErr.Endpoint)
	assert.Equal(t, http.StatusNotFound, upErr.HTTPStatus())
	assert.NotContains(t, err.Error(), "test-token")
}

func TestUpstreamError_HTTPStatus(t *testing.T) {
	tests := []struct {
		upstream int
		want     int
	}{
		{http.StatusUnauthorized, http.StatusUnauthorized},
		{http.StatusNotFound, http.StatusNotFound},
		{http.StatusTooManyRequests, http.StatusTooManyRequests},
		{http.StatusInternalServerError, http.StatusBadGateway},
		{http.StatusServiceUnavailable, http.StatusBadGateway},
		{http.StatusMultipleChoices, http.StatusBadGateway},
	}
	for _, tt := range tests {
		e := &UpstreamError{StatusCode: tt.upstream}
		assert.Equal(t, tt.want, e.HTTPStatus(), "upstream %d", tt.upstream)
	}
}

func TestGet_ErrorBodyIsTruncated(t *testing.T) {
	big := make([]byte, maxErrorBody*2)
	for i := range big {
		big[i] = 'x'
	}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write(big)
	})

	_, err := c.SearchPeople(context.Background(), "x", 1)

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Len(t, upErr.Body, maxErrorBody)
}

func TestGet_RespectsContextCancellation(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.SearchPeople(ctx, "x", 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}

func TestNewClient_RejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid TMDB config")
}
