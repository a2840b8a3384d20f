package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	searchPersonPath = "/search/person"
	personPath       = "/person/"

	// Upper bound on response bodies read into memory.
	maxBodyBytes = 4 << 20
	// Upper bound on the body text kept in UpstreamError.
	maxErrorBody = 2 << 10
)

// Client is the metadata provider API used by the import service.
type Client interface {
	SearchPeople(ctx context.Context, query string, page int) (json.RawMessage, error)
	GetPersonDetails(ctx context.Context, externalID int64) (*Person, error)
}

// HTTPClient talks to the provider over HTTPS with bearer authentication.
type HTTPClient struct {
	config     *Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(config *Config) (*HTTPClient, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid TMDB config: %w", err)
	}

	limit := rate.Inf
	burst := 1
	if config.RequestsPerSecond > 0 {
		limit = rate.Limit(config.RequestsPerSecond)
		if b := int(config.RequestsPerSecond); b > burst {
			burst = b
		}
	}

	return &HTTPClient{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

// SearchPeople returns the provider's search page verbatim. Pages below 1 are sent as 1.
func (c *HTTPClient) SearchPeople(ctx context.Context, query string, page int) (json.RawMessage, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("include_adult", "false")

	body, err := c.get(ctx, searchPersonPath, params)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("tmdb %s: response is not valid JSON", searchPersonPath)
	}
	return json.RawMessage(body), nil
}

// GetPersonDetails fetches a person with combined credits appended.
func (c *HTTPClient) GetPersonDetails(ctx context.Context, externalID int64) (*Person, error) {
	params := url.Values{}
	params.Set("append_to_response", "combined_credits")

	body, err := c.get(ctx, personPath+strconv.FormatInt(externalID, 10), params)
	if err != nil {
		return nil, err
	}

	var p Person
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("tmdb person %d: decode: %w", externalID, err)
	}
	return &p, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tmdb %s: rate limit wait: %w", endpoint, err)
	}

	params.Set("language", c.config.Language)
	reqURL := strings.TrimRight(c.config.BaseURL, "/") + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb %s: build request: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.BearerToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("tmdb %s: read body: %w", endpoint, err)
	}

	log.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("[TMDB] response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Endpoint:   endpoint,
		}
	}

	return body, nil
}
