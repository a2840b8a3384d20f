package tmdb

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds the metadata provider settings.
type Config struct {
	BaseURL      string // e.g. https://api.themoviedb.org/3
	BearerToken  string // v4 read access token
	Language     string
	ImageBaseURL string // e.g. https://image.tmdb.org/t/p

	Timeout           time.Duration
	RequestsPerSecond float64 // <= 0 disables client-side limiting
}

// Validate checks the configuration before the client is built.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL")
	}
	if c.BearerToken == "" {
		return fmt.Errorf("bearer_token is required")
	}
	if c.Language == "" {
		return fmt.Errorf("language is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
