package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TMDB_BEARER_TOKEN", "token")
	for _, k := range []string{"APP_ENV", "APP_PORT", "DB_HOST", "DB_PORT", "REDIS_HOST", "TMDB_TIMEOUT",
		"TMDB_CACHE_TTL", "TMDB_REQUESTS_PER_SECOND", "CORS_ALLOWED_ORIGINS", "DB_MIGRATE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Migrate.OnStartup)
	assert.Empty(t, cfg.Redis.Host)
	assert.Equal(t, time.Hour, cfg.Redis.CacheTTL)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, 10*time.Second, cfg.TMDB.Timeout)
	assert.InDelta(t, 20.0, cfg.TMDB.RequestsPerSecond, 0.001)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TMDB_BEARER_TOKEN", "token")
	t.Setenv("APP_ENV", "staging")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MIGRATE", "false")
	t.Setenv("DB_SCHEMA", "actor-catalog")
	t.Setenv("REDIS_HOST", "redis:6379")
	t.Setenv("TMDB_CACHE_TTL", "15m")
	t.Setenv("TMDB_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.Database.Port)
	assert.False(t, cfg.Migrate.OnStartup)
	assert.Equal(t, "actor-catalog", cfg.Database.Schema)
	assert.Equal(t, "redis:6379", cfg.Redis.Host)
	assert.Equal(t, 15*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 3*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"DB_PORT":                  "not-a-port",
		"DB_CONNECT_TIMEOUT":       "soon",
		"TMDB_TIMEOUT":             "ten",
		"TMDB_REQUESTS_PER_SECOND": "fast",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv("TMDB_BEARER_TOKEN", "token")
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_MinConnsAboveMax(t *testing.T) {
	t.Setenv("TMDB_BEARER_TOKEN", "token")
	t.Setenv("DB_MIN_CONNECTIONS", "20")
	t.Setenv("DB_MAX_CONNECTIONS", "5")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("TMDB_BEARER_TOKEN", "token")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")

	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS_ALLOWED_ORIGINS")

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Environment)
}

func TestValidate_TMDBTokenRequired(t *testing.T) {
	t.Setenv("TMDB_BEARER_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bearer_token is required")
}

func TestValidate_Port(t *testing.T) {
	t.Setenv("TMDB_BEARER_TOKEN", "token")
	t.Setenv("APP_PORT", "http")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_PORT")
}
