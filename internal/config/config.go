package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"actor-catalog/internal/domains/actor/gateway/tmdb"
	"actor-catalog/internal/infrastructure/database"
)

// Config holds the whole application configuration, populated from environment variables.
type Config struct {
	App      AppConfig
	Database *database.DBConfig
	Migrate  MigrateConfig
	Redis    RedisConfig
	TMDB     tmdb.Config
	CORS     CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type MigrateConfig struct {
	OnStartup       bool          // DB_MIGRATE
	MonitorInterval time.Duration // 0 disables pool monitoring
}

// RedisConfig backs the provider response cache. An empty Host disables it.
type RedisConfig struct {
	Host     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	dbCfg, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	tmdbTimeout, err := getEnvDuration("TMDB_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvDuration("TMDB_CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	monitor, err := getEnvDuration("DB_MONITOR_INTERVAL", 0)
	if err != nil {
		return nil, err
	}
	rps, err := strconv.ParseFloat(getEnv("TMDB_REQUESTS_PER_SECOND", "20"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TMDB_REQUESTS_PER_SECOND: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Actor Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: dbCfg,
		Migrate: MigrateConfig{
			OnStartup:       getEnvBool("DB_MIGRATE", true),
			MonitorInterval: monitor,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: cacheTTL,
		},
		TMDB: tmdb.Config{
			BaseURL:           getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
			BearerToken:       getEnv("TMDB_BEARER_TOKEN", ""),
			Language:          getEnv("TMDB_LANGUAGE", "en-US"),
			ImageBaseURL:      getEnv("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p"),
			Timeout:           tmdbTimeout,
			RequestsPerSecond: rps,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations that cannot work.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.App.Port); err != nil {
		return fmt.Errorf("APP_PORT must be numeric")
	}
	if err := c.TMDB.Validate(); err != nil {
		return fmt.Errorf("invalid TMDB settings: %w", err)
	}
	if c.Redis.Host != "" && c.Redis.CacheTTL <= 0 {
		return fmt.Errorf("TMDB_CACHE_TTL must be positive when REDIS_HOST is set")
	}

	if c.App.Environment == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		for _, o := range c.CORS.AllowedOrigins {
			if o == "*" {
				return fmt.Errorf("CORS_ALLOWED_ORIGINS must not be * in production")
			}
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
