package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// DBConfig groups everything needed to open the PostgreSQL pool.
type DBConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	// Schema, when set, becomes the search_path of every pooled connection.
	// Empty means the server default (public).
	Schema string

	// Pool sizing and lifecycle.
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Startup only: attempts to open the pool before giving up.
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB owns the connection pool shared by every repository.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

// NewPostgresDB creates an unconnected instance; call Connect before use.
func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
		Pool:   nil,
	}
}

// connectionString builds a postgresql:// DSN with escaped credentials.
func (db *PostgresDB) connectionString() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(db.Config.Username, db.Config.Password),
		Host:   fmt.Sprintf("%s:%d", db.Config.Host, db.Config.Port),
		Path:   "/" + db.Config.DBName,
	}
	if db.Config.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.Config.SSLMode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.connectionString())
	if err != nil {
		// the DSN carries the password, never echo it
		return nil, fmt.Errorf("failed to parse database config for %s:%d/%s",
			db.Config.Host, db.Config.Port, db.Config.DBName)
	}

	config.MaxConns = db.Config.MaxConns
	config.MinConns = db.Config.MinConns
	config.MaxConnLifetime = db.Config.MaxConnLifetime
	config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout
	if db.Config.Schema != "" {
		config.ConnConfig.RuntimeParams["search_path"] = pq.QuoteIdentifier(db.Config.Schema)
	}

	return config, nil
}

// connectWithRetry opens the pool with exponential backoff: delay * 2^(attempt-1).
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var lastErr error
	attempts := db.Config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		log.Info().Int("attempt", attempt).Int("max", attempts).Msg("[DATABASE] connection attempt")

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		pool, err := pgxpool.NewWithConfig(connectCtx, config)
		cancel()

		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				log.Info().Int("attempt", attempt).Msg("[DATABASE] connected")
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("[DATABASE] attempt failed")

		if attempt < attempts {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info().Dur("delay", delay).Msg("[DATABASE] retrying")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", attempts, lastErr)
}

// Connect configures the pool, connects with retry and verifies with a ping.
func (db *PostgresDB) Connect(ctx context.Context) error {
	log.Info().
		Str("host", db.Config.Host).
		Int("port", db.Config.Port).
		Str("database", db.Config.DBName).
		Msg("[DATABASE] initializing PostgreSQL pool")

	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool
	return nil
}

// HealthCheck pings the pool and verifies it holds at least one connection.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	stats := db.Pool.Stat()
	if stats.TotalConns() == 0 {
		return fmt.Errorf("no active database connections")
	}

	log.Debug().
		Int32("total", stats.TotalConns()).
		Int32("idle", stats.IdleConns()).
		Int32("acquired", stats.AcquiredConns()).
		Msg("[DATABASE] health check passed")

	return nil
}
