package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"actor-catalog/internal/config"
	"actor-catalog/internal/domains/actor/gateway/tmdb"
	actorHandler "actor-catalog/internal/domains/actor/handler"
	actorRepo "actor-catalog/internal/domains/actor/repository"
	actorService "actor-catalog/internal/domains/actor/service"
	infraCache "actor-catalog/internal/infrastructure/cache"
	"actor-catalog/internal/infrastructure/database"
	"actor-catalog/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every long-lived dependency of the API process.
// Everything is constructed once here and passed down explicitly.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *infraCache.RedisClient // nil when the cache is disabled
	Cache  cache.Cache
	TMDB   tmdb.Client

	// Repositories
	ActorRepo actorRepo.Store

	// Services
	ActorService  actorService.ServiceInterface
	ImportService actorService.ImportServiceInterface

	// Handlers
	ActorHandler *actorHandler.ActorHandler
	TMDBHandler  *actorHandler.TMDBHandler

	stopMonitor func()
}

// NewContainer builds the dependency graph in order:
// database → cache → provider client → repositories → services → handlers.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Msg("initializing DI container")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.HealthCheck(ctx); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	if cfg.Migrate.OnStartup {
		applied, err := database.Migrate(ctx, db.Pool, cfg.Database.Schema)
		if err != nil {
			c.Cleanup()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info().Strs("applied", applied).Msg("database migrations up to date")
	}

	if cfg.Migrate.MonitorInterval > 0 {
		c.stopMonitor = db.StartMonitor(cfg.Migrate.MonitorInterval)
	}

	// ========================================
	// STEP 2: CACHE (optional, non-critical)
	// ========================================
	c.Cache = cache.Noop{}
	if cfg.Redis.Host != "" {
		rc := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, provider responses will not be cached")
			_ = rc.Close()
		} else {
			c.Redis = rc
			c.Cache = infraCache.NewRedisCache(rc.Client, "actor-catalog:")
		}
	}

	// ========================================
	// STEP 3: PROVIDER CLIENT
	// ========================================
	client, err := tmdb.NewClient(&cfg.TMDB)
	if err != nil {
		c.Cleanup()
		return nil, err
	}
	c.TMDB = client
	if c.Redis != nil {
		c.TMDB = tmdb.NewCachedClient(client, c.Cache, cfg.Redis.CacheTTL, cfg.TMDB.Language)
	}

	// ========================================
	// STEP 4: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.ActorRepo = actorRepo.NewPostgresRepository(db.Pool)

	c.ActorService = actorService.NewActorService(c.ActorRepo)
	c.ImportService = actorService.NewImportService(c.ActorService, c.TMDB, cfg.TMDB.ImageBaseURL)

	c.ActorHandler = actorHandler.NewActorHandler(c.ActorService)
	c.TMDBHandler = actorHandler.NewTMDBHandler(c.ImportService)

	log.Info().Msg("DI container initialized")
	return c, nil
}

// Cleanup releases pooled resources. Called on shutdown.
// The pool monitor is stopped and drained before the pool is closed.
func (c *Container) Cleanup() {
	if c.stopMonitor != nil {
		c.stopMonitor()
		c.stopMonitor = nil
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}

	if c.DB != nil {
		_ = c.DB.Close()
	}

	log.Info().Msg("container cleanup completed")
}
