package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"actor-catalog/internal/shared/middleware"
	"actor-catalog/internal/shared/response"
	"actor-catalog/pkg/cache"
	"actor-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupActorRoutes(v1, c)
		setupTMDBRoutes(v1, c)
	}

	return router
}

// ========================================
// ACTOR ROUTES
// ========================================
func setupActorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	actors := v1.Group("/actors")
	{
		actors.GET("", c.ActorHandler.List)
		actors.GET("/:id", c.ActorHandler.GetByID)
		actors.POST("", c.ActorHandler.Create)
		actors.PUT("/:id", c.ActorHandler.Update)
		actors.DELETE("/:id", c.ActorHandler.Delete)
	}

	v1.GET("/countries", c.ActorHandler.ListCountries)
}

// ========================================
// TMDB ROUTES
// ========================================
func setupTMDBRoutes(v1 *gin.RouterGroup, c *container.Container) {
	t := v1.Group("/tmdb")
	{
		t.GET("/search", c.TMDBHandler.Search)
		t.GET("/search/:query", c.TMDBHandler.Search)
		t.GET("/actor/:id", c.TMDBHandler.GetDetails)
		t.GET("/actor/:id/profile", c.TMDBHandler.GetProfile)
		t.POST("/import/:id", c.TMDBHandler.Import)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		body := gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body["database"] = "unavailable"
		} else {
			body["database"] = "ok"
			if stats, err := c.DB.Stats(); err == nil {
				body["db_pool"] = stats
			}
		}

		switch err := c.Cache.Ping(checkCtx); {
		case err == nil:
			body["cache"] = "ok"
		case errors.Is(err, cache.ErrDisabled):
			body["cache"] = "disabled"
		default:
			body["cache"] = "unavailable"
		}

		if status != http.StatusOK {
			response.ErrorWithDetails(ctx, status, "UNHEALTHY", "dependency check failed", body)
			return
		}
		response.Success(ctx, status, body)
	}
}
