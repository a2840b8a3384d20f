package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"actor-catalog/internal/domains/actor/service"
	"actor-catalog/internal/shared/response"
)

// TMDBHandler exposes provider search, details and import.
type TMDBHandler struct {
	service service.ImportServiceInterface
}

func NewTMDBHandler(svc service.ImportServiceInterface) *TMDBHandler {
	return &TMDBHandler{service: svc}
}

// Search serves both GET /v1/tmdb/search?query= and GET /v1/tmdb/search/:query.
// The provider's page is returned unmodified.
func (h *TMDBHandler) Search(c *gin.Context) {
	query := c.Param("query")
	if query == "" {
		query = c.Query("query")
	}

	result, err := h.service.Search(c.Request.Context(), query, queryInt(c, "page", 1))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GET /v1/tmdb/actor/:id
func (h *TMDBHandler) GetDetails(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetDetails(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// GET /v1/tmdb/actor/:id/profile
func (h *TMDBHandler) GetProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// POST /v1/tmdb/import/:id
func (h *TMDBHandler) Import(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.Import(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a)
}
