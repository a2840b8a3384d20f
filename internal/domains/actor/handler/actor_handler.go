package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"actor-catalog/internal/domains/actor/model"
	"actor-catalog/internal/domains/actor/service"
	"actor-catalog/internal/shared/response"
)

type ActorHandler struct {
	service service.ServiceInterface
}

func NewActorHandler(svc service.ServiceInterface) *ActorHandler {
	return &ActorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /v1/actors?page=1&per_page=10
// ════════════════════════════════════════════════════════════════

func (h *ActorHandler) List(c *gin.Context) {
	page := queryInt(c, "page", model.DefaultPage)
	perPage := queryInt(c, "per_page", model.DefaultPerPage)

	result, err := h.service.List(c.Request.Context(), page, perPage)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/actors/:id
// ════════════════════════════════════════════════════════════════

func (h *ActorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/actors
// ════════════════════════════════════════════════════════════════

func (h *ActorHandler) Create(c *gin.Context) {
	var req model.ActorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid JSON body: "+err.Error())
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/actors/:id (partial, only supplied fields change)
// ════════════════════════════════════════════════════════════════

func (h *ActorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.ActorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid JSON body: "+err.Error())
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/actors/:id
// ════════════════════════════════════════════════════════════════

func (h *ActorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"done": true})
}

// GET /v1/countries
func (h *ActorHandler) ListCountries(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, countries)
}
