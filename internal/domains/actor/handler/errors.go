package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"actor-catalog/internal/domains/actor/gateway/tmdb"
	"actor-catalog/internal/domains/actor/model"
	"actor-catalog/internal/shared/response"
)

// writeError maps service errors onto the response envelope.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var ve *model.ValidationError
	if errors.As(err, &ve) {
		details := gin.H{}
		if len(ve.Missing) > 0 {
			details["missing_fields"] = ve.Missing
		}
		if len(ve.Invalid) > 0 {
			details["invalid_fields"] = ve.Invalid
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, model.ToErrorCode(err), ve.Error(), details)
		return
	}

	var upErr *tmdb.UpstreamError
	if errors.As(err, &upErr) {
		response.ErrorWithDetails(c, upErr.HTTPStatus(), "UPSTREAM_ERROR", upErr.Error(), gin.H{
			"provider_status": upErr.StatusCode,
			"endpoint":        upErr.Endpoint,
		})
		return
	}

	status := model.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("request failed")
	}
	response.ErrorResponse(c, status, model.ToErrorCode(err), err.Error())
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		writeError(c, model.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// queryInt falls back to def when the parameter is absent or not an integer.
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}
