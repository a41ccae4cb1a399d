// ===============================
// internal/handlers/respond.go - Response Envelope and Error Mapping
// ===============================

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"vidtube/internal/models"
	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
)

// respond wraps the payload in the standard envelope. Empty collections are a
// 200 with an empty data slice, never an error status.
func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, models.NewApiResponse(status, data, message))
}

// respondError translates a service error onto the HTTP status contract:
// malformed references 400, ownership failures 401, missing or hidden
// entities 404, lost toggle races 409, anything unexpected 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrSelfSubscription):
		respond(c, http.StatusBadRequest, nil, err.Error())
	case errors.Is(err, services.ErrAccessDenied):
		respond(c, http.StatusUnauthorized, nil, err.Error())
	case errors.Is(err, services.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		respond(c, http.StatusNotFound, nil, err.Error())
	case errors.Is(err, services.ErrConflict):
		respond(c, http.StatusConflict, nil, err.Error())
	default:
		respond(c, http.StatusInternalServerError, nil, "internal server error")
	}
}

// pageFromQuery reads ?page= and ?limit=. Unparseable or out-of-range values
// fall back to defaults downstream via Normalized.
func pageFromQuery(c *gin.Context) models.PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(models.DefaultPageSize)))
	return models.PageParams{Page: page, Limit: limit}
}
