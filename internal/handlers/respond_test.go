package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/models"
	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid id", services.ErrInvalidID, http.StatusBadRequest},
		{"validation", services.ErrValidation, http.StatusBadRequest},
		{"self subscription", services.ErrSelfSubscription, http.StatusBadRequest},
		{"access denied", services.ErrAccessDenied, http.StatusUnauthorized},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"no rows folds into not found", sql.ErrNoRows, http.StatusNotFound},
		{"toggle conflict", services.ErrConflict, http.StatusConflict},
		{"wrapped sentinel", errors.New("wrapped"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body models.ApiResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.StatusCode)
		})
	}
}

func TestRespondEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respond(c, http.StatusOK, []string{}, "fetched")

	assert.Equal(t, http.StatusOK, w.Code)

	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, body.StatusCode)
	assert.Equal(t, "fetched", body.Message)

	// An empty collection stays an empty JSON array, never null
	assert.Equal(t, []interface{}{}, body.Data)
}

func TestPageFromQuery(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=3&limit=15", nil)

	page := pageFromQuery(c)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 15, page.Limit)

	// Unparseable values zero out and fall back to defaults
	// (fresh context per request: gin caches query params per context)
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?page=junk&limit=junk", nil)
	page = pageFromQuery(c).Normalized()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, models.DefaultPageSize, page.Limit)

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	page = pageFromQuery(c).Normalized()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, models.DefaultPageSize, page.Limit)
}
