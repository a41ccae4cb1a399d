// ===============================
// internal/handlers/dashboard_handler.go - Channel Dashboard HTTP Handler
// ===============================

package handlers

import (
	"net/http"

	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetChannelStats returns the authenticated user's channel aggregates
// GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetChannelStats(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	stats, err := h.service.GetChannelStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, stats, "Channel stats fetched successfully")
}
