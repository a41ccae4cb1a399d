// ===============================
// internal/handlers/user_handler.go - User Profile HTTP Handler
// ===============================

package handlers

import (
	"net/http"

	"vidtube/internal/models"
	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type syncUserRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required"`
	FullName   string `json:"fullName"`
	Avatar     string `json:"avatar"`
	CoverImage string `json:"coverImage"`
}

// SyncUser upserts the authenticated user's profile from the auth token
// POST /api/v1/users/sync
func (h *UserHandler) SyncUser(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var request syncUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	user := &models.User{
		UID:        userID,
		Username:   request.Username,
		Email:      request.Email,
		FullName:   request.FullName,
		Avatar:     request.Avatar,
		CoverImage: request.CoverImage,
	}

	if err := h.service.SyncUser(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "User synced successfully")
}

// GetCurrentUser returns the authenticated user's profile
// GET /api/v1/users/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "User fetched successfully")
}

// GetChannelProfile returns a channel's profile with subscription counts
// GET /api/v1/users/c/:username
func (h *UserHandler) GetChannelProfile(c *gin.Context) {
	requesterID := c.GetString("userID")

	profile, err := h.service.GetChannelProfile(c.Request.Context(), requesterID, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, profile, "Channel profile fetched successfully")
}
