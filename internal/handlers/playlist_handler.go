// ===============================
// internal/handlers/playlist_handler.go - Playlist HTTP Handler
// ===============================

package handlers

import (
	"net/http"

	"vidtube/internal/models"
	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	service *services.PlaylistService
}

func NewPlaylistHandler(service *services.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

// CreatePlaylist creates a playlist for the authenticated user
// POST /api/v1/playlists
func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var request models.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	playlist, err := h.service.CreatePlaylist(c.Request.Context(), userID, request.Name, request.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// GetUserPlaylists lists a user's playlists
// GET /api/v1/playlists/user/:userId
func (h *PlaylistHandler) GetUserPlaylists(c *gin.Context) {
	playlists, err := h.service.GetUserPlaylists(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

// AddVideo puts a video into the authenticated owner's playlist
// PATCH /api/v1/playlists/add/:playlistId/:videoId
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	if err := h.service.AddVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Video added to playlist")
}

// RemoveVideo drops a video from the authenticated owner's playlist
// PATCH /api/v1/playlists/remove/:playlistId/:videoId
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	if err := h.service.RemoveVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Video removed from playlist")
}

// DeletePlaylist removes the playlist and its membership rows
// DELETE /api/v1/playlists/:playlistId
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	if err := h.service.DeletePlaylist(c.Request.Context(), c.Param("playlistId"), userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Playlist deleted successfully")
}
