// ===============================
// internal/handlers/video_handler.go - Video HTTP Handler
// ===============================

package handlers

import (
	"net/http"

	"vidtube/internal/models"
	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	service *services.VideoService
}

func NewVideoHandler(service *services.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

// ===============================
// CRUD ENDPOINTS
// ===============================

// CreateVideo registers an uploaded video; it starts unpublished
// POST /api/v1/videos
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var request models.CreateVideoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	video := &models.Video{
		OwnerID:     userID,
		VideoFile:   request.VideoFile,
		Thumbnail:   request.Thumbnail,
		Title:       request.Title,
		Description: request.Description,
		Duration:    request.Duration,
	}

	videoID, err := h.service.CreateVideo(c.Request.Context(), video)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{"id": videoID}, "Video created successfully")
}

// GetVideo fetches one video, bumping its view count
// GET /api/v1/videos/:videoId
func (h *VideoHandler) GetVideo(c *gin.Context) {
	requesterID := c.GetString("userID")

	video, err := h.service.GetVideo(c.Request.Context(), c.Param("videoId"), requesterID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video fetched successfully")
}

// GetVideos lists published videos with search, sort and pagination
// GET /api/v1/videos?query=&userId=&sortBy=&sortType=&page=&limit=
func (h *VideoHandler) GetVideos(c *gin.Context) {
	requesterID := c.GetString("userID")

	params := models.VideoSearchParams{
		Query:    c.Query("query"),
		OwnerID:  c.Query("userId"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		Page:     pageFromQuery(c),
	}

	videos, err := h.service.GetVideos(c.Request.Context(), requesterID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "Videos fetched successfully")
}

// UpdateVideo edits title, description or thumbnail
// PATCH /api/v1/videos/:videoId
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var request models.UpdateVideoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	video, err := h.service.UpdateVideo(c.Request.Context(), c.Param("videoId"), userID, request)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video updated successfully")
}

// TogglePublishStatus flips the publication flag
// PATCH /api/v1/videos/toggle/publish/:videoId
func (h *VideoHandler) TogglePublishStatus(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	isPublished, err := h.service.TogglePublishStatus(c.Request.Context(), c.Param("videoId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Video unpublished"
	if isPublished {
		message = "Video published"
	}
	respond(c, http.StatusOK, gin.H{"isPublished": isPublished}, message)
}

// DeleteVideo removes the video, its engagement edges and media objects
// DELETE /api/v1/videos/:videoId
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	if err := h.service.DeleteVideo(c.Request.Context(), c.Param("videoId"), userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Video deleted successfully")
}

// GetWatchHistory lists the authenticated user's watch history
// GET /api/v1/videos/history
func (h *VideoHandler) GetWatchHistory(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	entries, err := h.service.GetWatchHistory(c.Request.Context(), userID, pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, entries, "Watch history fetched successfully")
}
