// ===============================
// internal/handlers/like_handler.go - Like Toggles and Liked-Videos View
// ===============================

package handlers

import (
	"net/http"

	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	service *services.LikeService
}

func NewLikeHandler(service *services.LikeService) *LikeHandler {
	return &LikeHandler{service: service}
}

// ToggleVideoLike flips the authenticated user's like on a video
// POST /api/v1/likes/video/:videoId
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	result, err := h.service.ToggleVideoLike(c.Request.Context(), userID, c.Param("videoId"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Like removed"
	if result.Liked {
		message = "Like added"
	}
	respond(c, http.StatusOK, result, message)
}

// ToggleCommentLike flips the authenticated user's like on a comment
// POST /api/v1/likes/comment/:commentId
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	result, err := h.service.ToggleCommentLike(c.Request.Context(), userID, c.Param("commentId"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Like removed"
	if result.Liked {
		message = "Like added"
	}
	respond(c, http.StatusOK, result, message)
}

// ToggleTweetLike flips the authenticated user's like on a tweet
// POST /api/v1/likes/tweet/:tweetId
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	result, err := h.service.ToggleTweetLike(c.Request.Context(), userID, c.Param("tweetId"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Like removed"
	if result.Liked {
		message = "Like added"
	}
	respond(c, http.StatusOK, result, message)
}

// GetLikedVideos lists the videos the authenticated user has liked
// GET /api/v1/likes/videos
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	videos, err := h.service.GetLikedVideos(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
