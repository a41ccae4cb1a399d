// ===============================
// internal/handlers/comment_handler.go - Comment HTTP Handler
// ===============================

package handlers

import (
	"net/http"

	"vidtube/internal/models"
	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service *services.CommentService
}

func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateComment adds a comment to a video
// POST /api/v1/comments/:videoId
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var request models.CreateCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), userID, c.Param("videoId"), request.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, comment, "Comment added successfully")
}

// GetVideoComments lists a video's comments, newest first
// GET /api/v1/comments/:videoId
func (h *CommentHandler) GetVideoComments(c *gin.Context) {
	comments, err := h.service.GetVideoComments(c.Request.Context(), c.Param("videoId"), pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, comments, "Comments fetched successfully")
}

// UpdateComment edits the authenticated owner's comment
// PATCH /api/v1/comments/c/:commentId
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var request models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	comment, err := h.service.UpdateComment(c.Request.Context(), c.Param("commentId"), userID, request.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment removes the comment and its likes
// DELETE /api/v1/comments/c/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), c.Param("commentId"), userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Comment deleted successfully")
}
