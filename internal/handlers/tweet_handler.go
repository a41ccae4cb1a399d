// ===============================
// internal/handlers/tweet_handler.go - Tweet CRUD and User-Tweets View
// ===============================

package handlers

import (
	"net/http"

	"vidtube/internal/models"
	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	service *services.TweetService
}

func NewTweetHandler(service *services.TweetService) *TweetHandler {
	return &TweetHandler{service: service}
}

// CreateTweet posts a new tweet for the authenticated user
// POST /api/v1/tweets
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var request models.CreateTweetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	tweet, err := h.service.CreateTweet(c.Request.Context(), userID, request.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, tweet, "Tweet created successfully")
}

// GetUserTweets lists a user's tweets with like aggregates, newest first
// GET /api/v1/tweets/user/:userId
func (h *TweetHandler) GetUserTweets(c *gin.Context) {
	requesterID := c.GetString("userID")

	tweets, err := h.service.GetUserTweets(c.Request.Context(), requesterID, c.Param("userId"), pageFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

// UpdateTweet edits the authenticated owner's tweet
// PATCH /api/v1/tweets/:tweetId
func (h *TweetHandler) UpdateTweet(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	var request models.UpdateTweetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request body")
		return
	}

	tweet, err := h.service.UpdateTweet(c.Request.Context(), c.Param("tweetId"), userID, request.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, tweet, "Tweet updated successfully")
}

// DeleteTweet removes the authenticated owner's tweet and its likes
// DELETE /api/v1/tweets/:tweetId
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	if err := h.service.DeleteTweet(c.Request.Context(), c.Param("tweetId"), userID); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Tweet deleted successfully")
}
