// ===============================
// internal/handlers/subscription_handler.go - Subscription Toggle and Views
// ===============================

package handlers

import (
	"net/http"

	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	service *services.SubscriptionService
}

func NewSubscriptionHandler(service *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// ToggleSubscription flips the authenticated user's subscription to a channel
// POST /api/v1/subscriptions/:channelId
func (h *SubscriptionHandler) ToggleSubscription(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	result, err := h.service.ToggleSubscription(c.Request.Context(), userID, c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Unsubscribed"
	if result.Subscribed {
		message = "Subscribed"
	}
	respond(c, http.StatusOK, result, message)
}

// GetSubscriptionView serves both subscription views from one route because
// gin's tree cannot hold /subscriptions/u/:id next to
// /subscriptions/:id/subscribers.
//
// GET /api/v1/subscriptions/u/:subscriberId        -> subscribed channels
// GET /api/v1/subscriptions/:channelId/subscribers -> channel subscribers
func (h *SubscriptionHandler) GetSubscriptionView(c *gin.Context) {
	first := c.Param("channelId")
	second := c.Param("resource")

	if first == "u" {
		view, err := h.service.GetSubscribedChannels(c.Request.Context(), second)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, view, "Subscribed channels fetched successfully")
		return
	}

	if second == "subscribers" {
		view, err := h.service.GetChannelSubscribers(c.Request.Context(), first)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, view, "Channel subscribers fetched successfully")
		return
	}

	respond(c, http.StatusNotFound, nil, "not found")
}
