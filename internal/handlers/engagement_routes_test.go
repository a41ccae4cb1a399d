package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newEngagementRouter wires the engagement routes with services that have no
// database behind them. Every request below is rejected by reference
// validation before any store access, so the nil connection is never touched.
func newEngagementRouter(userID string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	})

	likeHandler := NewLikeHandler(services.NewLikeService(nil))
	subscriptionHandler := NewSubscriptionHandler(services.NewSubscriptionService(nil))
	tweetHandler := NewTweetHandler(services.NewTweetService(nil))

	router.POST("/likes/video/:videoId", likeHandler.ToggleVideoLike)
	router.POST("/likes/comment/:commentId", likeHandler.ToggleCommentLike)
	router.POST("/likes/tweet/:tweetId", likeHandler.ToggleTweetLike)
	router.POST("/subscriptions/:channelId", subscriptionHandler.ToggleSubscription)
	router.GET("/subscriptions/:channelId/:resource", subscriptionHandler.GetSubscriptionView)
	router.PATCH("/tweets/:tweetId", tweetHandler.UpdateTweet)

	return router
}

func TestToggleRoutesRejectMalformedReferences(t *testing.T) {
	router := newEngagementRouter("user-1")

	for _, path := range []string{
		"/likes/video/not-a-uuid",
		"/likes/comment/12345",
		"/likes/tweet/zzz",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}
}

func TestToggleRoutesRequireAuthentication(t *testing.T) {
	router := newEngagementRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/likes/video/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	// The auth check runs before reference validation
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestToggleSubscriptionRejectsSelf(t *testing.T) {
	router := newEngagementRouter("user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscriptions/user-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionViewDispatch(t *testing.T) {
	router := newEngagementRouter("user-1")

	// A user reference longer than the UID bound is rejected up front
	oversized := strings.Repeat("a", 200)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subscriptions/u/"+oversized, nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/subscriptions/"+oversized+"/subscribers", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Neither the "u" shorthand nor "subscribers": nothing to serve
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/subscriptions/channel-1/videos", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTweetValidation(t *testing.T) {
	router := newEngagementRouter("user-1")

	// Malformed tweet reference fails before content validation
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/tweets/not-a-uuid",
		strings.NewReader(`{"content":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing body fails binding
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/tweets/not-a-uuid", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
