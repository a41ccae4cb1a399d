// main.go - VidTube engagement and content API server
package main

import (
	"log"
	"strings"
	"sync"
	"time"

	"vidtube/internal/config"
	"vidtube/internal/database"
	"vidtube/internal/handlers"
	"vidtube/internal/middleware"
	"vidtube/internal/services"
	"vidtube/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Environment)

	// Initialize database connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	// Run database migrations
	log.Println("🔧 Running database migrations...")
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize Firebase service
	firebaseService, err := services.NewFirebaseService(cfg)
	if err != nil {
		log.Fatal("Failed to initialize Firebase service:", err)
	}

	// Initialize R2 storage
	r2Client, err := storage.NewR2Client(cfg.R2Config)
	if err != nil {
		log.Fatal("Failed to initialize R2 client:", err)
	}

	// Initialize services
	userService := services.NewUserService(db)
	videoService := services.NewVideoService(db, r2Client)
	likeService := services.NewLikeService(db)
	subscriptionService := services.NewSubscriptionService(db)
	tweetService := services.NewTweetService(db)
	commentService := services.NewCommentService(db)
	playlistService := services.NewPlaylistService(db)
	dashboardService := services.NewDashboardService(db)
	uploadService := services.NewUploadService(r2Client)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	videoHandler := handlers.NewVideoHandler(videoService)
	likeHandler := handlers.NewLikeHandler(likeService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	tweetHandler := handlers.NewTweetHandler(tweetService)
	commentHandler := handlers.NewCommentHandler(commentService)
	playlistHandler := handlers.NewPlaylistHandler(playlistService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Initialize rate limiter
	rateLimiter := NewRateLimiter()

	// Setup router
	router := setupRouter(cfg, rateLimiter)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		dbStats := database.Stats()

		c.JSON(200, gin.H{
			"status":   "healthy",
			"database": database.Health() == nil,
			"app":      "vidtube-engagement-api",
			"database_stats": gin.H{
				"open_connections": dbStats.OpenConnections,
				"in_use":           dbStats.InUse,
				"idle":             dbStats.Idle,
			},
		})
	})

	// Setup routes
	setupRoutes(router, firebaseService, userHandler, videoHandler, likeHandler,
		subscriptionHandler, tweetHandler, commentHandler, playlistHandler,
		dashboardHandler, uploadHandler)

	// Start server
	log.Printf("🚀 VidTube Engagement API starting on port %s", cfg.Port)
	log.Printf("🌍 Environment: %s", cfg.Environment)
	log.Printf("💾 Database connected (Max: 50, Idle: 25)")
	log.Printf("🔥 Firebase service initialized")
	log.Printf("☁️  R2 storage initialized")
	log.Printf("📱 Features enabled:")
	log.Printf("   • Videos and watch history: ✅")
	log.Printf("   • Likes (videos, comments, tweets): ✅")
	log.Printf("   • Subscriptions: ✅")
	log.Printf("   • Tweets: ✅")
	log.Printf("   • Playlists: ✅")
	log.Printf("   • Channel dashboard: ✅")

	log.Fatal(router.Run(":" + cfg.Port))
}

func setupRouter(cfg *config.Config, rateLimiter *RateLimiter) *gin.Engine {
	router := gin.Default()

	// GZIP compression, skipping media containers that are already compressed
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedExtensions([]string{
		".mp4", ".mov", ".webm", ".mp3", ".wav", ".ogg"})))

	// Rate limiting
	router.Use(createRateLimitMiddleware(rateLimiter))

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Authorization",
			"Range", "Accept-Ranges",
			"Cache-Control", "If-None-Match", "If-Modified-Since",
		},
		ExposeHeaders: []string{
			"Content-Length", "Content-Range", "Accept-Ranges",
			"Cache-Control", "Last-Modified", "ETag",
			"X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After",
		},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Security headers
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Next()
	})

	return router
}

func setupRoutes(
	router *gin.Engine,
	firebaseService *services.FirebaseService,
	userHandler *handlers.UserHandler,
	videoHandler *handlers.VideoHandler,
	likeHandler *handlers.LikeHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	tweetHandler *handlers.TweetHandler,
	commentHandler *handlers.CommentHandler,
	playlistHandler *handlers.PlaylistHandler,
	dashboardHandler *handlers.DashboardHandler,
	uploadHandler *handlers.UploadHandler,
) {
	api := router.Group("/api/v1")

	// ===============================
	// PUBLIC ROUTES
	// ===============================
	public := api.Group("")
	{
		public.GET("/videos", videoHandler.GetVideos)
		public.GET("/videos/:videoId", videoHandler.GetVideo)
		public.GET("/comments/:videoId", commentHandler.GetVideoComments)
		public.GET("/playlists/user/:userId", playlistHandler.GetUserPlaylists)
		public.GET("/users/c/:username", userHandler.GetChannelProfile)
	}

	// ===============================
	// PROTECTED ROUTES
	// ===============================
	protected := api.Group("")
	protected.Use(middleware.FirebaseAuth(firebaseService))
	{
		// ===== USER PROFILES =====
		protected.POST("/users/sync", userHandler.SyncUser)
		protected.GET("/users/me", userHandler.GetCurrentUser)

		// ===== VIDEOS =====
		protected.POST("/videos", videoHandler.CreateVideo)
		protected.PATCH("/videos/:videoId", videoHandler.UpdateVideo)
		protected.DELETE("/videos/:videoId", videoHandler.DeleteVideo)
		protected.PATCH("/videos/toggle/publish/:videoId", videoHandler.TogglePublishStatus)
		protected.GET("/videos/history", videoHandler.GetWatchHistory)

		// ===== LIKES =====
		protected.POST("/likes/video/:videoId", likeHandler.ToggleVideoLike)
		protected.POST("/likes/comment/:commentId", likeHandler.ToggleCommentLike)
		protected.POST("/likes/tweet/:tweetId", likeHandler.ToggleTweetLike)
		protected.GET("/likes/videos", likeHandler.GetLikedVideos)

		// ===== SUBSCRIPTIONS =====
		protected.POST("/subscriptions/:channelId", subscriptionHandler.ToggleSubscription)
		// Both subscription views live on one route because the first
		// segment is either the literal "u" or a channel reference.
		protected.GET("/subscriptions/:channelId/:resource", subscriptionHandler.GetSubscriptionView)

		// ===== TWEETS =====
		protected.POST("/tweets", tweetHandler.CreateTweet)
		protected.GET("/tweets/user/:userId", tweetHandler.GetUserTweets)
		protected.PATCH("/tweets/:tweetId", tweetHandler.UpdateTweet)
		protected.DELETE("/tweets/:tweetId", tweetHandler.DeleteTweet)

		// ===== COMMENTS =====
		protected.POST("/comments/:videoId", commentHandler.CreateComment)
		protected.PATCH("/comments/c/:commentId", commentHandler.UpdateComment)
		protected.DELETE("/comments/c/:commentId", commentHandler.DeleteComment)

		// ===== PLAYLISTS =====
		protected.POST("/playlists", playlistHandler.CreatePlaylist)
		protected.PATCH("/playlists/add/:playlistId/:videoId", playlistHandler.AddVideo)
		protected.PATCH("/playlists/remove/:playlistId/:videoId", playlistHandler.RemoveVideo)
		protected.DELETE("/playlists/:playlistId", playlistHandler.DeletePlaylist)

		// ===== DASHBOARD =====
		protected.GET("/dashboard/stats", dashboardHandler.GetChannelStats)

		// ===== FILE UPLOAD =====
		protected.POST("/upload/:kind", uploadHandler.UploadFile)
	}
}

// ===============================
// RATE LIMITER
// ===============================

type RateLimiter struct {
	visitors map[string]*Visitor
	mutex    sync.RWMutex
}

type Visitor struct {
	requests int
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*Visitor),
	}
	go rl.cleanupRoutine()
	return rl
}

func (rl *RateLimiter) Allow(ip string, limit int, window time.Duration) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	visitor, exists := rl.visitors[ip]
	now := time.Now()

	if !exists || now.Sub(visitor.lastSeen) > window {
		rl.visitors[ip] = &Visitor{
			requests: 1,
			lastSeen: now,
		}
		return true
	}

	if visitor.requests >= limit {
		return false
	}

	visitor.requests++
	visitor.lastSeen = now
	return true
}

func (rl *RateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		rl.cleanup()
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, visitor := range rl.visitors {
		if visitor.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

func createRateLimitMiddleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		path := c.Request.URL.Path

		var limit int
		window := time.Minute

		if strings.Contains(path, "/likes") || strings.Contains(path, "/subscriptions") {
			limit = 300 // toggles are chatty
		} else if strings.Contains(path, "/upload") {
			limit = 20
		} else if strings.Contains(path, "/videos") {
			limit = 100
		} else {
			limit = 200
		}

		if !rateLimiter.Allow(ip, limit, window) {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "60")

			c.JSON(429, gin.H{
				"error":   "Rate limit exceeded",
				"message": "Too many requests, please try again later",
				"limit":   limit,
				"window":  window.String(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
