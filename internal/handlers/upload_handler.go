// ===============================
// internal/handlers/upload_handler.go - Media Upload HTTP Handler
// ===============================

package handlers

import (
	"net/http"

	"vidtube/internal/services"

	"github.com/gin-gonic/gin"
)

// Upload size caps, enforced before the object is streamed to storage.
const (
	maxVideoUploadSize = 500 << 20 // 500MB
	maxImageUploadSize = 10 << 20  // 10MB
)

var allowedUploadKinds = map[string]int64{
	"videos":     maxVideoUploadSize,
	"thumbnails": maxImageUploadSize,
	"avatars":    maxImageUploadSize,
	"covers":     maxImageUploadSize,
}

type UploadHandler struct {
	service *services.UploadService
}

func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// UploadFile stores a media object and returns its public URL
// POST /api/v1/upload/:kind
func (h *UploadHandler) UploadFile(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		respond(c, http.StatusUnauthorized, nil, "User not authenticated")
		return
	}

	kind := c.Param("kind")
	maxSize, ok := allowedUploadKinds[kind]
	if !ok {
		respond(c, http.StatusBadRequest, nil, "Unknown upload kind")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond(c, http.StatusBadRequest, nil, "File is required")
		return
	}
	if fileHeader.Size > maxSize {
		respond(c, http.StatusBadRequest, nil, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond(c, http.StatusBadRequest, nil, "Failed to read file")
		return
	}
	defer file.Close()

	url, err := h.service.UploadFile(c.Request.Context(), file, fileHeader.Filename, kind)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, gin.H{"url": url}, "File uploaded successfully")
}
