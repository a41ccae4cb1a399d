// ===============================
// internal/services/upload.go
// ===============================

package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"vidtube/internal/storage"

	"github.com/google/uuid"
)

type UploadService struct {
	r2Client *storage.R2Client
}

func NewUploadService(r2Client *storage.R2Client) *UploadService {
	return &UploadService{r2Client: r2Client}
}

// UploadFile stores the file under a unique key prefixed by its kind
// (videos, thumbnails, avatars, covers) and returns the public URL.
func (s *UploadService) UploadFile(ctx context.Context, file multipart.File, filename, fileKind string) (string, error) {
	ext := getFileExtension(filename)
	uniqueFilename := fmt.Sprintf("%s/%d_%s%s", fileKind, time.Now().Unix(), uuid.New().String()[:8], ext)

	contentType := getContentType(ext)

	err := s.r2Client.UploadFile(ctx, uniqueFilename, file, contentType)
	if err != nil {
		return "", err
	}

	return s.r2Client.GetPublicURL(uniqueFilename), nil
}

func getFileExtension(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i:]
		}
	}
	return ""
}

func getContentType(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}
