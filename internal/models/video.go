// ===============================
// internal/models/video.go - Video Model, Requests and View Rows
// ===============================

package models

import (
	"strings"
	"time"
)

type Video struct {
	ID          string    `db:"id" json:"id"`
	OwnerID     string    `db:"owner_id" json:"ownerId"`
	VideoFile   string    `db:"video_file" json:"videoFile"`
	Thumbnail   string    `db:"thumbnail" json:"thumbnail"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Duration    float64   `db:"duration" json:"duration"`
	Views       int64     `db:"views" json:"views"`
	IsPublished bool      `db:"is_published" json:"isPublished"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateVideoRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	VideoFile   string  `json:"videoFile" binding:"required"`
	Thumbnail   string  `json:"thumbnail"`
	Duration    float64 `json:"duration"`
}

type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Thumbnail   *string `json:"thumbnail"`
}

func (v *Video) ValidateForCreation() []string {
	var errors []string

	title := strings.TrimSpace(v.Title)
	if title == "" {
		errors = append(errors, "title is required")
	}
	if len(title) > 255 {
		errors = append(errors, "title must be 255 characters or less")
	}
	if v.VideoFile == "" {
		errors = append(errors, "video file reference is required")
	}
	if v.Duration < 0 {
		errors = append(errors, "duration cannot be negative")
	}

	return errors
}

// VideoSearchParams drives the video listing query.
type VideoSearchParams struct {
	Query    string
	OwnerID  string
	SortBy   string
	SortType string
	Page     PageParams
}

// LikedVideo is a row of the liked-videos view: the video joined to its
// owner's profile, ordered by when the like edge was created.
type LikedVideo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	Duration  float64   `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
	Views     int64     `json:"views"`
	Owner     OwnerInfo `json:"owner"`
}

// WatchHistoryEntry is a watched video joined to its owner's profile.
type WatchHistoryEntry struct {
	Video     LikedVideo `json:"video"`
	WatchedAt time.Time  `json:"watchedAt"`
}
