// ===============================
// internal/models/comment.go - Comment Model
// ===============================

package models

import (
	"strings"
	"time"
)

type Comment struct {
	ID        string    `db:"id" json:"id"`
	OwnerID   string    `db:"owner_id" json:"ownerId"`
	VideoID   string    `db:"video_id" json:"videoId"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (c *Comment) ValidateForCreation() []string {
	var errors []string

	content := strings.TrimSpace(c.Content)
	if content == "" {
		errors = append(errors, "content is required")
	}
	if len(content) > 500 {
		errors = append(errors, "content must be 500 characters or less")
	}

	return errors
}
