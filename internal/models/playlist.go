// ===============================
// internal/models/playlist.go - Playlist Model
// ===============================

package models

import (
	"strings"
	"time"
)

type Playlist struct {
	ID          string    `db:"id" json:"id"`
	OwnerID     string    `db:"owner_id" json:"ownerId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (p *Playlist) ValidateForCreation() []string {
	var errors []string

	if strings.TrimSpace(p.Name) == "" {
		errors = append(errors, "name is required")
	}
	if len(p.Name) > 255 {
		errors = append(errors, "name must be 255 characters or less")
	}

	return errors
}
