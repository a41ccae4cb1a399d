// ===============================
// internal/models/tweet.go - Tweet Model and Aggregated View
// ===============================

package models

import (
	"strings"
	"time"
)

const MaxTweetLength = 280

type Tweet struct {
	ID        string    `db:"id" json:"id"`
	OwnerID   string    `db:"owner_id" json:"ownerId"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type CreateTweetRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateTweetRequest struct {
	Content string `json:"content" binding:"required"`
}

func ValidateTweetContent(content string) []string {
	var errors []string

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		errors = append(errors, "content is required")
	}
	if len(trimmed) > MaxTweetLength {
		errors = append(errors, "content must be 280 characters or less")
	}

	return errors
}

// TweetOwnerInfo is the owner projection embedded in tweet views.
type TweetOwnerInfo struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	FullName string `json:"fullName"`
}

// TweetLiker is one user that liked a tweet, with their profile info.
type TweetLiker struct {
	LikedBy  string         `json:"likedBy"`
	UserInfo TweetOwnerInfo `json:"userInfo"`
}

// TweetResponse is a row of the user-tweets view: the tweet, its owner's
// profile, the computed like count and whether the requester liked it.
type TweetResponse struct {
	ID           string         `json:"id"`
	Content      string         `json:"content"`
	CreatedAt    time.Time      `json:"createdAt"`
	OwnerInfo    TweetOwnerInfo `json:"ownerInfo"`
	LikesCount   int            `json:"likesCount"`
	IsLiked      bool           `json:"isLiked"`
	LikedByUsers []TweetLiker   `json:"likedByUsers"`
}
