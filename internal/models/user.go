// ===============================
// internal/models/user.go - User Model and Profile Projections
// ===============================

package models

import (
	"strings"
	"time"
)

type User struct {
	UID          string    `db:"uid" json:"uid"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"fullName"`
	Avatar       string    `db:"avatar" json:"avatar"`
	CoverImage   string    `db:"cover_image" json:"coverImage"`
	PasswordHash string    `db:"password_hash" json:"-"`
	RefreshToken string    `db:"refresh_token" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// NormalizeUsername lowercases and trims a handle; handles are compared and
// stored case-normalized.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// OwnerInfo is the minimal owner projection embedded in video views.
type OwnerInfo struct {
	Avatar   string `db:"owner_avatar" json:"avatar"`
	FullName string `db:"owner_full_name" json:"fullName"`
}

// SubscriberInfo is the subscriber-side profile projection in subscription views.
type SubscriberInfo struct {
	SubscriberID string `db:"subscriber_id" json:"subscriberId"`
	Username     string `db:"username" json:"username"`
	Avatar       string `db:"avatar" json:"avatar"`
	FullName     string `db:"full_name" json:"fullName"`
}

// ChannelInfo is the channel-side profile projection in subscription views.
type ChannelInfo struct {
	ChannelID   string    `db:"channel_id" json:"channelId"`
	ChannelName string    `db:"channel_name" json:"channelName"`
	Avatar      string    `db:"avatar" json:"avatar"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// ChannelProfile is a user profile enriched with computed subscription counts.
type ChannelProfile struct {
	UID                     string    `json:"uid"`
	Username                string    `json:"username"`
	FullName                string    `json:"fullName"`
	Avatar                  string    `json:"avatar"`
	CoverImage              string    `json:"coverImage"`
	SubscribersCount        int       `json:"subscribersCount"`
	ChannelsSubscribedCount int       `json:"channelsSubscribedCount"`
	IsSubscribed            bool      `json:"isSubscribed"`
	CreatedAt               time.Time `json:"createdAt"`
}

// ChannelStats is the dashboard aggregate for a channel, recomputed per request.
type ChannelStats struct {
	Subscribers       int   `json:"subscribers"`
	TotalVideos       int   `json:"totalVideos"`
	TotalVideoViews   int64 `json:"totalVideoViews"`
	TotalVideoLikes   int   `json:"totalVideoLikes"`
	TotalTweetLikes   int   `json:"totalTweetLikes"`
	TotalCommentLikes int   `json:"totalCommentLikes"`
}
