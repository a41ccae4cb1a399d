// ===============================
// internal/models/like.go - Like Edge (tagged union over target kind)
// ===============================

package models

import "time"

// LikeTargetKind discriminates what a like edge points at. Exactly one kind
// is set per edge; the (user, kind, target) triple is unique.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

func (k LikeTargetKind) Valid() bool {
	switch k {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

type Like struct {
	ID         string         `db:"id" json:"id"`
	UserID     string         `db:"user_id" json:"likedBy"`
	TargetKind LikeTargetKind `db:"target_kind" json:"targetKind"`
	TargetID   string         `db:"target_id" json:"targetId"`
	CreatedAt  time.Time      `db:"created_at" json:"createdAt"`
}

// ToggleResult reports the edge state after a toggle call.
type ToggleResult struct {
	Liked bool `json:"liked"`
}
