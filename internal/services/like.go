// ===============================
// internal/services/like.go - Reaction Toggle Service and Liked-Videos View
// ===============================

package services

import (
	"context"
	"database/sql"
	"time"

	"vidtube/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LikeService struct {
	db    *sqlx.DB
	guard VisibilityGuard
}

func NewLikeService(db *sqlx.DB) *LikeService {
	return &LikeService{db: db}
}

// ===============================
// TOGGLE OPERATIONS
// ===============================

// ToggleVideoLike flips the like edge between user and video. Unpublished
// videos are likeable only by their owner; everyone else gets not-found.
func (s *LikeService) ToggleVideoLike(ctx context.Context, userID, videoID string) (*models.ToggleResult, error) {
	if !s.guard.ValidContentID(videoID) {
		return nil, ErrInvalidID
	}

	var target struct {
		OwnerID     string `db:"owner_id"`
		IsPublished bool   `db:"is_published"`
	}
	err := s.db.GetContext(ctx, &target, "SELECT owner_id, is_published FROM videos WHERE id = $1", videoID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !s.guard.CanViewVideo(userID, target.OwnerID, target.IsPublished) {
		return nil, ErrNotFound
	}

	return s.toggle(ctx, userID, models.LikeTargetVideo, videoID)
}

// ToggleCommentLike flips the like edge between user and comment.
func (s *LikeService) ToggleCommentLike(ctx context.Context, userID, commentID string) (*models.ToggleResult, error) {
	if !s.guard.ValidContentID(commentID) {
		return nil, ErrInvalidID
	}

	if err := s.requireExists(ctx, "comments", commentID); err != nil {
		return nil, err
	}

	return s.toggle(ctx, userID, models.LikeTargetComment, commentID)
}

// ToggleTweetLike flips the like edge between user and tweet.
func (s *LikeService) ToggleTweetLike(ctx context.Context, userID, tweetID string) (*models.ToggleResult, error) {
	if !s.guard.ValidContentID(tweetID) {
		return nil, ErrInvalidID
	}

	if err := s.requireExists(ctx, "tweets", tweetID); err != nil {
		return nil, err
	}

	return s.toggle(ctx, userID, models.LikeTargetTweet, tweetID)
}

func (s *LikeService) requireExists(ctx context.Context, table, id string) error {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM " + table + " WHERE id = $1)"
	if err := s.db.GetContext(ctx, &exists, query, id); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return nil
}

// toggle removes the edge if present, otherwise creates it. Each step is a
// single atomic statement keyed by the uniqueness tuple, so two concurrent
// toggles cannot both succeed: the loser of a delete race falls through to
// the insert, and the loser of an insert race observes zero rows from
// ON CONFLICT DO NOTHING and reports a conflict for the caller to retry.
func (s *LikeService) toggle(ctx context.Context, userID string, kind models.LikeTargetKind, targetID string) (*models.ToggleResult, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM likes WHERE user_id = $1 AND target_kind = $2 AND target_id = $3",
		userID, string(kind), targetID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n > 0 {
		return &models.ToggleResult{Liked: false}, nil
	}

	res, err = s.db.ExecContext(ctx, `
		INSERT INTO likes (id, user_id, target_kind, target_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, target_kind, target_id) DO NOTHING`,
		uuid.New().String(), userID, string(kind), targetID, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, ErrConflict
	}

	return &models.ToggleResult{Liked: true}, nil
}

// ===============================
// LIKED-VIDEOS VIEW
// ===============================

// GetLikedVideos returns the videos the user has liked, newest like first,
// each joined to its owner's profile. Unpublished videos stay visible to
// their owner only. An empty result is a successful empty slice.
func (s *LikeService) GetLikedVideos(ctx context.Context, userID string) ([]models.LikedVideo, error) {
	query := `
		SELECT v.id, v.title, v.thumbnail, v.duration, v.created_at, v.views,
		       u.avatar, u.full_name
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		JOIN users u ON u.uid = v.owner_id
		WHERE l.user_id = $1 AND l.target_kind = 'video'
		  AND (v.is_published = true OR v.owner_id = $1)
		ORDER BY l.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []models.LikedVideo{}
	for rows.Next() {
		var video models.LikedVideo
		err := rows.Scan(
			&video.ID,
			&video.Title,
			&video.Thumbnail,
			&video.Duration,
			&video.CreatedAt,
			&video.Views,
			&video.Owner.Avatar,
			&video.Owner.FullName,
		)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	return videos, rows.Err()
}

// CheckLiked reports whether the user currently has a like edge on the target.
func (s *LikeService) CheckLiked(ctx context.Context, userID string, kind models.LikeTargetKind, targetID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND target_kind = $2 AND target_id = $3)",
		userID, string(kind), targetID)
	return exists, err
}
