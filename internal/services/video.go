// ===============================
// internal/services/video.go - Video CRUD, Publication and Cascade Delete
// ===============================

package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"vidtube/internal/models"
	"vidtube/internal/storage"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type VideoService struct {
	db       *sqlx.DB
	r2Client *storage.R2Client
	guard    VisibilityGuard
}

func NewVideoService(db *sqlx.DB, r2Client *storage.R2Client) *VideoService {
	return &VideoService{
		db:       db,
		r2Client: r2Client,
	}
}

// ===============================
// VIDEO CRUD OPERATIONS
// ===============================

// CreateVideo persists a new video. Videos start unpublished; the owner
// flips publication explicitly.
func (s *VideoService) CreateVideo(ctx context.Context, video *models.Video) (string, error) {
	if errs := video.ValidateForCreation(); len(errs) > 0 {
		return "", fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	video.ID = uuid.New().String()
	video.Views = 0
	video.IsPublished = false
	video.CreatedAt = time.Now()
	video.UpdatedAt = video.CreatedAt

	query := `
		INSERT INTO videos (
			id, owner_id, video_file, thumbnail, title, description,
			duration, views, is_published, created_at, updated_at
		) VALUES (
			:id, :owner_id, :video_file, :thumbnail, :title, :description,
			:duration, :views, :is_published, :created_at, :updated_at
		)`

	_, err := s.db.NamedExecContext(ctx, query, video)
	return video.ID, err
}

// GetVideo fetches one video for the requester. Unpublished videos are
// not-found for everyone but the owner, so their existence never leaks.
// A successful fetch bumps the view count asynchronously and records the
// video in the requester's watch history.
func (s *VideoService) GetVideo(ctx context.Context, videoID, requesterID string) (*models.Video, error) {
	if !s.guard.ValidContentID(videoID) {
		return nil, ErrInvalidID
	}

	var video models.Video
	err := s.db.GetContext(ctx, &video, "SELECT * FROM videos WHERE id = $1", videoID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !s.guard.CanViewVideo(requesterID, video.OwnerID, video.IsPublished) {
		return nil, ErrNotFound
	}

	go s.incrementViewCount(video.ID)
	go s.recordWatch(requesterID, video.ID)

	// Reflect the bump immediately for the caller
	video.Views++

	return &video, nil
}

// GetVideos lists published videos with optional owner filter, text query,
// sorting and pagination. An owner browsing their own uploads also sees
// unpublished ones.
func (s *VideoService) GetVideos(ctx context.Context, requesterID string, params models.VideoSearchParams) ([]models.Video, error) {
	query := `
		SELECT id, owner_id, video_file, thumbnail, title, description,
		       duration, views, is_published, created_at, updated_at
		FROM videos
		WHERE (is_published = true OR owner_id = $1)`

	args := []interface{}{requesterID}
	argIndex := 2

	if params.OwnerID != "" {
		query += fmt.Sprintf(" AND owner_id = $%d", argIndex)
		args = append(args, params.OwnerID)
		argIndex++
	}

	if params.Query != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+params.Query+"%")
		argIndex++
	}

	dir := "DESC"
	if params.SortType == "asc" {
		dir = "ASC"
	}
	switch params.SortBy {
	case "views":
		query += " ORDER BY views " + dir + ", created_at DESC"
	case "duration":
		query += " ORDER BY duration " + dir + ", created_at DESC"
	default:
		query += " ORDER BY created_at " + dir
	}

	page := params.Page.Normalized()
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, page.Limit, page.Offset())

	videos := []models.Video{}
	err := s.db.SelectContext(ctx, &videos, query, args...)
	return videos, err
}

// UpdateVideo applies the owner's edits to title, description or thumbnail.
func (s *VideoService) UpdateVideo(ctx context.Context, videoID, requesterID string, req models.UpdateVideoRequest) (*models.Video, error) {
	if !s.guard.ValidContentID(videoID) {
		return nil, ErrInvalidID
	}

	var video models.Video
	err := s.db.GetContext(ctx, &video, "SELECT * FROM videos WHERE id = $1", videoID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !s.guard.CanMutate(requesterID, video.OwnerID) {
		return nil, ErrAccessDenied
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Description != nil {
		video.Description = *req.Description
	}
	if req.Thumbnail != nil {
		video.Thumbnail = *req.Thumbnail
	}
	if errs := video.ValidateForCreation(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}
	video.UpdatedAt = time.Now()

	_, err = s.db.ExecContext(ctx, `
		UPDATE videos SET title = $1, description = $2, thumbnail = $3, updated_at = $4
		WHERE id = $5`,
		video.Title, video.Description, video.Thumbnail, video.UpdatedAt, videoID)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// TogglePublishStatus flips the publication flag and returns the new state.
func (s *VideoService) TogglePublishStatus(ctx context.Context, videoID, requesterID string) (bool, error) {
	if !s.guard.ValidContentID(videoID) {
		return false, ErrInvalidID
	}

	var ownerID string
	err := s.db.GetContext(ctx, &ownerID, "SELECT owner_id FROM videos WHERE id = $1", videoID)
	if err == sql.ErrNoRows {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	if !s.guard.CanMutate(requesterID, ownerID) {
		return false, ErrAccessDenied
	}

	var isPublished bool
	err = s.db.QueryRowContext(ctx, `
		UPDATE videos SET is_published = NOT is_published, updated_at = $1
		WHERE id = $2
		RETURNING is_published`,
		time.Now(), videoID).Scan(&isPublished)
	return isPublished, err
}

// ===============================
// CASCADE DELETE
// ===============================

// DeleteVideo removes a video and everything that references it: likes on
// the video, likes on its comments, the comments themselves, playlist
// membership and watch-history rows, all in one transaction. Media objects
// on the storage host are cleaned up afterwards, best effort - a failed
// object delete leaves an orphaned file, never a half-deleted record.
func (s *VideoService) DeleteVideo(ctx context.Context, videoID, requesterID string) error {
	if !s.guard.ValidContentID(videoID) {
		return ErrInvalidID
	}

	var video models.Video
	err := s.db.GetContext(ctx, &video, "SELECT * FROM videos WHERE id = $1", videoID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !s.guard.CanMutate(requesterID, video.OwnerID) {
		return ErrAccessDenied
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		"DELETE FROM likes WHERE target_kind = 'video' AND target_id = $1", videoID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		DELETE FROM likes WHERE target_kind = 'comment' AND target_id IN (
			SELECT id FROM comments WHERE video_id = $1
		)`, videoID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM comments WHERE video_id = $1", videoID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM playlist_videos WHERE video_id = $1", videoID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM watch_history WHERE video_id = $1", videoID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM videos WHERE id = $1", videoID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	go s.cleanupMedia(video.VideoFile, video.Thumbnail)

	return nil
}

// cleanupMedia removes the video's objects from R2. Failures are logged, not
// surfaced; the database state is already consistent.
func (s *VideoService) cleanupMedia(keys ...string) {
	if s.r2Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.r2Client.DeleteFile(ctx, storage.ObjectKeyFromURL(key)); err != nil {
			log.Printf("Warning: failed to delete media object %s: %v", key, err)
		}
	}
}

// ===============================
// VIEWS COUNTER AND WATCH HISTORY
// ===============================

func (s *VideoService) incrementViewCount(videoID string) {
	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		result, err := s.db.ExecContext(ctx,
			"UPDATE videos SET views = views + 1, updated_at = $1 WHERE id = $2",
			time.Now(), videoID)

		cancel()

		if err == nil {
			if rowsAffected, _ := result.RowsAffected(); rowsAffected > 0 {
				return
			}
		}

		time.Sleep(time.Duration(i+1) * time.Second)
	}

	log.Printf("Error: failed to increment view count for video %s after %d retries", videoID, maxRetries)
}

func (s *VideoService) recordWatch(userID, videoID string) {
	if userID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO watch_history (user_id, video_id, watched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at`,
		userID, videoID, time.Now())
	if err != nil {
		log.Printf("Warning: failed to record watch history for user %s: %v", userID, err)
	}
}

// GetWatchHistory returns the user's watch history, most recent first.
func (s *VideoService) GetWatchHistory(ctx context.Context, userID string, page models.PageParams) ([]models.WatchHistoryEntry, error) {
	page = page.Normalized()

	query := `
		SELECT v.id, v.title, v.thumbnail, v.duration, v.created_at, v.views,
		       u.avatar, u.full_name, wh.watched_at
		FROM watch_history wh
		JOIN videos v ON v.id = wh.video_id
		JOIN users u ON u.uid = v.owner_id
		WHERE wh.user_id = $1
		  AND (v.is_published = true OR v.owner_id = $1)
		ORDER BY wh.watched_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.WatchHistoryEntry{}
	for rows.Next() {
		var entry models.WatchHistoryEntry
		err := rows.Scan(
			&entry.Video.ID,
			&entry.Video.Title,
			&entry.Video.Thumbnail,
			&entry.Video.Duration,
			&entry.Video.CreatedAt,
			&entry.Video.Views,
			&entry.Video.Owner.Avatar,
			&entry.Video.Owner.FullName,
			&entry.WatchedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
