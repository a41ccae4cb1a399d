// ===============================
// internal/services/playlist.go - Playlist CRUD and Membership
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

type PlaylistService struct {
	db    *sqlx.DB
	guard VisibilityGuard
}

func NewPlaylistService(db *sqlx.DB) *PlaylistService {
	return &PlaylistService{db: db}
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, ownerID, name, description string) (*models.Playlist, error) {
	now := time.Now()
	playlist := &models.Playlist{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if errs := playlist.ValidateForCreation(); len(errs) > 0 {
		return nil, ErrValidation
	}

	query := `
		INSERT INTO playlists (id, owner_id, name, description, created_at, updated_at)
		VALUES (:id, :owner_id, :name, :description, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, query, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) GetUserPlaylists(ctx context.Context, ownerID string) ([]models.Playlist, error) {
	playlists := []models.Playlist{}
	err := s.db.SelectContext(ctx, &playlists,
		"SELECT * FROM playlists WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	return playlists, err
}

// AddVideo puts a video into the owner's playlist. Re-adding is a no-op.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, requesterID string) error {
	if !s.guard.ValidContentID(playlistID) || !s.guard.ValidContentID(videoID) {
		return ErrInvalidID
	}

	ownerID, err := s.playlistOwner(ctx, playlistID)
	if err != nil {
		return err
	}
	if !s.guard.CanMutate(requesterID, ownerID) {
		return ErrAccessDenied
	}

	var target struct {
		OwnerID     string `db:"owner_id"`
		IsPublished bool   `db:"is_published"`
	}
	err = s.db.GetContext(ctx, &target, "SELECT owner_id, is_published FROM videos WHERE id = $1", videoID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !s.guard.CanViewVideo(requesterID, target.OwnerID, target.IsPublished) {
		return ErrNotFound
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO playlist_videos (playlist_id, video_id, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (playlist_id, video_id) DO NOTHING`,
		playlistID, videoID, time.Now())
	return err
}

// RemoveVideo drops a video from the owner's playlist.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, requesterID string) error {
	if !s.guard.ValidContentID(playlistID) || !s.guard.ValidContentID(videoID) {
		return ErrInvalidID
	}

	ownerID, err := s.playlistOwner(ctx, playlistID)
	if err != nil {
		return err
	}
	if !s.guard.CanMutate(requesterID, ownerID) {
		return ErrAccessDenied
	}

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2",
		playlistID, videoID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID, requesterID string) error {
	if !s.guard.ValidContentID(playlistID) {
		return ErrInvalidID
	}

	ownerID, err := s.playlistOwner(ctx, playlistID)
	if err != nil {
		return err
	}
	if !s.guard.CanMutate(requesterID, ownerID) {
		return ErrAccessDenied
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM playlist_videos WHERE playlist_id = $1", playlistID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM playlists WHERE id = $1", playlistID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *PlaylistService) playlistOwner(ctx context.Context, playlistID string) (string, error) {
	var ownerID string
	err := s.db.GetContext(ctx, &ownerID, "SELECT owner_id FROM playlists WHERE id = $1", playlistID)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return ownerID, err
}
