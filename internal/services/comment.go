// ===============================
// internal/services/comment.go - Comment CRUD
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

type CommentService struct {
	db    *sqlx.DB
	guard VisibilityGuard
}

func NewCommentService(db *sqlx.DB) *CommentService {
	return &CommentService{db: db}
}

// CreateComment adds a comment to a video the requester can see.
func (s *CommentService) CreateComment(ctx context.Context, ownerID, videoID, content string) (*models.Comment, error) {
	if !s.guard.ValidContentID(videoID) {
		return nil, ErrInvalidID
	}

	comment := &models.Comment{
		OwnerID: ownerID,
		VideoID: videoID,
		Content: content,
	}
	if errs := comment.ValidateForCreation(); len(errs) > 0 {
		return nil, ErrValidation
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
	if !s.guard.CanViewVideo(ownerID, target.OwnerID, target.IsPublished) {
		return nil, ErrNotFound
	}

	now := time.Now()
	comment.ID = uuid.New().String()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	query := `
		INSERT INTO comments (id, owner_id, video_id, content, created_at, updated_at)
		VALUES (:id, :owner_id, :video_id, :content, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, query, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetVideoComments lists a video's comments, newest first.
func (s *CommentService) GetVideoComments(ctx context.Context, videoID string, page models.PageParams) ([]models.Comment, error) {
	if !s.guard.ValidContentID(videoID) {
		return nil, ErrInvalidID
	}

	page = page.Normalized()

	comments := []models.Comment{}
	err := s.db.SelectContext(ctx, &comments, `
		SELECT * FROM comments
		WHERE video_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		videoID, page.Limit, page.Offset())
	return comments, err
}

func (s *CommentService) UpdateComment(ctx context.Context, commentID, requesterID, content string) (*models.Comment, error) {
	if !s.guard.ValidContentID(commentID) {
		return nil, ErrInvalidID
	}

	var comment models.Comment
	err := s.db.GetContext(ctx, &comment, "SELECT * FROM comments WHERE id = $1", commentID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !s.guard.CanMutate(requesterID, comment.OwnerID) {
		return nil, ErrAccessDenied
	}

	comment.Content = content
	if errs := comment.ValidateForCreation(); len(errs) > 0 {
		return nil, ErrValidation
	}
	comment.UpdatedAt = time.Now()

	_, err = s.db.ExecContext(ctx,
		"UPDATE comments SET content = $1, updated_at = $2 WHERE id = $3",
		comment.Content, comment.UpdatedAt, commentID)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes the comment and its like edges.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, requesterID string) error {
	if !s.guard.ValidContentID(commentID) {
		return ErrInvalidID
	}

	var ownerID string
	err := s.db.GetContext(ctx, &ownerID, "SELECT owner_id FROM comments WHERE id = $1", commentID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
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

	if _, err = tx.ExecContext(ctx, "DELETE FROM likes WHERE target_kind = 'comment' AND target_id = $1", commentID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", commentID); err != nil {
		return err
	}

	return tx.Commit()
}
