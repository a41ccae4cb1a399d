// ===============================
// internal/services/user.go - User Profiles
// ===============================

package services

import (
	"context"
	"database/sql"
	"time"

	"vidtube/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserService struct {
	db    *sqlx.DB
	guard VisibilityGuard
}

func NewUserService(db *sqlx.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	if !s.guard.ValidUserID(uid) {
		return nil, ErrInvalidID
	}

	var user models.User
	err := s.db.GetContext(ctx, &user, "SELECT * FROM users WHERE uid = $1", uid)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SyncUser upserts the authenticated user's profile row after the auth
// collaborator has vouched for the UID. Handles are stored case-normalized.
func (s *UserService) SyncUser(ctx context.Context, user *models.User) error {
	user.Username = models.NormalizeUsername(user.Username)
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	query := `
		INSERT INTO users (uid, username, email, full_name, avatar, cover_image, created_at, updated_at)
		VALUES (:uid, :username, :email, :full_name, :avatar, :cover_image, :created_at, :updated_at)
		ON CONFLICT (uid) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			avatar = EXCLUDED.avatar,
			cover_image = EXCLUDED.cover_image,
			updated_at = EXCLUDED.updated_at`

	_, err := s.db.NamedExecContext(ctx, query, user)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

// GetChannelProfile resolves a channel by handle and decorates it with
// computed subscription counts and whether the requester is subscribed.
func (s *UserService) GetChannelProfile(ctx context.Context, requesterID, username string) (*models.ChannelProfile, error) {
	username = models.NormalizeUsername(username)
	if username == "" {
		return nil, ErrInvalidID
	}

	var user models.User
	err := s.db.GetContext(ctx, &user, "SELECT * FROM users WHERE username = $1", username)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	profile := &models.ChannelProfile{
		UID:        user.UID,
		Username:   user.Username,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
	}

	err = s.db.GetContext(ctx, &profile.SubscribersCount,
		"SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1", user.UID)
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &profile.ChannelsSubscribedCount,
		"SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1", user.UID)
	if err != nil {
		return nil, err
	}

	if requesterID != "" {
		err = s.db.GetContext(ctx, &profile.IsSubscribed,
			"SELECT EXISTS(SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2)",
			requesterID, user.UID)
		if err != nil {
			return nil, err
		}
	}

	return profile, nil
}
