// ===============================
// internal/services/subscription.go - Subscription Toggle Service and Views
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

type SubscriptionService struct {
	db    *sqlx.DB
	guard VisibilityGuard
}

func NewSubscriptionService(db *sqlx.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// ToggleSubscription flips the subscription edge between subscriber and
// channel. The channel user must exist; subscribing to oneself is rejected.
func (s *SubscriptionService) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (*models.SubscribeResult, error) {
	if !s.guard.ValidUserID(channelID) {
		return nil, ErrInvalidID
	}
	if subscriberID == channelID {
		return nil, ErrSelfSubscription
	}

	var exists bool
	if err := s.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM users WHERE uid = $1)", channelID); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	// Same atomic delete-then-insert shape as like toggling: each statement
	// is keyed by the unique (subscriber, channel) pair, and a lost insert
	// race reports a conflict instead of silently double-subscribing.
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2",
		subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n > 0 {
		return &models.SubscribeResult{Subscribed: false}, nil
	}

	res, err = s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING`,
		uuid.New().String(), subscriberID, channelID, time.Now())
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

	return &models.SubscribeResult{Subscribed: true}, nil
}

// ===============================
// SUBSCRIPTION VIEWS
// ===============================

// GetChannelSubscribers returns one grouped row for the channel: its profile
// info, every subscriber's profile and the subscriber count. The count is the
// cardinality of the joined rows, recomputed on every call - never a stored
// counter.
func (s *SubscriptionService) GetChannelSubscribers(ctx context.Context, channelID string) (*models.ChannelSubscribers, error) {
	if !s.guard.ValidUserID(channelID) {
		return nil, ErrInvalidID
	}

	var channel models.ChannelInfo
	err := s.db.QueryRowContext(ctx,
		"SELECT uid, username, avatar, created_at FROM users WHERE uid = $1", channelID).
		Scan(&channel.ChannelID, &channel.ChannelName, &channel.Avatar, &channel.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	query := `
		SELECT u.uid, u.username, u.avatar, u.full_name
		FROM subscriptions s
		JOIN users u ON u.uid = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subscribers := []models.SubscriberInfo{}
	for rows.Next() {
		var sub models.SubscriberInfo
		if err := rows.Scan(&sub.SubscriberID, &sub.Username, &sub.Avatar, &sub.FullName); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &models.ChannelSubscribers{
		ChannelInfo:      channel,
		Subscribers:      subscribers,
		SubscribersCount: len(subscribers),
	}, nil
}

// GetSubscribedChannels is the symmetric view: every channel the user is
// subscribed to, grouped under the subscriber's own profile.
func (s *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID string) (*models.SubscribedChannels, error) {
	if !s.guard.ValidUserID(subscriberID) {
		return nil, ErrInvalidID
	}

	var user models.SubscriberInfo
	err := s.db.QueryRowContext(ctx,
		"SELECT uid, username, avatar, full_name FROM users WHERE uid = $1", subscriberID).
		Scan(&user.SubscriberID, &user.Username, &user.Avatar, &user.FullName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	query := `
		SELECT u.uid, u.username, u.avatar, u.created_at
		FROM subscriptions s
		JOIN users u ON u.uid = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, subscriberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	channels := []models.ChannelInfo{}
	for rows.Next() {
		var ch models.ChannelInfo
		if err := rows.Scan(&ch.ChannelID, &ch.ChannelName, &ch.Avatar, &ch.CreatedAt); err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &models.SubscribedChannels{
		UserInfo:               user,
		SubscribedChannels:     channels,
		SubscribedChannelCount: len(channels),
	}, nil
}

// CheckSubscribed reports whether the subscription edge currently exists.
func (s *SubscriptionService) CheckSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2)",
		subscriberID, channelID)
	return exists, err
}
