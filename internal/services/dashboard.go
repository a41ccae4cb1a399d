// ===============================
// internal/services/dashboard.go - Channel Dashboard Aggregates
// ===============================

package services

import (
	"context"

	"vidtube/internal/models"

	"github.com/jmoiron/sqlx"
)

type DashboardService struct {
	db *sqlx.DB
}

func NewDashboardService(db *sqlx.DB) *DashboardService {
	return &DashboardService{db: db}
}

// GetChannelStats recomputes the channel's aggregates on every call:
// subscriber count, upload count, total views, and likes received on the
// channel's videos, tweets and comments. Nothing here is read from stored
// counters.
func (s *DashboardService) GetChannelStats(ctx context.Context, channelID string) (*models.ChannelStats, error) {
	stats := &models.ChannelStats{}

	err := s.db.GetContext(ctx, &stats.Subscribers,
		"SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1", channelID)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(views), 0)
		FROM videos WHERE owner_id = $1`, channelID).
		Scan(&stats.TotalVideos, &stats.TotalVideoViews)
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &stats.TotalVideoLikes, `
		SELECT COUNT(*) FROM likes l
		JOIN videos v ON v.id = l.target_id
		WHERE l.target_kind = 'video' AND v.owner_id = $1`, channelID)
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &stats.TotalTweetLikes, `
		SELECT COUNT(*) FROM likes l
		JOIN tweets t ON t.id = l.target_id
		WHERE l.target_kind = 'tweet' AND t.owner_id = $1`, channelID)
	if err != nil {
		return nil, err
	}

	err = s.db.GetContext(ctx, &stats.TotalCommentLikes, `
		SELECT COUNT(*) FROM likes l
		JOIN comments c ON c.id = l.target_id
		WHERE l.target_kind = 'comment' AND c.owner_id = $1`, channelID)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
