// ===============================
// internal/services/tweet.go - Tweet CRUD and Paginated Tweets-With-Likes View
// ===============================

package services

import (
	"context"
	"database/sql"
	"time"

	"vidtube/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type TweetService struct {
	db    *sqlx.DB
	guard VisibilityGuard
}

func NewTweetService(db *sqlx.DB) *TweetService {
	return &TweetService{db: db}
}

// ===============================
// TWEET CRUD
// ===============================

func (s *TweetService) CreateTweet(ctx context.Context, ownerID, content string) (*models.Tweet, error) {
	if errs := models.ValidateTweetContent(content); len(errs) > 0 {
		return nil, ErrValidation
	}

	now := time.Now()
	tweet := &models.Tweet{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO tweets (id, owner_id, content, created_at, updated_at)
		VALUES (:id, :owner_id, :content, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, query, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) UpdateTweet(ctx context.Context, tweetID, requesterID, content string) (*models.Tweet, error) {
	if !s.guard.ValidContentID(tweetID) {
		return nil, ErrInvalidID
	}
	if errs := models.ValidateTweetContent(content); len(errs) > 0 {
		return nil, ErrValidation
	}

	var tweet models.Tweet
	err := s.db.GetContext(ctx, &tweet, "SELECT * FROM tweets WHERE id = $1", tweetID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !s.guard.CanMutate(requesterID, tweet.OwnerID) {
		return nil, ErrAccessDenied
	}

	tweet.Content = content
	tweet.UpdatedAt = time.Now()

	_, err = s.db.ExecContext(ctx,
		"UPDATE tweets SET content = $1, updated_at = $2 WHERE id = $3",
		tweet.Content, tweet.UpdatedAt, tweetID)
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// DeleteTweet removes the tweet and every like edge pointing at it.
func (s *TweetService) DeleteTweet(ctx context.Context, tweetID, requesterID string) error {
	if !s.guard.ValidContentID(tweetID) {
		return ErrInvalidID
	}

	var ownerID string
	err := s.db.GetContext(ctx, &ownerID, "SELECT owner_id FROM tweets WHERE id = $1", tweetID)
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

	if _, err = tx.ExecContext(ctx, "DELETE FROM likes WHERE target_kind = 'tweet' AND target_id = $1", tweetID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM tweets WHERE id = $1", tweetID); err != nil {
		return err
	}

	return tx.Commit()
}

// ===============================
// TWEETS-WITH-LIKES VIEW
// ===============================

// GetUserTweets returns the user's tweets newest first, each joined to the
// owner's profile and carrying likesCount, whether the requester liked it,
// and the liking users' profiles. Unknown users simply produce an empty
// page - the query is well-formed either way.
func (s *TweetService) GetUserTweets(ctx context.Context, requesterID, userID string, page models.PageParams) ([]models.TweetResponse, error) {
	if !s.guard.ValidUserID(userID) {
		return nil, ErrInvalidID
	}

	page = page.Normalized()

	query := `
		SELECT t.id, t.content, t.created_at,
		       u.uid, u.username, u.avatar, u.full_name,
		       COUNT(l.id) AS likes_count,
		       COALESCE(BOOL_OR(l.user_id = $2), false) AS is_liked
		FROM tweets t
		JOIN users u ON u.uid = t.owner_id
		LEFT JOIN likes l ON l.target_kind = 'tweet' AND l.target_id = t.id
		WHERE t.owner_id = $1
		GROUP BY t.id, t.content, t.created_at, u.uid, u.username, u.avatar, u.full_name
		ORDER BY t.created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := s.db.QueryContext(ctx, query, userID, requesterID, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tweets := []models.TweetResponse{}
	ids := []string{}
	for rows.Next() {
		var tweet models.TweetResponse
		err := rows.Scan(
			&tweet.ID,
			&tweet.Content,
			&tweet.CreatedAt,
			&tweet.OwnerInfo.UID,
			&tweet.OwnerInfo.Username,
			&tweet.OwnerInfo.Avatar,
			&tweet.OwnerInfo.FullName,
			&tweet.LikesCount,
			&tweet.IsLiked,
		)
		if err != nil {
			return nil, err
		}
		tweet.LikedByUsers = []models.TweetLiker{}
		tweets = append(tweets, tweet)
		ids = append(ids, tweet.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return tweets, nil
	}

	if err := s.attachLikers(ctx, tweets, ids); err != nil {
		return nil, err
	}
	return tweets, nil
}

// attachLikers fills LikedByUsers for the page's tweets in one query.
func (s *TweetService) attachLikers(ctx context.Context, tweets []models.TweetResponse, ids []string) error {
	query := `
		SELECT l.target_id, l.user_id, u.uid, u.username, u.avatar, u.full_name
		FROM likes l
		JOIN users u ON u.uid = l.user_id
		WHERE l.target_kind = 'tweet' AND l.target_id = ANY($1)
		ORDER BY l.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	likersByTweet := make(map[string][]models.TweetLiker, len(ids))
	for rows.Next() {
		var tweetID string
		var liker models.TweetLiker
		err := rows.Scan(
			&tweetID,
			&liker.LikedBy,
			&liker.UserInfo.UID,
			&liker.UserInfo.Username,
			&liker.UserInfo.Avatar,
			&liker.UserInfo.FullName,
		)
		if err != nil {
			return err
		}
		likersByTweet[tweetID] = append(likersByTweet[tweetID], liker)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range tweets {
		if likers, ok := likersByTweet[tweets[i].ID]; ok {
			tweets[i].LikedByUsers = likers
		}
	}
	return nil
}
