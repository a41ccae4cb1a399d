// ===============================
// internal/database/migrations.go - Schema for users, videos, tweets and engagement edges
// ===============================

package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

func RunMigrations(db *sqlx.DB) error {
	log.Println("📄 Running video platform migrations...")

	// Check if migrations table exists
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			version VARCHAR(255) UNIQUE NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations := []Migration{
		{
			Version: "001_initial_schema",
			Query: `
				-- Users table - identity is the auth provider's opaque UID
				CREATE TABLE IF NOT EXISTS users (
					uid VARCHAR(128) PRIMARY KEY,
					username VARCHAR(64) UNIQUE NOT NULL,
					email VARCHAR(255) UNIQUE NOT NULL,
					full_name VARCHAR(255) NOT NULL DEFAULT '',
					avatar TEXT DEFAULT '',
					cover_image TEXT DEFAULT '',
					password_hash TEXT DEFAULT '',
					refresh_token TEXT DEFAULT '',
					created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
				);

				-- Videos table - core content
				CREATE TABLE IF NOT EXISTS videos (
					id UUID PRIMARY KEY,
					owner_id VARCHAR(128) NOT NULL REFERENCES users(uid),
					video_file TEXT NOT NULL DEFAULT '',
					thumbnail TEXT NOT NULL DEFAULT '',
					title VARCHAR(255) NOT NULL,
					description TEXT DEFAULT '',
					duration DOUBLE PRECISION DEFAULT 0,
					views BIGINT DEFAULT 0,
					is_published BOOLEAN DEFAULT false,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
				);

				-- Tweets table - short text posts
				CREATE TABLE IF NOT EXISTS tweets (
					id UUID PRIMARY KEY,
					owner_id VARCHAR(128) NOT NULL REFERENCES users(uid),
					content TEXT NOT NULL,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
				);

				-- Comments table
				CREATE TABLE IF NOT EXISTS comments (
					id UUID PRIMARY KEY,
					owner_id VARCHAR(128) NOT NULL REFERENCES users(uid),
					video_id UUID NOT NULL REFERENCES videos(id),
					content TEXT NOT NULL,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
				);

				-- Likes table - one edge per (user, target); the target is a
				-- tagged union over {video, comment, tweet}, enforced by the
				-- unique index so toggles can rely on atomic insert/delete
				CREATE TABLE IF NOT EXISTS likes (
					id UUID PRIMARY KEY,
					user_id VARCHAR(128) NOT NULL REFERENCES users(uid),
					target_kind VARCHAR(16) NOT NULL,
					target_id UUID NOT NULL,
					created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT likes_target_kind_check CHECK (target_kind IN ('video', 'comment', 'tweet')),
					CONSTRAINT likes_user_target_unique UNIQUE (user_id, target_kind, target_id)
				);

				-- Subscriptions table - subscriber follows a channel (a user)
				CREATE TABLE IF NOT EXISTS subscriptions (
					id UUID PRIMARY KEY,
					subscriber_id VARCHAR(128) NOT NULL REFERENCES users(uid),
					channel_id VARCHAR(128) NOT NULL REFERENCES users(uid),
					created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
					CONSTRAINT subscriptions_pair_unique UNIQUE (subscriber_id, channel_id)
				);

				-- Playlists
				CREATE TABLE IF NOT EXISTS playlists (
					id UUID PRIMARY KEY,
					owner_id VARCHAR(128) NOT NULL REFERENCES users(uid),
					name VARCHAR(255) NOT NULL,
					description TEXT DEFAULT '',
					created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
				);

				CREATE TABLE IF NOT EXISTS playlist_videos (
					playlist_id UUID NOT NULL REFERENCES playlists(id),
					video_id UUID NOT NULL REFERENCES videos(id),
					added_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (playlist_id, video_id)
				);

				-- Watch history - one row per (user, video), refreshed on re-watch
				CREATE TABLE IF NOT EXISTS watch_history (
					user_id VARCHAR(128) NOT NULL REFERENCES users(uid),
					video_id UUID NOT NULL REFERENCES videos(id),
					watched_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (user_id, video_id)
				);
			`,
		},
		{
			Version: "002_engagement_indexes",
			Query: `
				-- Video listing and per-channel queries
				CREATE INDEX IF NOT EXISTS idx_videos_published_created ON videos(is_published, created_at DESC);
				CREATE INDEX IF NOT EXISTS idx_videos_owner_created ON videos(owner_id, created_at DESC);

				-- Like edge lookups per target and per user
				CREATE INDEX IF NOT EXISTS idx_likes_target ON likes(target_kind, target_id);
				CREATE INDEX IF NOT EXISTS idx_likes_user_created ON likes(user_id, target_kind, created_at DESC);

				-- Subscription views in both directions
				CREATE INDEX IF NOT EXISTS idx_subscriptions_channel ON subscriptions(channel_id, created_at DESC);
				CREATE INDEX IF NOT EXISTS idx_subscriptions_subscriber ON subscriptions(subscriber_id, created_at DESC);

				-- Tweets and comments listings
				CREATE INDEX IF NOT EXISTS idx_tweets_owner_created ON tweets(owner_id, created_at DESC);
				CREATE INDEX IF NOT EXISTS idx_comments_video_created ON comments(video_id, created_at DESC);

				CREATE INDEX IF NOT EXISTS idx_watch_history_user ON watch_history(user_id, watched_at DESC);
				CREATE INDEX IF NOT EXISTS idx_playlist_videos_video ON playlist_videos(video_id);
			`,
		},
	}

	for _, migration := range migrations {
		if err := applyMigration(db, migration); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", migration.Version, err)
		}
	}

	log.Println("✅ Video platform migrations completed successfully")
	return nil
}

type Migration struct {
	Version string
	Query   string
}

func applyMigration(db *sqlx.DB, migration Migration) error {
	// Check if migration already applied
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE version = $1", migration.Version).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check migration status: %w", err)
	}

	if count > 0 {
		log.Printf("⏭️  Migration %s already applied, skipping", migration.Version)
		return nil
	}

	log.Printf("🔧 Applying migration: %s", migration.Version)

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(migration.Query)
	if err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", migration.Version, err)
	}

	_, err = tx.Exec("INSERT INTO migrations (version) VALUES ($1)", migration.Version)
	if err != nil {
		return fmt.Errorf("failed to record migration %s: %w", migration.Version, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", migration.Version, err)
	}

	log.Printf("✅ Migration %s applied successfully", migration.Version)
	return nil
}
