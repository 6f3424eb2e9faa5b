package persistence

import (
	"database/sql"
	"fmt"

	"github.com/jekoram/reelshorter/infrastructure/logger"
)

// EnsureSchema creates the application tables if they do not exist.
// Safe to call at every startup.
func EnsureSchema(db *sql.DB) error {
	ddls := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS connections (
            id BIGSERIAL PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            platform TEXT NOT NULL,
            encrypted_access_token TEXT NOT NULL,
            encrypted_refresh_token TEXT,
            token_expires_at TIMESTAMPTZ,
            platform_user_id TEXT,
            platform_username TEXT,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            UNIQUE (user_id, platform)
        )`,
		`CREATE TABLE IF NOT EXISTS publish_logs (
            id BIGSERIAL PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            platform TEXT NOT NULL,
            video_title TEXT NOT NULL,
            status TEXT NOT NULL,
            platform_video_id TEXT,
            platform_url TEXT,
            error_message TEXT,
            published_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
	}
	for _, ddl := range ddls {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	// History page reads per-user, newest first.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_publish_logs_user_published_at ON publish_logs (user_id, published_at DESC)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_publish_logs_user_published_at")
	}
	return nil
}
