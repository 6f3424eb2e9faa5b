package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/domain/repository"
)

// PublishLogRepository implements the append-only publish audit trail.
type PublishLogRepository struct{ db *sql.DB }

func NewPublishLogRepository(db *sql.DB) repository.IPublishLog {
	return &PublishLogRepository{db: db}
}

func (r *PublishLogRepository) Append(ctx context.Context, entry *model.PublishLog) error {
	if entry.PublishedAt.IsZero() {
		entry.PublishedAt = time.Now().UTC()
	}
	q := `INSERT INTO publish_logs (user_id, platform, video_title, status, platform_video_id, platform_url, error_message, published_at)
		  VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id`
	return r.db.QueryRowContext(ctx, q,
		entry.UserID, string(entry.Platform), entry.VideoTitle, string(entry.Status),
		entry.PlatformVideoID, entry.PlatformURL, entry.ErrorMessage, entry.PublishedAt,
	).Scan(&entry.ID)
}

func (r *PublishLogRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.PublishLog, int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, platform, video_title, status, platform_video_id, platform_url, error_message, published_at
		 FROM publish_logs WHERE user_id=$1 ORDER BY published_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var logs []model.PublishLog
	for rows.Next() {
		var entry model.PublishLog
		var platform, status string
		var videoID, url, errMsg sql.NullString
		if err := rows.Scan(&entry.ID, &entry.UserID, &platform, &entry.VideoTitle, &status,
			&videoID, &url, &errMsg, &entry.PublishedAt); err != nil {
			return nil, 0, err
		}
		entry.Platform = model.Platform(platform)
		entry.Status = model.PublishStatus(status)
		if videoID.Valid {
			v := videoID.String
			entry.PlatformVideoID = &v
		}
		if url.Valid {
			v := url.String
			entry.PlatformURL = &v
		}
		if errMsg.Valid {
			v := errMsg.String
			entry.ErrorMessage = &v
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM publish_logs WHERE user_id=$1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
