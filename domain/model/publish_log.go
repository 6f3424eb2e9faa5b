package model

import "time"

type PublishStatus string

const (
	PublishStatusSuccess PublishStatus = "success"
	PublishStatusFailed  PublishStatus = "failed"
	PublishStatusPending PublishStatus = "pending"
)

// PublishLog is one immutable record per (publish attempt x platform).
// Rows are written exactly once, after the adapter call resolves, and are
// never updated afterward.
type PublishLog struct {
	ID              int64         `json:"id"`
	UserID          string        `json:"user_id"`
	Platform        Platform      `json:"platform"`
	VideoTitle      string        `json:"video_title"`
	Status          PublishStatus `json:"status"`
	PlatformVideoID *string       `json:"platform_video_id,omitempty"`
	PlatformURL     *string       `json:"platform_url,omitempty"`
	ErrorMessage    *string       `json:"error_message,omitempty"`
	PublishedAt     time.Time     `json:"published_at"`
}
