package dto

import (
	"time"

	"github.com/jekoram/reelshorter/domain/model"
)

// ConnectionInfo is the non-sensitive view of a connection returned to the
// UI. Token material never leaves the server.
type ConnectionInfo struct {
	ID               int64          `json:"id"`
	Platform         model.Platform `json:"platform"`
	PlatformUsername string         `json:"platform_username,omitempty"`
	IsActive         bool           `json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
}

// Pagination is the page block attached to list responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PublishLogListResponse is the paginated publish history payload.
type PublishLogListResponse struct {
	Logs       []model.PublishLog `json:"logs"`
	Pagination Pagination         `json:"pagination"`
}
