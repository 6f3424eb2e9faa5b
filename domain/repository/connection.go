package repository

import (
	"context"

	"github.com/jekoram/reelshorter/domain/model"
)

// IConnection defines persistence for per-user platform connections.
// GetByUserAndPlatform returns (nil, nil) when no row exists; the broker
// maps that to ErrNotConnected.
type IConnection interface {
	GetByUserAndPlatform(ctx context.Context, userID string, platform model.Platform) (*model.Connection, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Connection, error)
	Upsert(ctx context.Context, conn *model.Connection) error
	UpdateTokens(ctx context.Context, connectionID int64, upd model.TokenUpdate) error
	Delete(ctx context.Context, userID string, platform model.Platform) error
}

// IConnectionCache is an optional cache-aside layer over the connection
// list. Implementations must be safe to skip entirely (miss on every read).
type IConnectionCache interface {
	GetList(ctx context.Context, userID string) ([]*model.Connection, bool)
	SetList(ctx context.Context, userID string, conns []*model.Connection)
	Invalidate(ctx context.Context, userID string)
}
