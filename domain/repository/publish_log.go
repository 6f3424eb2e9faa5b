package repository

import (
	"context"

	"github.com/jekoram/reelshorter/domain/model"
)

// IPublishLog is the append-only audit trail of publish attempts.
// There is deliberately no update or delete operation.
type IPublishLog interface {
	Append(ctx context.Context, entry *model.PublishLog) error
	// ListByUser returns one page ordered by published_at descending,
	// together with the total row count for the user.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.PublishLog, int64, error)
}
