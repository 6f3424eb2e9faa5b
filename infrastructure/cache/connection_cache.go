package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/domain/repository"
	"github.com/jekoram/reelshorter/infrastructure/logger"
)

const connectionListTTL = 5 * time.Minute

// ConnectionCache is a cache-aside layer over the per-user connection list.
// Every method is a no-op when the Redis client is nil.
type ConnectionCache struct {
	client *redis.Client
}

func NewConnectionCache(client *redis.Client) repository.IConnectionCache {
	return &ConnectionCache{client: client}
}

func key(userID string) string { return fmt.Sprintf("connections:%s", userID) }

func (c *ConnectionCache) GetList(ctx context.Context, userID string) ([]*model.Connection, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var conns []*model.Connection
	if err := json.Unmarshal(raw, &conns); err != nil {
		logger.GetLogger().WithField("error", err).Warn("corrupt connection cache entry, dropping")
		_ = c.client.Del(ctx, key(userID)).Err()
		return nil, false
	}
	return conns, true
}

func (c *ConnectionCache) SetList(ctx context.Context, userID string, conns []*model.Connection) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(conns)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(userID), raw, connectionListTTL).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed writing connection cache")
	}
}

func (c *ConnectionCache) Invalidate(ctx context.Context, userID string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, key(userID)).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed invalidating connection cache")
	}
}
