package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/jekoram/reelshorter/infrastructure/logger"
)

// NewCache connects to Redis. A nil client is returned on failure; callers
// treat the cache as optional and fall through to the database.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not reachable - continuing without cache")
		return nil, err
	}
	return client, nil
}
