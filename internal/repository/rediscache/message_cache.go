package rediscache

import (
	"context"
	"time"

	"elibrary-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "elibrary:messages:"

// MessageCache shares resolved message texts between instances.
// Redis errors are logged and treated as cache misses.
type MessageCache struct {
	rdb    *redis.Client
	logger logger.ILogger
}

func NewMessageCache(rdb *redis.Client, log logger.ILogger) *MessageCache {
	return &MessageCache{rdb: rdb, logger: log}
}

func (c *MessageCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.rdb.Get(ctx, keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.Warn("MESSAGE_CACHE", "Redis get failed", map[string]interface{}{"key": key, "error": err})
		return "", false
	}
	return val, true
}

func (c *MessageCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.rdb.Set(ctx, keyPrefix+key, value, ttl).Err(); err != nil {
		c.logger.Warn("MESSAGE_CACHE", "Redis set failed", map[string]interface{}{"key": key, "error": err})
	}
}

func (c *MessageCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, keyPrefix+key)
	}
	if err := c.rdb.Del(ctx, prefixed...).Err(); err != nil {
		c.logger.Warn("MESSAGE_CACHE", "Redis delete failed", map[string]interface{}{"keys": keys, "error": err})
	}
}
