package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

type MessageCache struct {
	cache *cache.Cache
}

func NewMessageCache(defaultTTL time.Duration) *MessageCache {
	// purge expired items every 10 minutes
	c := cache.New(defaultTTL, 10*time.Minute)
	return &MessageCache{
		cache: c,
	}
}

func (r *MessageCache) Get(ctx context.Context, key string) (string, bool) {
	if x, found := r.cache.Get(key); found {
		return x.(string), true
	}
	return "", false
}

func (r *MessageCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	r.cache.Set(key, value, ttl)
}

func (r *MessageCache) Flush() {
	r.cache.Flush()
}

func (r *MessageCache) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		r.cache.Delete(key)
	}
}
