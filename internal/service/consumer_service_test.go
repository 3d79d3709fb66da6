package service

import (
	"context"
	"testing"
	"time"

	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/pkg/message"
	"elibrary-be/internal/repository/memory"
	"elibrary-be/pkg/eventbus"
	"elibrary-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerService_InvalidatesChangedMessages(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	cache := memory.NewMessageCache(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, key := range message.CacheKeys("Common.Success0001") {
		cache.Set(ctx, key, "cached", 0)
	}
	for _, key := range message.CacheKeys("Common.Success0002") {
		cache.Set(ctx, key, "cached", 0)
	}

	require.NoError(t, NewConsumerService(bus, cache, logger.NewNopLogger()).Consume(ctx))

	require.NoError(t, bus.Publish(ctx, events.EntityChanged("Book", events.ActionUpdated, "Common.Success0002")))
	require.NoError(t, bus.Publish(ctx, events.EntityChanged(SystemMessageEntity, events.ActionUpdated, "Common.Success0001")))

	assert.Eventually(t, func() bool {
		_, found := cache.Get(ctx, "vi:Common.Success0001")
		return !found
	}, 2*time.Second, 10*time.Millisecond)

	_, found := cache.Get(ctx, "en:Common.Success0001")
	assert.False(t, found)
	_, found = cache.Get(ctx, "en:Common.Success0002")
	assert.True(t, found, "other entities' events must not touch the cache")
}
