// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/pkg/message"
	"elibrary-be/pkg/eventbus"

	watermillmsg "github.com/ThreeDotsLabs/watermill/message"
)

// SYSTEM_MESSAGE_CREATED, SYSTEM_MESSAGE_UPDATED, SYSTEM_MESSAGE_DELETED
const systemMessageEventPrefix = "SYSTEM_MESSAGE_"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drops cached message texts whenever a system message
// changes, so edits are visible before the cache TTL runs out.
type consumerService struct {
	bus    *eventbus.Bus
	cache  message.Cache
	logger logger.ILogger
}

func NewConsumerService(bus *eventbus.Bus, cache message.Cache, log logger.ILogger) IConsumerService {
	return &consumerService{
		bus:    bus,
		cache:  cache,
		logger: log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.bus.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *watermillmsg.Message) {
	// undecodable messages are acked so they are not redelivered forever
	defer msg.Ack()

	env, err := eventbus.Decode(msg)
	if err != nil {
		cs.logger.Error("CONSUMER", "Failed to decode event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		return
	}

	if !strings.HasPrefix(env.Type, systemMessageEventPrefix) {
		return
	}

	key, ok := env.Payload["key"]
	if !ok || key == nil {
		return
	}
	cs.cache.Delete(ctx, message.CacheKeys(fmt.Sprint(key))...)
	cs.logger.Debug("CONSUMER", "Message cache invalidated", map[string]interface{}{
		"event":  env.Type,
		"msg_id": key,
	})
}
