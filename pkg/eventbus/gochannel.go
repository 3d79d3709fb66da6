// Package eventbus carries change events inside the process over a watermill
// GoChannel, and fans them out to any external publisher.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"elibrary-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Topic is the single in-process topic every entity change event goes to.
const Topic = "entity.changed"

type Envelope struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload"`
}

type Bus struct {
	pubSub *gochannel.GoChannel
}

func New() *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermill.NewStdLogger(false, false)),
	}
}

func (b *Bus) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(Envelope{
		Type:       event.EventType(),
		OccurredAt: event.Timestamp(),
		Payload:    event.Payload(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("event_type", event.EventType())
	return b.pubSub.Publish(Topic, msg)
}

// Subscribe returns the stream of messages published after the call.
func (b *Bus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, Topic)
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// Decode reads an Envelope back from a bus message.
func Decode(msg *message.Message) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		return Envelope{}, err
	}
	return env, nil
}
