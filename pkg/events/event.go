package events

import (
	"context"
	"strings"
	"time"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "BOOK_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Publisher delivers events to a bus. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type Action string

const (
	ActionCreated Action = "CREATED"
	ActionUpdated Action = "UPDATED"
	ActionDeleted Action = "DELETED"
)

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// EntityChanged builds the event emitted after a committed write, typed
// "<ENTITY>_<ACTION>" (e.g. "BOOK_DELETED").
func EntityChanged(entity string, action Action, key interface{}) BaseEvent {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(entity), " ", "_"))
	now := time.Now()
	return BaseEvent{
		Type: name + "_" + string(action),
		Data: map[string]interface{}{
			"entity": entity,
			"action": string(action),
			"key":    key,
			"time":   now.Format(time.RFC3339),
		},
		OccurredAt: now,
	}
}
