package eventbus

import (
	"context"
	"errors"

	"elibrary-be/pkg/events"
)

// Fanout publishes every event to all targets and joins their errors.
type Fanout struct {
	targets []events.Publisher
}

func NewFanout(targets ...events.Publisher) *Fanout {
	f := &Fanout{}
	for _, t := range targets {
		if t != nil {
			f.targets = append(f.targets, t)
		}
	}
	return f
}

func (f *Fanout) Publish(ctx context.Context, event events.Event) error {
	var errs []error
	for _, t := range f.targets {
		if err := t.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
