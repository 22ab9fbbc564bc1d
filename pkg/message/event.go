package message

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Event interface {
	ID() uuid.UUID
	Type() string
	AggregateID() string
}

type EventDispatcher interface {
	Dispatch(ctx context.Context, events ...Event) error
}

type eventEnvelope struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    Event     `json:"payload"`
}

type eventDispatcher struct {
	topic  Topic
	sender Sender
	now    func() time.Time
}

// NewEventDispatcher sends JSON encoded events to topic keyed by their aggregate id.
func NewEventDispatcher(topic Topic, sender Sender) EventDispatcher {
	return eventDispatcher{
		topic:  topic,
		sender: sender,
		now:    time.Now,
	}
}

func (d eventDispatcher) Dispatch(ctx context.Context, events ...Event) error {
	for _, event := range events {
		payload, err := json.Marshal(eventEnvelope{
			ID:         event.ID(),
			Type:       event.Type(),
			OccurredAt: d.now().UTC(),
			Payload:    event,
		})
		if err != nil {
			return fmt.Errorf("encode event %s: %w", event.Type(), err)
		}

		err = d.sender.Send(ctx, &Message{
			ID:      event.ID(),
			Topic:   d.topic,
			Key:     event.AggregateID(),
			Payload: payload,
		})
		if err != nil {
			return fmt.Errorf("dispatch event %s: %w", event.Type(), err)
		}
	}

	return nil
}
