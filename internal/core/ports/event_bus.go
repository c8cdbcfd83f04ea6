package ports

import (
	"context"

	"kitchenops/internal/core/domain/events"
)

// EventHandler consumes one domain event. Handlers must tolerate
// being called concurrently for different events.
type EventHandler func(ctx context.Context, event events.Event)

// EventBus is the in-process publish/subscribe channel for domain
// events. Publish dispatches synchronously to every subscriber of the
// event's type; a failing or panicking subscriber never affects the
// publisher or other subscribers. Events are fire-and-forget: there is
// no persistence and no replay for late subscribers.
type EventBus interface {
	// Publish delivers the event to all subscribers of its type.
	Publish(ctx context.Context, event events.Event)

	// Subscribe registers a handler for the given event type tag.
	Subscribe(eventType string, handler EventHandler)
}
