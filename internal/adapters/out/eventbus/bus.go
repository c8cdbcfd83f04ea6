// Package eventbus provides the in-process implementation of the domain
// event bus. Publishing is synchronous and isolated: every subscriber of
// the event's type runs in turn, and a panicking subscriber is recovered
// and logged without affecting the publisher or the remaining
// subscribers.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"kitchenops/internal/core/domain/events"
	"kitchenops/internal/core/ports"
)

// InProcessEventBus implements ports.EventBus with an in-memory
// subscriber registry keyed by event type tag. Subscribe is expected at
// composition time but is safe to call concurrently with Publish.
type InProcessEventBus struct {
	mu          sync.RWMutex
	subscribers map[string][]ports.EventHandler
	logger      *slog.Logger
}

// NewInProcessEventBus creates an empty event bus.
func NewInProcessEventBus(logger *slog.Logger) *InProcessEventBus {
	return &InProcessEventBus{
		subscribers: make(map[string][]ports.EventHandler),
		logger:      logger.With("component", "event-bus"),
	}
}

// Subscribe registers a handler for the given event type tag. Handlers
// for the same type run in subscription order.
func (b *InProcessEventBus) Subscribe(eventType string, handler ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish delivers the event synchronously to all subscribers of its
// type. Events without subscribers are dropped silently.
func (b *InProcessEventBus) Publish(ctx context.Context, event events.Event) {
	b.mu.RLock()
	handlers := b.subscribers[event.EventType()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.dispatch(ctx, event, handler)
	}
}

// dispatch runs one handler with panic isolation.
func (b *InProcessEventBus) dispatch(ctx context.Context, event events.Event, handler ports.EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(ctx, "event subscriber panicked",
				"event_type", event.EventType(),
				"tenant_id", event.EventTenantID().String(),
				"panic", r)
		}
	}()

	handler(ctx, event)
}
