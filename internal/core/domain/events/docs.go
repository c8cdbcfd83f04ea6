// Package events defines the domain events exchanged over the
// in-process event bus and fanned out to websocket rooms. Events are
// immutable facts: producers publish them after their transaction
// commits, and there is no persistence or replay.
package events
