// Package pubsub provides a typed, in-process publish/subscribe broker.
package pubsub

import (
	"context"
	"time"
)

// EventType labels an event.
type EventType string

// Event types used by the league brokers.
const (
	EventExecuted   EventType = "executed"
	EventSaveFailed EventType = "save_failed"
	EventLoaded     EventType = "loaded"
	EventSaved      EventType = "saved"
)

// Event wraps a payload with its type and publish time.
type Event[T any] struct { //nolint:govet // fieldalignment: preserving logical field order
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Publisher publishes events of one payload type.
type Publisher[T any] interface {
	Publish(EventType, T)
}

// Subscriber hands out event streams.
type Subscriber[T any] interface {
	Subscribe(context.Context) <-chan Event[T]
}
