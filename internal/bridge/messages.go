// Package bridge forwards league events from the pub/sub hub into a
// Bubble Tea program.
package bridge

import (
	"github.com/guilhermegouw/leaguebook/internal/events"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
)

// RecordEventMsg wraps a command event for the TUI.
type RecordEventMsg struct {
	Event pubsub.Event[events.RecordEvent]
}

// StoreEventMsg wraps a storage event for the TUI.
type StoreEventMsg struct {
	Event pubsub.Event[events.StoreEvent]
}
