package events

import "time"

// StoreEventType represents storage operations.
type StoreEventType string

// Store event type constants.
const (
	StoreEventLoaded StoreEventType = "loaded"
	StoreEventSaved  StoreEventType = "saved"
)

// StoreEvent reports a completed load or save.
type StoreEvent struct {
	Backend   string
	Path      string
	Type      StoreEventType
	Duration  time.Duration
	Timestamp time.Time
}

// NewStoreLoadedEvent creates a loaded event.
func NewStoreLoadedEvent(backend, path string, took time.Duration) StoreEvent {
	return StoreEvent{Backend: backend, Path: path, Type: StoreEventLoaded, Duration: took, Timestamp: time.Now()}
}

// NewStoreSavedEvent creates a saved event.
func NewStoreSavedEvent(backend, path string, took time.Duration) StoreEvent {
	return StoreEvent{Backend: backend, Path: path, Type: StoreEventSaved, Duration: took, Timestamp: time.Now()}
}
