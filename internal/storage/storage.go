// Package storage saves and loads the league to durable storage. Both
// backends share one document shape and re-validate every field on load.
package storage

import (
	"context"
	"errors"

	"github.com/guilhermegouw/leaguebook/internal/events"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
	"github.com/guilhermegouw/leaguebook/internal/record"
)

// Backend names accepted by New.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

var (
	// ErrNoData is returned by Load when nothing has been saved yet.
	ErrNoData = errors.New("no saved league data")

	// ErrInvalidData is returned by Load when the saved data cannot be
	// turned back into a valid league.
	ErrInvalidData = errors.New("invalid league data")
)

// Storage persists a whole league. Save always overwrites everything.
type Storage interface {
	Load(ctx context.Context) (*record.League, error)
	Save(ctx context.Context, league *record.League) error
	Path() string
}

// Option configures a store.
type Option func(*options)

type options struct {
	events pubsub.Publisher[events.StoreEvent]
}

// WithEvents publishes a StoreEvent after every load and save.
func WithEvents(pub pubsub.Publisher[events.StoreEvent]) Option {
	return func(o *options) {
		o.events = pub
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) publish(eventType pubsub.EventType, event events.StoreEvent) {
	if o.events != nil {
		o.events.Publish(eventType, event)
	}
}
