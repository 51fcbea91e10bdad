package debug

import (
	"context"
	"fmt"

	"github.com/guilhermegouw/leaguebook/internal/events"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
)

// Trace logs every event published on the hub until ctx is done or the hub
// shuts down. It returns immediately; the logging runs in a goroutine.
func Trace(ctx context.Context, hub *pubsub.Hub) {
	records := hub.Record.Subscribe(ctx)
	stores := hub.Store.Subscribe(ctx)

	go func() {
		for records != nil || stores != nil {
			select {
			case e, ok := <-records:
				if !ok {
					records = nil
					continue
				}
				Event("record", string(e.Type), describeRecord(e.Payload))
			case e, ok := <-stores:
				if !ok {
					stores = nil
					continue
				}
				Event("store", string(e.Type), describeStore(e.Payload))
			}
		}
	}()
}

func describeRecord(e events.RecordEvent) string {
	if e.Type == events.RecordEventSaveFailed {
		return fmt.Sprintf("#%d %q: %s", e.Seq, e.Command, e.Error)
	}
	return fmt.Sprintf("#%d %q players=%d teams=%d matches=%d", e.Seq, e.Command, e.Players, e.Teams, e.Matches)
}

func describeStore(e events.StoreEvent) string {
	return fmt.Sprintf("%s %s (%s)", e.Backend, e.Path, e.Duration)
}
