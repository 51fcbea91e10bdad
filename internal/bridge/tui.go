package bridge

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/guilhermegouw/leaguebook/internal/debug"
	"github.com/guilhermegouw/leaguebook/internal/events"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
)

// Sender accepts Bubble Tea messages. *tea.Program satisfies it.
type Sender interface {
	Send(tea.Msg)
}

// TUIBridge subscribes to the hub's brokers and forwards their events.
type TUIBridge struct { //nolint:govet // fieldalignment: preserving logical field order
	hub    *pubsub.Hub
	sender Sender

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTUIBridge creates a new TUI bridge.
func NewTUIBridge(hub *pubsub.Hub, sender Sender) *TUIBridge {
	return &TUIBridge{
		hub:    hub,
		sender: sender,
	}
}

// Start begins forwarding events. Call Stop to shut it down.
func (b *TUIBridge) Start(ctx context.Context) {
	b.ctx, b.cancel = context.WithCancel(ctx)

	b.wg.Add(2)
	go forward(b, b.hub.Record, func(e pubsub.Event[events.RecordEvent]) tea.Msg { return RecordEventMsg{Event: e} })
	go forward(b, b.hub.Store, func(e pubsub.Event[events.StoreEvent]) tea.Msg { return StoreEventMsg{Event: e} })

	debug.Event("bridge", "start", "TUI bridge started")
}

// Stop cancels the subscriptions and waits for the forwarders to exit.
func (b *TUIBridge) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
	debug.Event("bridge", "stop", "TUI bridge stopped")
}

func forward[T any](b *TUIBridge, sub pubsub.Subscriber[T], wrap func(pubsub.Event[T]) tea.Msg) {
	defer b.wg.Done()

	ch := sub.Subscribe(b.ctx)
	for {
		select {
		case <-b.ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			b.sender.Send(wrap(event))
		}
	}
}
