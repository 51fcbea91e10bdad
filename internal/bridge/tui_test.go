package bridge

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/guilhermegouw/leaguebook/internal/events"
	"github.com/guilhermegouw/leaguebook/internal/pubsub"
)

// mockProgram captures messages sent via Send().
type mockProgram struct {
	mu       sync.Mutex
	messages []tea.Msg
}

func (m *mockProgram) Send(msg tea.Msg) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockProgram) Messages() []tea.Msg {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]tea.Msg, len(m.messages))
	copy(result, m.messages)
	return result
}

func waitForMessages(t *testing.T, p *mockProgram, n int) []tea.Msg {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if msgs := p.Messages(); len(msgs) >= n {
			return msgs
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d messages, got %d", n, len(p.Messages()))
	return nil
}

func TestTUIBridge(t *testing.T) {
	t.Run("forwards record and store events", func(t *testing.T) {
		hub := pubsub.NewHub()
		defer hub.Shutdown()

		program := &mockProgram{}
		b := NewTUIBridge(hub, program)
		b.Start(context.Background())
		defer b.Stop()

		// Let the forwarders subscribe.
		time.Sleep(20 * time.Millisecond)

		hub.Record.Publish(pubsub.EventExecuted, events.NewCommandExecutedEvent(1, "list-players", "Listed all players!", 4, 3, 2))
		hub.Store.Publish(pubsub.EventSaved, events.NewStoreSavedEvent("json", "/tmp/league.json", time.Millisecond))

		var gotRecord, gotStore bool
		for _, msg := range waitForMessages(t, program, 2) {
			switch m := msg.(type) {
			case RecordEventMsg:
				gotRecord = m.Event.Payload.Command == "list-players"
			case StoreEventMsg:
				gotStore = m.Event.Payload.Backend == "json"
			}
		}
		if !gotRecord || !gotStore {
			t.Errorf("record=%v store=%v", gotRecord, gotStore)
		}
	})

	t.Run("stop ends forwarding", func(t *testing.T) {
		hub := pubsub.NewHub()
		defer hub.Shutdown()

		program := &mockProgram{}
		b := NewTUIBridge(hub, program)
		b.Start(context.Background())
		b.Stop()

		hub.Record.Publish(pubsub.EventExecuted, events.NewCommandExecutedEvent(1, "help", "", 0, 0, 0))
		time.Sleep(20 * time.Millisecond)
		if n := len(program.Messages()); n != 0 {
			t.Errorf("got %d messages after Stop", n)
		}
	})

	t.Run("hub shutdown ends forwarding", func(t *testing.T) {
		hub := pubsub.NewHub()
		b := NewTUIBridge(hub, &mockProgram{})
		b.Start(context.Background())
		hub.Shutdown()

		done := make(chan struct{})
		go func() {
			b.Stop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Stop did not return after hub shutdown")
		}
	})
}
