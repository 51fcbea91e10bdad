package pubsub

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/guilhermegouw/leaguebook/internal/events"
)

func TestBrokerSubscribePublish(t *testing.T) {
	t.Run("single subscriber receives events", func(t *testing.T) {
		broker := NewBroker[events.RecordEvent]("record")
		defer broker.Shutdown()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub := broker.Subscribe(ctx)
		broker.Publish(EventExecuted, events.NewCommandExecutedEvent(1, "list", "Listed all players", 0, 0, 0))

		select {
		case event := <-sub:
			if event.Type != EventExecuted || event.Payload.Command != "list" {
				t.Errorf("unexpected event: %+v", event)
			}
		case <-time.After(100 * time.Millisecond):
			t.Error("timeout waiting for event")
		}
	})

	t.Run("multiple subscribers receive same event", func(t *testing.T) {
		broker := NewBroker[int]("test")
		defer broker.Shutdown()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub1 := broker.Subscribe(ctx)
		sub2 := broker.Subscribe(ctx)

		broker.Publish(EventSaved, 42)

		for i, sub := range []<-chan Event[int]{sub1, sub2} {
			select {
			case event := <-sub:
				if event.Payload != 42 {
					t.Errorf("subscriber %d: expected 42, got %d", i, event.Payload)
				}
			case <-time.After(100 * time.Millisecond):
				t.Errorf("subscriber %d: timeout", i)
			}
		}
	})

	t.Run("cancelled context unsubscribes", func(t *testing.T) {
		broker := NewBroker[string]("test")
		defer broker.Shutdown()

		ctx, cancel := context.WithCancel(context.Background())
		sub := broker.Subscribe(ctx)

		if broker.SubscriberCount() != 1 {
			t.Errorf("expected 1 subscriber, got %d", broker.SubscriberCount())
		}

		cancel()
		time.Sleep(50 * time.Millisecond) // Allow cleanup goroutine to run

		if broker.SubscriberCount() != 0 {
			t.Errorf("expected 0 subscribers after cancel, got %d", broker.SubscriberCount())
		}
		if _, ok := <-sub; ok {
			t.Error("expected channel to be closed")
		}
	})

	t.Run("shutdown closes all subscribers", func(t *testing.T) {
		broker := NewBroker[string]("test")

		ctx := context.Background()
		sub1 := broker.Subscribe(ctx)
		sub2 := broker.Subscribe(ctx)

		broker.Shutdown()

		if _, ok := <-sub1; ok {
			t.Error("sub1 should be closed")
		}
		if _, ok := <-sub2; ok {
			t.Error("sub2 should be closed")
		}
	})

	t.Run("publish after shutdown is no-op", func(t *testing.T) {
		broker := NewBroker[string]("test")
		broker.Shutdown()

		broker.Publish(EventExecuted, "ignored")

		if broker.Metrics().PublishCount != 0 {
			t.Error("expected no publish to be counted")
		}
	})

	t.Run("subscribe after shutdown returns closed channel", func(t *testing.T) {
		broker := NewBroker[string]("test")
		broker.Shutdown()

		if _, ok := <-broker.Subscribe(context.Background()); ok {
			t.Error("channel should be closed")
		}
	})
}

func TestBrokerDropsWhenFull(t *testing.T) {
	broker := NewBroker[int]("test", WithBufferSize[int](2))
	defer broker.Shutdown()

	ch := broker.Subscribe(context.Background())

	broker.Publish(EventExecuted, 1)
	broker.Publish(EventExecuted, 2)
	broker.Publish(EventExecuted, 3)

	if got := broker.Metrics().DropCount; got != 1 {
		t.Errorf("expected 1 drop, got %d", got)
	}
	if e := <-ch; e.Payload != 1 {
		t.Errorf("expected 1, got %d", e.Payload)
	}
	if e := <-ch; e.Payload != 2 {
		t.Errorf("expected 2, got %d", e.Payload)
	}
}

func TestBrokerConcurrency(t *testing.T) {
	broker := NewBroker[int]("test", WithBufferSize[int](256))
	defer broker.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const numSubscribers = 5
	const numPublishes = 100

	subs := make([]<-chan Event[int], numSubscribers)
	for i := range subs {
		subs[i] = broker.Subscribe(ctx)
	}

	var wg sync.WaitGroup
	for i := range numPublishes {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			broker.Publish(EventExecuted, n)
		}(i)
	}
	wg.Wait()

	for i, sub := range subs {
		if len(sub) != numPublishes {
			t.Errorf("subscriber %d: expected %d buffered events, got %d", i, numPublishes, len(sub))
		}
	}
}

func TestHub(t *testing.T) {
	t.Run("creates brokers and shuts them down", func(t *testing.T) {
		hub := NewHub()
		if hub.Record == nil || hub.Store == nil {
			t.Fatal("brokers should be initialized")
		}

		hub.Shutdown()
		hub.Shutdown() // Should not panic

		if !hub.Record.IsShutdown() || !hub.Store.IsShutdown() {
			t.Error("brokers should be shut down")
		}
	})

	t.Run("metrics reflect publish activity", func(t *testing.T) {
		hub := NewHub()
		defer hub.Shutdown()

		_ = hub.Store.Subscribe(context.Background())
		hub.Store.Publish(EventSaved, events.NewStoreSavedEvent("json", "league.json", time.Millisecond))

		metrics := hub.AllMetrics()
		if len(metrics) != 2 {
			t.Fatalf("expected 2 broker metrics, got %d", len(metrics))
		}
		if metrics[1].Name != "store" || metrics[1].PublishCount != 1 {
			t.Errorf("unexpected store metrics: %+v", metrics[1])
		}
	})
}
