package pubsub

import (
	"github.com/guilhermegouw/leaguebook/internal/events"
)

// Hub holds the brokers of a league session.
type Hub struct {
	Record *Broker[events.RecordEvent]
	Store  *Broker[events.StoreEvent]
}

// NewHub creates a Hub with every broker initialized.
func NewHub() *Hub {
	return &Hub{
		Record: NewBroker[events.RecordEvent]("record"),
		Store:  NewBroker[events.StoreEvent]("store"),
	}
}

// Shutdown shuts every broker down.
func (h *Hub) Shutdown() {
	h.Record.Shutdown()
	h.Store.Shutdown()
}

// AllMetrics returns metrics for every broker.
func (h *Hub) AllMetrics() []BrokerMetrics {
	return []BrokerMetrics{h.Record.Metrics(), h.Store.Metrics()}
}
