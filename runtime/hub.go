package runtime

import (
	"fmt"
	"log/slog"

	"tradepost/domain/event"
)

// Hub is the buffered channel between the services producing delivery
// events and the delivery worker draining them. Publish never blocks:
// when the buffer is full the event is dropped with a warning, which
// is acceptable because every droppable event has a durable
// counterpart reachable through the history/notification read paths.
type Hub struct {
	log    *slog.Logger
	events chan event.DomainEvent
}

func NewHub(log *slog.Logger, bufferSize int) *Hub {
	return &Hub{log: log, events: make(chan event.DomainEvent, bufferSize)}
}

func (h *Hub) Publish(e event.DomainEvent) {
	select {
	case h.events <- e:
	default:
		h.log.Warn(fmt.Sprintf("Event channel full, dropping %s", e.Name()))
	}
}

// Events exposes the drain side for the delivery worker.
func (h *Hub) Events() <-chan event.DomainEvent {
	return h.events
}
