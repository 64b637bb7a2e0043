package workers

import (
	"context"
	"log/slog"

	"tradepost/contract"
	"tradepost/domain/event"
)

// Delivery drains the hub and routes each event to its recipients:
// room events to every sink currently joined to the room, direct
// events to the recipient's current connection if one is registered.
//
// Delivery is best-effort and at-most-once per currently joined
// connection. Sinks never block (a full buffer drops the event on the
// slow connection's side), so routing to one recipient cannot stall
// the others. There is no queuing or retry; an offline participant
// recovers state through the durable read paths.
type Delivery struct {
	log      *slog.Logger
	registry contract.IRegistry
	events   <-chan event.DomainEvent
}

func NewDelivery(log *slog.Logger, registry contract.IRegistry,
	events <-chan event.DomainEvent) *Delivery {
	return &Delivery{log: log, registry: registry, events: events}
}

func (d *Delivery) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.log.Debug("Context done, stopping delivery")
			return nil
		case evt := <-d.events:
			d.route(ctx, evt)
		}
	}
}

func (d *Delivery) route(ctx context.Context, evt event.DomainEvent) {
	switch e := evt.(type) {
	case event.RoomEvent:
		for _, sink := range d.registry.SinksForRoom(e.Room()) {
			d.consume(ctx, sink, evt)
		}
	case event.DirectEvent:
		if sink, online := d.registry.SinkFor(e.Recipient()); online {
			d.consume(ctx, sink, evt)
		}
	default:
		d.log.Warn("Unroutable event", "event", evt.Name())
	}
}

func (d *Delivery) consume(ctx context.Context, sink contract.EventSink, evt event.DomainEvent) {
	if err := sink.Consume(ctx, evt); err != nil {
		d.log.Warn("Delivery failed", "event", evt.Name(), "error", err)
	}
}
