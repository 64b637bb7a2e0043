// Package grpc adapts the delivery pipeline to gRPC streams.
package grpc

import (
	"context"
	"log/slog"

	"tradepost/domain/event"
)

// Sink is one connection's buffered inbox. The delivery worker feeds
// it; the Connect handler drains it onto the stream.
type Sink struct {
	Events chan event.DomainEvent
	log    *slog.Logger
}

func NewSink(log *slog.Logger, bufferSize int) *Sink {
	return &Sink{Events: make(chan event.DomainEvent, bufferSize), log: log}
}

// Consume hands the event to the owning connection. A full buffer
// means a slow client; the event is dropped rather than letting one
// connection stall delivery to others. Never blocks.
func (s *Sink) Consume(_ context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	default:
		s.log.Warn("Connection buffer full, dropping event", "event", e.Name())
		return nil
	}
}
