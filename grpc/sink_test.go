package grpc

import (
	"context"
	"log/slog"
	"testing"

	"tradepost/domain/event"

	"github.com/stretchr/testify/require"
)

func TestSink_Consume_Buffers_Events(t *testing.T) {
	req := require.New(t)
	sink := NewSink(slog.Default(), 2)

	req.NoError(sink.Consume(context.Background(), event.ChatStarted{ChatID: "c1", RoomID: "c1"}))
	req.NoError(sink.Consume(context.Background(), event.ChatStarted{ChatID: "c2", RoomID: "c2"}))

	req.Equal("c1", (<-sink.Events).(event.ChatStarted).ChatID)
	req.Equal("c2", (<-sink.Events).(event.ChatStarted).ChatID)
}

func TestSink_Consume_Drops_When_Full(t *testing.T) {
	req := require.New(t)
	sink := NewSink(slog.Default(), 1)

	// Given a slow client whose buffer is already full
	req.NoError(sink.Consume(context.Background(), event.ChatStarted{ChatID: "kept", RoomID: "kept"}))

	// When another event arrives, Consume returns without blocking
	req.NoError(sink.Consume(context.Background(), event.ChatStarted{ChatID: "dropped", RoomID: "dropped"}))

	// Then only the first event is delivered; the slow client catches
	// up through the durable read paths
	req.Equal("kept", (<-sink.Events).(event.ChatStarted).ChatID)
	select {
	case e := <-sink.Events:
		req.Fail("Unexpected buffered event", "got %s", e.Name())
	default:
	}
}
