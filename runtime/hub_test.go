package runtime

import (
	"log/slog"
	"testing"

	"tradepost/domain/event"

	"github.com/stretchr/testify/require"
)

func TestHub_Publish_And_Drain(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default(), 2)

	hub.Publish(event.ChatStarted{ChatID: "c1", RoomID: "c1"})
	hub.Publish(event.ChatStarted{ChatID: "c2", RoomID: "c2"})

	first := <-hub.Events()
	second := <-hub.Events()
	req.Equal("c1", first.(event.ChatStarted).ChatID)
	req.Equal("c2", second.(event.ChatStarted).ChatID)
}

func TestHub_Publish_Drops_When_Full(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default(), 1)

	// Given the buffer is full
	hub.Publish(event.ChatStarted{ChatID: "kept", RoomID: "kept"})

	// When publishing beyond capacity
	hub.Publish(event.ChatStarted{ChatID: "dropped", RoomID: "dropped"})

	// Then only the first event survives and nothing blocked
	req.Equal("kept", (<-hub.Events()).(event.ChatStarted).ChatID)
	select {
	case e := <-hub.Events():
		req.Fail("Unexpected event", "got %s", e.Name())
	default:
	}
}
