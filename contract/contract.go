//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"tradepost/domain"
	"tradepost/domain/event"
)

// EventSink is one live connection's inbox. Consume must never block
// the caller for longer than the delivery timeout; a slow connection
// only loses its own events.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry is the presence registry: user <-> connection mapping plus
// room membership, held only in process memory.
type IRegistry interface {
	Register(userID, connID string, sink EventSink)
	Unregister(connID string)
	LookupConnection(userID string) (string, bool)
	LookupUser(connID string) (string, bool)
	SinkFor(userID string) (EventSink, bool)
	JoinRoom(userID string, roomID domain.RoomID)
	LeaveRoom(userID string, roomID domain.RoomID)
	SinksForRoom(roomID domain.RoomID) []EventSink
}

// EventPublisher hands a delivery event to the async pipeline.
// Publishing is fire-and-forget.
type EventPublisher interface {
	Publish(e event.DomainEvent)
}

// Worker doesn't protect itself; the supervisor does.
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Stop()
}

// GetWorkerName resolves a worker's type name for logs, avoiding
// manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
