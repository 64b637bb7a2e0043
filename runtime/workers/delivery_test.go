package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"tradepost/contract"
	"tradepost/domain"
	"tradepost/domain/event"
	grpcsink "tradepost/grpc"
	"tradepost/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDelivery_Routes_Room_Event_To_All_Members(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	sellerSink := mocks.NewMockEventSink(ctrl)
	buyerSink := mocks.NewMockEventSink(ctrl)

	roomID := domain.RoomID("chat-42")
	evt := event.NewMessage{ChatID: "chat-42", RoomID: roomID, SenderID: "buyer", Content: "hello"}

	events := make(chan event.DomainEvent, 1)
	delivery := NewDelivery(log, mockRegistry, events)

	done := make(chan struct{})
	count := 0
	// Given both participants joined the room
	mockRegistry.EXPECT().SinksForRoom(roomID).
		Return([]contract.EventSink{sellerSink, buyerSink}).Times(1)
	for _, sink := range []*mocks.MockEventSink{sellerSink, buyerSink} {
		sink.EXPECT().Consume(gomock.Any(), evt).Do(
			func(ctx context.Context, e event.DomainEvent) {
				count++
				if count == 2 {
					close(done)
				}
			}).Return(nil).Times(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = delivery.Run(ctx) }()

	// When a chat message event reaches the worker
	events <- evt

	// Then both sinks consumed it
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Both room members should have received the event")
	}
}

func TestDelivery_Routes_Direct_Event_To_Recipient(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	recipientSink := mocks.NewMockEventSink(ctrl)

	evt := event.NewRequest{SellerID: "seller-1", ProductID: "p1", ProductName: "Bike", BuyerID: "buyer-1"}
	events := make(chan event.DomainEvent, 1)
	delivery := NewDelivery(log, mockRegistry, events)

	done := make(chan struct{})
	// Given the seller is online
	mockRegistry.EXPECT().SinkFor("seller-1").Return(recipientSink, true).Times(1)
	recipientSink.EXPECT().Consume(gomock.Any(), evt).Do(
		func(ctx context.Context, e event.DomainEvent) {
			close(done)
		}).Return(nil).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = delivery.Run(ctx) }()

	events <- evt

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("The recipient should have received the event")
	}
}

func TestDelivery_Drops_Direct_Event_For_Offline_Recipient(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)

	evt := event.NotificationPushed{RecipientID: "offline-user", Content: "Sold"}
	events := make(chan event.DomainEvent, 1)
	delivery := NewDelivery(log, mockRegistry, events)

	resolved := make(chan struct{})
	// Given the recipient has no live connection; no sink is consumed
	mockRegistry.EXPECT().SinkFor("offline-user").DoAndReturn(
		func(string) (contract.EventSink, bool) {
			close(resolved)
			return nil, false
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = delivery.Run(ctx) }()

	events <- evt

	select {
	case <-resolved:
	case <-time.After(time.Second):
		require.Fail(t, "The registry lookup should have happened")
	}
}

func TestDelivery_Full_Sink_Does_Not_Block_Others(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRegistry := mocks.NewMockIRegistry(ctrl)
	// A zero-capacity connection buffer with no reader drops every event
	fullSink := grpcsink.NewSink(log, 0)
	healthySink := mocks.NewMockEventSink(ctrl)

	roomID := domain.RoomID("chat-7")
	evt := event.NewMessage{ChatID: "chat-7", RoomID: roomID}
	events := make(chan event.DomainEvent, 1)
	delivery := NewDelivery(log, mockRegistry, events)

	done := make(chan struct{})
	mockRegistry.EXPECT().SinksForRoom(roomID).
		Return([]contract.EventSink{fullSink, healthySink}).Times(1)
	healthySink.EXPECT().Consume(gomock.Any(), evt).Do(
		func(ctx context.Context, e event.DomainEvent) {
			close(done)
		}).Return(nil).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = delivery.Run(ctx) }()

	events <- evt

	// Then the healthy sink still gets the event; the slow connection
	// only loses its own copy
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("The healthy sink should have received the event despite the full one")
	}
}
