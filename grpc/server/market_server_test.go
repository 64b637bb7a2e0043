package server

import (
	"testing"
	"time"

	"tradepost/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestToServerEvent_New_Message(t *testing.T) {
	req := require.New(t)
	id := uuid.New()
	at := time.Now().UTC()

	evt := toServerEvent(event.NewMessage{
		ID:             id,
		ChatID:         "chat-1",
		RoomID:         "chat-1",
		SenderID:       "buyer-1",
		SenderUsername: "alice",
		Content:        "hello",
		At:             at,
	})

	msg := evt.GetNewMessage()
	req.NotNil(msg)
	req.Equal(id.String(), msg.GetMessageId())
	req.Equal("chat-1", msg.GetChatId())
	req.Equal("hello", msg.GetContent())
	req.Equal("buyer-1", msg.GetSenderId())
	req.Equal("alice", msg.GetSenderUsername())
	req.WithinDuration(at, msg.GetCreatedAt().AsTime(), 0)
}

func TestToServerEvent_Notification(t *testing.T) {
	req := require.New(t)
	id := uuid.New()
	at := time.Now().UTC()

	evt := toServerEvent(event.NotificationPushed{
		NotificationID: id,
		RecipientID:    "buyer-1",
		Content:        "The seller accepted your request",
		Link:           "/chats/chat-1",
		At:             at,
	})

	notification := evt.GetNotification()
	req.NotNil(notification)
	req.Equal(id.String(), notification.GetNotificationId())
	req.Equal("The seller accepted your request", notification.GetContent())
	req.Equal("/chats/chat-1", notification.GetLink())
	req.WithinDuration(at, notification.GetCreatedAt().AsTime(), 0)
}

func TestToServerEvent_Request_Events(t *testing.T) {
	req := require.New(t)

	ack := toServerEvent(event.RequestSent{BuyerID: "buyer-1", Msg: "Request sent to seller"})
	req.Equal("Request sent to seller", ack.GetRequestSent().GetMsg())

	incoming := toServerEvent(event.NewRequest{
		SellerID:      "seller-1",
		ProductID:     "p1",
		ProductName:   "Vintage road bike",
		BuyerID:       "buyer-1",
		BuyerUsername: "alice",
	})
	req.Equal("p1", incoming.GetNewRequest().GetProductId())
	req.Equal("Vintage road bike", incoming.GetNewRequest().GetProductName())
	req.Equal("alice", incoming.GetNewRequest().GetBuyerUsername())

	started := toServerEvent(event.ChatStarted{ChatID: "chat-1", RoomID: "chat-1"})
	req.Equal("chat-1", started.GetChatStarted().GetChatId())
}
