// Package event defines the server-to-client delivery events produced
// by the negotiation and messaging services.
package event

import (
	"time"

	"tradepost/domain"

	"github.com/google/uuid"
)

type DomainEvent interface {
	Name() string
}

// RoomEvent is delivered to every connection currently joined to a room.
type RoomEvent interface {
	DomainEvent
	Room() domain.RoomID
}

// DirectEvent is delivered to a single user's current connection,
// if one is registered.
type DirectEvent interface {
	DomainEvent
	Recipient() string
}

// RequestSent acknowledges a purchase request to the requester.
type RequestSent struct {
	BuyerID string
	Msg     string
}

func (e RequestSent) Name() string      { return "request_sent" }
func (e RequestSent) Recipient() string { return e.BuyerID }

// NewRequest informs the seller that a buyer wants their product.
type NewRequest struct {
	SellerID      string
	ProductID     string
	ProductName   string
	BuyerID       string
	BuyerUsername string
}

func (e NewRequest) Name() string      { return "new_request" }
func (e NewRequest) Recipient() string { return e.SellerID }

// ChatStarted announces a freshly created chat to its room.
type ChatStarted struct {
	ChatID string
	RoomID domain.RoomID
}

func (e ChatStarted) Name() string        { return "chat_started" }
func (e ChatStarted) Room() domain.RoomID { return e.RoomID }

// NewMessage broadcasts a persisted message to the chat room.
type NewMessage struct {
	ID             uuid.UUID
	ChatID         string
	RoomID         domain.RoomID
	SenderID       string
	SenderUsername string
	Content        string
	At             time.Time
}

func (e NewMessage) Name() string        { return "new_message" }
func (e NewMessage) Room() domain.RoomID { return e.RoomID }

// NotificationPushed mirrors a persisted notification over the live
// connection of its recipient. Persistence stays the source of truth;
// losing this event only means the client learns of it by polling.
type NotificationPushed struct {
	NotificationID uuid.UUID
	RecipientID    string
	Content        string
	Link           string
	At             time.Time
}

func (e NotificationPushed) Name() string      { return "notification" }
func (e NotificationPushed) Recipient() string { return e.RecipientID }
