package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoomID names the broadcast group of connections for one chat.
type RoomID string

// Chat binds exactly two participants (seller and buyer) to a product.
// Created once per successful accept; repeated accepts create
// independent chats.
type Chat struct {
	ID        string
	ProductID string
	SellerID  string
	BuyerID   string
	CreatedAt time.Time
}

func NewChat(productID, sellerID, buyerID string) Chat {
	return Chat{
		ID:        uuid.NewString(),
		ProductID: productID,
		SellerID:  sellerID,
		BuyerID:   buyerID,
		CreatedAt: time.Now().UTC(),
	}
}

// Room derives the broadcast room identifier from the chat identity.
func (c Chat) Room() RoomID {
	return RoomID(c.ID)
}

func (c Chat) HasParticipant(userID string) bool {
	return userID == c.SellerID || userID == c.BuyerID
}

// OtherParticipant returns the participant facing userID.
// It assumes userID is one of the two participants.
func (c Chat) OtherParticipant(userID string) string {
	if userID == c.SellerID {
		return c.BuyerID
	}
	return c.SellerID
}

// Message represents an immutable chat entry.
type Message struct {
	ID        uuid.UUID
	ChatID    string
	SenderID  string
	Content   string
	CreatedAt time.Time
}
