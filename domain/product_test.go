package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPickupStatus_Valid(t *testing.T) {
	req := require.New(t)

	for _, status := range []PickupStatus{PickupAwaitingDropOff, PickupAtCenter, PickupShipped, PickupCompleted} {
		req.True(status.Valid(), "status=%s", status)
	}
	req.False(PickupStatus("Teleported").Valid())
	req.False(PickupStatus("").Valid())
}

func TestChat_Participants(t *testing.T) {
	req := require.New(t)
	chat := NewChat("product-1", "seller-1", "buyer-1")

	req.True(chat.HasParticipant("seller-1"))
	req.True(chat.HasParticipant("buyer-1"))
	req.False(chat.HasParticipant("intruder"))

	req.Equal("buyer-1", chat.OtherParticipant("seller-1"))
	req.Equal("seller-1", chat.OtherParticipant("buyer-1"))

	req.Equal(RoomID(chat.ID), chat.Room())
}
