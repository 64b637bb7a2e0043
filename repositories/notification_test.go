package repositories

import (
	"testing"
	"time"

	"tradepost/domain"
	"tradepost/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_ListByRecipient_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openTestDB(t))
	recipientID := uuid.NewString()
	at := time.Now().UTC()

	for i, content := range []string{"oldest", "middle", "newest"} {
		req.NoError(repository.Store(domain.Notification{
			ID:          uuid.New(),
			RecipientID: recipientID,
			Content:     content,
			Link:        "/chats/42",
			CreatedAt:   at.Add(time.Duration(i) * time.Second),
		}))
	}

	notifications, err := repository.ListByRecipient(recipientID)

	req.NoError(err)
	req.Len(notifications, 3)
	req.Equal("newest", notifications[0].Content)
	req.Equal("oldest", notifications[2].Content)
}

func TestNotificationRepository_ListByRecipient_Is_Scoped(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openTestDB(t))
	recipientID := uuid.NewString()

	req.NoError(repository.Store(domain.NewNotification(recipientID, "for me", "")))
	req.NoError(repository.Store(domain.NewNotification(uuid.NewString(), "for someone else", "")))

	notifications, err := repository.ListByRecipient(recipientID)

	req.NoError(err)
	req.Len(notifications, 1)
	req.Equal("for me", notifications[0].Content)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openTestDB(t))
	recipientID := uuid.NewString()
	notification := domain.NewNotification(recipientID, "The seller accepted your request", "/chats/42")
	req.NoError(repository.Store(notification))

	// When marking it read
	req.NoError(repository.MarkRead(recipientID, notification.ID))

	// Then the persisted copy is flagged
	notifications, err := repository.ListByRecipient(recipientID)
	req.NoError(err)
	req.Len(notifications, 1)
	req.True(notifications[0].IsRead)
}

func TestNotificationRepository_MarkRead_Unknown_ID(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openTestDB(t))
	recipientID := uuid.NewString()
	req.NoError(repository.Store(domain.NewNotification(recipientID, "hello", "")))

	err := repository.MarkRead(recipientID, uuid.New())

	req.ErrorIs(err, errors.ErrNotificationNotFound)
}

func TestNotificationRepository_MarkRead_Other_Recipient(t *testing.T) {
	req := require.New(t)
	repository := NewNotificationRepository(openTestDB(t))
	notification := domain.NewNotification(uuid.NewString(), "not yours", "")
	req.NoError(repository.Store(notification))

	// A recipient cannot mark another recipient's notification
	err := repository.MarkRead(uuid.NewString(), notification.ID)

	req.ErrorIs(err, errors.ErrNotificationNotFound)
}
