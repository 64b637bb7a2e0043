package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is persisted as the durable source of truth; live push
// over a connection is best-effort on top of it. IsRead is the only
// mutable field.
type Notification struct {
	ID          uuid.UUID
	RecipientID string
	Content     string
	Link        string
	IsRead      bool
	CreatedAt   time.Time
}

func NewNotification(recipientID, content, link string) Notification {
	return Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Content:     content,
		Link:        link,
		CreatedAt:   time.Now().UTC(),
	}
}
