//go:generate go run go.uber.org/mock/mockgen -source=notification_service.go -destination=../mocks/mock_notification_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"tradepost/contract"
	"tradepost/domain"
	"tradepost/domain/event"
	"tradepost/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// INotificationService is the notification dispatcher. Persistence is
// the source of truth; the live push is best-effort on top of it, so
// an offline recipient finds the notification by polling the list.
type INotificationService interface {
	Notify(ctx context.Context, recipientID, content, link string) error
	// NotifyTxn persists a notification inside a caller-owned write
	// group and returns it so the caller can Push after commit.
	NotifyTxn(txn *badger.Txn, recipientID, content, link string) (domain.Notification, error)
	Push(n domain.Notification)
	List(recipientID string) ([]domain.Notification, error)
	MarkRead(recipientID string, notificationID uuid.UUID) error
}

type NotificationService struct {
	log           *slog.Logger
	notifications repositories.INotificationRepository
	publisher     contract.EventPublisher
}

func NewNotificationService(log *slog.Logger,
	notifications repositories.INotificationRepository,
	publisher contract.EventPublisher) *NotificationService {
	return &NotificationService{log: log, notifications: notifications, publisher: publisher}
}

func (s *NotificationService) Notify(_ context.Context, recipientID, content, link string) error {
	n := domain.NewNotification(recipientID, content, link)
	if err := s.notifications.Store(n); err != nil {
		return err
	}
	s.Push(n)
	return nil
}

func (s *NotificationService) NotifyTxn(txn *badger.Txn, recipientID, content, link string) (domain.Notification, error) {
	n := domain.NewNotification(recipientID, content, link)
	return n, s.notifications.StoreTxn(txn, n)
}

// Push mirrors an already-persisted notification onto the recipient's
// live connection, if any. Losing it is harmless.
func (s *NotificationService) Push(n domain.Notification) {
	s.publisher.Publish(event.NotificationPushed{
		NotificationID: n.ID,
		RecipientID:    n.RecipientID,
		Content:        n.Content,
		Link:           n.Link,
		At:             n.CreatedAt,
	})
}

func (s *NotificationService) List(recipientID string) ([]domain.Notification, error) {
	return s.notifications.ListByRecipient(recipientID)
}

func (s *NotificationService) MarkRead(recipientID string, notificationID uuid.UUID) error {
	return s.notifications.MarkRead(recipientID, notificationID)
}
