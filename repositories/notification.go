//go:generate go run go.uber.org/mock/mockgen -source=notification.go -destination=../mocks/mock_notification_repository.go -package=mocks
package repositories

import (
	"bytes"
	"fmt"
	"time"

	"tradepost/domain"
	"tradepost/errors"
	spb "tradepost/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

type INotificationRepository interface {
	Store(n domain.Notification) error
	StoreTxn(txn *badger.Txn, n domain.Notification) error
	ListByRecipient(recipientID string) ([]domain.Notification, error)
	// MarkRead flips the only mutable field of a notification.
	MarkRead(recipientID string, notificationID uuid.UUID) error
}

type NotificationRepository struct {
	db *badger.DB
}

func NewNotificationRepository(db *badger.DB) NotificationRepository {
	return NotificationRepository{db: db}
}

// notificationKey is "notif:{recipient}:{timestamp_padded}:{uuid}",
// same padded-nanos scheme as messages so a prefix scan is ordered.
func notificationKey(n domain.Notification) []byte {
	return []byte(fmt.Sprintf("notif:%s:%019d:%s", n.RecipientID, n.CreatedAt.UnixNano(), n.ID))
}

func (r NotificationRepository) Store(n domain.Notification) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return r.StoreTxn(txn, n)
	})
}

func (r NotificationRepository) StoreTxn(txn *badger.Txn, n domain.Notification) error {
	encoded, err := proto.Marshal(fromNotification(n))
	if err != nil {
		return err
	}
	return txn.Set(notificationKey(n), encoded)
}

// ListByRecipient returns a user's notifications newest first.
func (r NotificationRepository) ListByRecipient(recipientID string) ([]domain.Notification, error) {
	var byteValues [][]byte
	prefix := []byte("notif:" + recipientID + ":")
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(append([]byte(nil), prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if err := it.Item().Value(func(value []byte) error {
				byteValues = append(byteValues, append([]byte(nil), value...))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var notifications []domain.Notification
	for _, b := range byteValues {
		var notificationPb spb.Notification
		if err := proto.Unmarshal(b, &notificationPb); err != nil {
			return nil, err
		}
		n, err := toNotification(&notificationPb)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkRead scans the recipient's prefix for the notification id. The
// per-user notification count stays small enough that a secondary
// index is not worth its write amplification.
func (r NotificationRepository) MarkRead(recipientID string, notificationID uuid.UUID) error {
	prefix := []byte("notif:" + recipientID + ":")
	suffix := []byte(":" + notificationID.String())
	return r.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := item.Key()
			if !bytes.HasSuffix(key, suffix) {
				continue
			}
			var notificationPb spb.Notification
			if err := item.Value(func(value []byte) error {
				return proto.Unmarshal(value, &notificationPb)
			}); err != nil {
				return err
			}
			notificationPb.IsRead = true
			encoded, err := proto.Marshal(&notificationPb)
			if err != nil {
				return err
			}
			return txn.Set(append([]byte(nil), key...), encoded)
		}
		return errors.ErrNotificationNotFound
	})
}

func fromNotification(n domain.Notification) *spb.Notification {
	return &spb.Notification{
		Id:          n.ID.String(),
		RecipientId: n.RecipientID,
		Content:     n.Content,
		Link:        n.Link,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt.UnixNano(),
	}
}

func toNotification(notificationPb *spb.Notification) (domain.Notification, error) {
	parsedID, err := uuid.Parse(notificationPb.Id)
	if err != nil {
		return domain.Notification{}, err
	}
	return domain.Notification{
		ID:          parsedID,
		RecipientID: notificationPb.RecipientId,
		Content:     notificationPb.Content,
		Link:        notificationPb.Link,
		IsRead:      notificationPb.IsRead,
		CreatedAt:   time.Unix(0, notificationPb.CreatedAt).UTC(),
	}, nil
}
