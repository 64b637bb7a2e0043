//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"tradepost/domain"
	spb "tradepost/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

type IMessageRepository interface {
	Store(m domain.Message) error
	StoreTxn(txn *badger.Txn, m domain.Message) error
	// List returns messages of a chat newest first, at most the
	// configured limit, together with a cursor for the next page.
	// The cursor is nil once the history is exhausted.
	List(chatID string, cursor *string) ([]domain.Message, *string, error)
}

type MessageRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limit *int) MessageRepository {
	return MessageRepository{db: db, log: log, limit: limit}
}

// messageKey is "msg:{chat}:{timestamp_padded}:{uuid}":
//  1. the 19-digit zero padding makes lexicographic order chronological;
//  2. the uuid disambiguates two messages landing on the same nanosecond.
func messageKey(m domain.Message) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", m.ChatID, m.CreatedAt.UnixNano(), m.ID))
}

func (r MessageRepository) Store(m domain.Message) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return r.StoreTxn(txn, m)
	})
}

func (r MessageRepository) StoreTxn(txn *badger.Txn, m domain.Message) error {
	bytes, err := proto.Marshal(fromMessage(m))
	if err != nil {
		return err
	}
	return txn.Set(messageKey(m), bytes)
}

func (r MessageRepository) List(chatID string, cursor *string) ([]domain.Message, *string, error) {
	var byteMessages [][]byte
	var next *string
	err := r.db.View(func(txn *badger.Txn) error {
		var lastKey string
		prefixStr := "msg:" + chatID + ":"
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Without a cursor, seek past the newest possible timestamp and
		// walk backwards; with one, resume just before the cursor key.
		var seekKey []byte
		switch cursor {
		case nil:
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limit != nil && len(byteMessages) == *r.limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *r.limit))
				// Older messages remain past this page
				next = &lastKey
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			if err := item.Value(func(value []byte) error {
				byteMessages = append(byteMessages, append([]byte(nil), value...))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var messages []domain.Message
	for _, b := range byteMessages {
		var messagePb spb.Message
		if err := proto.Unmarshal(b, &messagePb); err != nil {
			return nil, nil, err
		}
		message, err := toMessage(&messagePb)
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	return messages, next, nil
}

func fromMessage(m domain.Message) *spb.Message {
	return &spb.Message{
		Id:       m.ID.String(),
		ChatId:   m.ChatID,
		SenderId: m.SenderID,
		Content:  m.Content,
		At:       m.CreatedAt.UnixNano(),
	}
}

func toMessage(messagePb *spb.Message) (domain.Message, error) {
	parsedID, err := uuid.Parse(messagePb.Id)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:        parsedID,
		ChatID:    messagePb.ChatId,
		SenderID:  messagePb.SenderId,
		Content:   messagePb.Content,
		CreatedAt: time.Unix(0, messagePb.At).UTC(),
	}, nil
}
