//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	gerrors "errors"
	"strings"
	"time"

	"tradepost/domain"
	"tradepost/errors"
	spb "tradepost/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

type IChatRepository interface {
	Get(id string) (domain.Chat, error)
	Create(c domain.Chat) error
	CreateTxn(txn *badger.Txn, c domain.Chat) error
	ListByProduct(productID string) ([]domain.Chat, error)
	// ListByProductTxn lists inside an already open transaction, so a
	// caller mutating the product sees the chats of the same snapshot.
	ListByProductTxn(txn *badger.Txn, productID string) ([]domain.Chat, error)
	ListByUser(userID string) ([]domain.Chat, error)
}

type ChatRepository struct {
	db *badger.DB
}

func NewChatRepository(db *badger.DB) ChatRepository {
	return ChatRepository{db: db}
}

func chatKey(id string) []byte {
	return []byte("chat:" + id)
}

// Index entries carry no value; the chat id is the key suffix.
func productChatKey(productID, chatID string) []byte {
	return []byte("prodchat:" + productID + ":" + chatID)
}

func userChatKey(userID, chatID string) []byte {
	return []byte("userchat:" + userID + ":" + chatID)
}

func (r ChatRepository) Get(id string) (domain.Chat, error) {
	var chatPb spb.Chat
	err := r.db.View(func(txn *badger.Txn) error {
		return getProto(txn, chatKey(id), &chatPb)
	})
	if gerrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Chat{}, errors.ErrChatNotFound
	}
	if err != nil {
		return domain.Chat{}, err
	}
	return toChat(&chatPb), nil
}

func (r ChatRepository) Create(c domain.Chat) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return r.CreateTxn(txn, c)
	})
}

// CreateTxn writes the chat row plus the product and participant
// indexes needed by the fan-out and reconnect paths.
func (r ChatRepository) CreateTxn(txn *badger.Txn, c domain.Chat) error {
	bytes, err := proto.Marshal(fromChat(c))
	if err != nil {
		return err
	}
	if err := txn.Set(chatKey(c.ID), bytes); err != nil {
		return err
	}
	if err := txn.Set(productChatKey(c.ProductID, c.ID), nil); err != nil {
		return err
	}
	if err := txn.Set(userChatKey(c.SellerID, c.ID), nil); err != nil {
		return err
	}
	return txn.Set(userChatKey(c.BuyerID, c.ID), nil)
}

// ListByProduct resolves every chat tied to a product, e.g. to notify
// all negotiation partners when it is marked sold.
func (r ChatRepository) ListByProduct(productID string) ([]domain.Chat, error) {
	return r.listByIndex("prodchat:" + productID + ":")
}

func (r ChatRepository) ListByProductTxn(txn *badger.Txn, productID string) ([]domain.Chat, error) {
	return listByIndexTxn(txn, "prodchat:"+productID+":")
}

// ListByUser resolves every chat a user participates in, used to
// rejoin rooms on reconnect.
func (r ChatRepository) ListByUser(userID string) ([]domain.Chat, error) {
	return r.listByIndex("userchat:" + userID + ":")
}

func (r ChatRepository) listByIndex(prefix string) ([]domain.Chat, error) {
	var chats []domain.Chat
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		chats, err = listByIndexTxn(txn, prefix)
		return err
	})
	if err != nil {
		return nil, err
	}
	return chats, nil
}

func listByIndexTxn(txn *badger.Txn, prefix string) ([]domain.Chat, error) {
	var chats []domain.Chat
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()

	for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
		chatID := strings.TrimPrefix(string(it.Item().Key()), prefix)
		var chatPb spb.Chat
		if err := getProto(txn, chatKey(chatID), &chatPb); err != nil {
			return nil, err
		}
		chats = append(chats, toChat(&chatPb))
	}
	return chats, nil
}

func fromChat(c domain.Chat) *spb.Chat {
	return &spb.Chat{
		Id:        c.ID,
		ProductId: c.ProductID,
		SellerId:  c.SellerID,
		BuyerId:   c.BuyerID,
		CreatedAt: c.CreatedAt.UnixNano(),
	}
}

func toChat(chatPb *spb.Chat) domain.Chat {
	return domain.Chat{
		ID:        chatPb.Id,
		ProductID: chatPb.ProductId,
		SellerID:  chatPb.SellerId,
		BuyerID:   chatPb.BuyerId,
		CreatedAt: time.Unix(0, chatPb.CreatedAt).UTC(),
	}
}
