//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tradepost/contract"
	"tradepost/domain"
	"tradepost/domain/event"
	"tradepost/errors"
	"tradepost/moderation"
	"tradepost/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// messageInput bounds what a client may put on the wire as a chat
// message. Anything outside these rules is dropped silently.
type messageInput struct {
	Content string `validate:"required,max=2000"`
}

// IChatService combines the chat session manager (rooms) and the
// message router.
type IChatService interface {
	// JoinAndAnnounce joins the current connection of each participant
	// to the chat's room (absent participants are simply not joined)
	// and announces chat_started to the room.
	JoinAndAnnounce(chat domain.Chat)
	// RejoinRooms restores the room membership of a reconnecting user
	// from their persisted chats.
	RejoinRooms(userID string)
	// SendMessage persists then broadcasts. Every failure is silent:
	// the only externally observable effect of an invalid call is the
	// absence of any outgoing event. The returned error feeds logs.
	SendMessage(ctx context.Context, senderID, chatID, content string) error
	GetChat(userID, chatID string, cursor *string) (domain.Chat, []domain.Message, *string, error)
}

type ChatService struct {
	log       *slog.Logger
	registry  contract.IRegistry
	publisher contract.EventPublisher
	uow       repositories.UnitOfWork
	chats     repositories.IChatRepository
	messages  repositories.IMessageRepository
	users     repositories.IUserRepository
	notifier  INotificationService
	moderator *moderation.Moderator
}

func NewChatService(log *slog.Logger, registry contract.IRegistry,
	publisher contract.EventPublisher, uow repositories.UnitOfWork,
	chats repositories.IChatRepository, messages repositories.IMessageRepository,
	users repositories.IUserRepository, notifier INotificationService,
	moderator *moderation.Moderator) *ChatService {
	return &ChatService{
		log:       log,
		registry:  registry,
		publisher: publisher,
		uow:       uow,
		chats:     chats,
		messages:  messages,
		users:     users,
		notifier:  notifier,
		moderator: moderator,
	}
}

func (s *ChatService) JoinAndAnnounce(chat domain.Chat) {
	roomID := chat.Room()
	for _, participantID := range []string{chat.SellerID, chat.BuyerID} {
		if _, online := s.registry.LookupConnection(participantID); online {
			s.registry.JoinRoom(participantID, roomID)
		}
	}
	s.publisher.Publish(event.ChatStarted{ChatID: chat.ID, RoomID: roomID})
}

func (s *ChatService) RejoinRooms(userID string) {
	chats, err := s.chats.ListByUser(userID)
	if err != nil {
		s.log.Error("Failed to restore room membership", "user_id", userID, "error", err)
		return
	}
	for _, chat := range chats {
		s.registry.JoinRoom(userID, chat.Room())
	}
}

func (s *ChatService) SendMessage(_ context.Context, senderID, chatID, content string) error {
	chat, err := s.chats.Get(chatID)
	if err != nil {
		s.log.Debug("Dropping message for unknown chat", "chat_id", chatID)
		return err
	}
	if !chat.HasParticipant(senderID) {
		s.log.Debug("Dropping message from non-participant", "chat_id", chatID, "sender_id", senderID)
		return nil
	}
	if err := validate.Struct(messageInput{Content: strings.TrimSpace(content)}); err != nil {
		s.log.Debug("Dropping invalid message content", "chat_id", chatID)
		return nil
	}

	sender, err := s.users.Get(senderID)
	if err != nil {
		return err
	}

	message := domain.Message{
		ID:        uuid.New(),
		ChatID:    chat.ID,
		SenderID:  senderID,
		Content:   s.moderator.Censor(content),
		CreatedAt: time.Now().UTC(),
	}
	recipientID := chat.OtherParticipant(senderID)

	var note domain.Notification
	err = s.uow.Execute(func(txn *badger.Txn) error {
		if err := s.messages.StoreTxn(txn, message); err != nil {
			return err
		}
		note, err = s.notifier.NotifyTxn(txn,
			recipientID,
			fmt.Sprintf("New message from %s", sender.Username),
			"/chats/"+chat.ID)
		return err
	})
	if err != nil {
		s.log.Error("Message write group failed", "chat_id", chatID, "error", err)
		return err
	}

	s.publisher.Publish(event.NewMessage{
		ID:             message.ID,
		ChatID:         chat.ID,
		RoomID:         chat.Room(),
		SenderID:       senderID,
		SenderUsername: sender.Username,
		Content:        message.Content,
		At:             message.CreatedAt,
	})
	s.notifier.Push(note)
	return nil
}

// GetChat serves the historical read path. Non-participants learn
// nothing beyond "not found".
func (s *ChatService) GetChat(userID, chatID string, cursor *string) (domain.Chat, []domain.Message, *string, error) {
	chat, err := s.chats.Get(chatID)
	if err != nil {
		return domain.Chat{}, nil, nil, err
	}
	if !chat.HasParticipant(userID) {
		return domain.Chat{}, nil, nil, errors.ErrChatNotFound
	}
	messages, next, err := s.messages.List(chatID, cursor)
	if err != nil {
		return domain.Chat{}, nil, nil, err
	}
	return chat, messages, next, nil
}
