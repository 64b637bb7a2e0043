package services

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"tradepost/domain"
	"tradepost/domain/event"
	"tradepost/errors"
	"tradepost/mocks"
	"tradepost/moderation"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type chatFixture struct {
	registry  *mocks.MockIRegistry
	publisher *mocks.MockEventPublisher
	chats     *mocks.MockIChatRepository
	messages  *mocks.MockIMessageRepository
	users     *mocks.MockIUserRepository
	notifier  *mocks.MockINotificationService
	service   *ChatService
}

func newChatFixture(t *testing.T, ctrl *gomock.Controller, bannedWords []string) chatFixture {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	moderator, err := moderation.NewModerator(bannedWords, '*')
	require.NoError(t, err)

	f := chatFixture{
		registry:  mocks.NewMockIRegistry(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
		chats:     mocks.NewMockIChatRepository(ctrl),
		messages:  mocks.NewMockIMessageRepository(ctrl),
		users:     mocks.NewMockIUserRepository(ctrl),
		notifier:  mocks.NewMockINotificationService(ctrl),
	}
	f.service = NewChatService(log, f.registry, f.publisher, testUnitOfWork(t),
		f.chats, f.messages, f.users, f.notifier, &moderator)
	return f
}

func aChat() domain.Chat {
	return domain.Chat{
		ID:        uuid.NewString(),
		ProductID: uuid.NewString(),
		SellerID:  "seller-1",
		BuyerID:   "buyer-1",
		CreatedAt: time.Now().UTC(),
	}
}

func TestChatService_SendMessage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newChatFixture(t, ctrl, nil)

	chat := aChat()
	note := domain.NewNotification("seller-1", "New message from alice", "/chats/"+chat.ID)
	var stored domain.Message

	f.chats.EXPECT().Get(chat.ID).Return(chat, nil)
	f.users.EXPECT().Get("buyer-1").Return(domain.User{ID: "buyer-1", Username: "alice"}, nil)
	// Given the message and the recipient's notification share a write group
	f.messages.EXPECT().StoreTxn(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *badger.Txn, m domain.Message) error {
			stored = m
			return nil
		})
	f.notifier.EXPECT().NotifyTxn(gomock.Any(), "seller-1",
		"New message from alice", "/chats/"+chat.ID).
		Return(note, nil)
	// Then the room gets the broadcast and the seller gets the push
	f.publisher.EXPECT().Publish(gomock.Any()).Do(func(e event.DomainEvent) {
		msg, ok := e.(event.NewMessage)
		req.True(ok)
		req.Equal(chat.ID, msg.ChatID)
		req.Equal(chat.Room(), msg.RoomID)
		req.Equal("buyer-1", msg.SenderID)
		req.Equal("alice", msg.SenderUsername)
		req.Equal("is the bike still available", msg.Content)
	})
	f.notifier.EXPECT().Push(note)

	err := f.service.SendMessage(context.Background(), "buyer-1", chat.ID, "is the bike still available")

	req.NoError(err)
	req.Equal(chat.ID, stored.ChatID)
	req.Equal("is the bike still available", stored.Content)
}

func TestChatService_SendMessage_Censors_Content(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newChatFixture(t, ctrl, []string{"venmo"})

	chat := aChat()
	var stored domain.Message

	f.chats.EXPECT().Get(chat.ID).Return(chat, nil)
	f.users.EXPECT().Get("buyer-1").Return(domain.User{ID: "buyer-1", Username: "alice"}, nil)
	f.messages.EXPECT().StoreTxn(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *badger.Txn, m domain.Message) error {
			stored = m
			return nil
		})
	f.notifier.EXPECT().NotifyTxn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Notification{}, nil)
	f.publisher.EXPECT().Publish(gomock.Any()).Do(func(e event.DomainEvent) {
		// The broadcast carries the censored content, not the original
		req.Equal("pay me on ***** tonight", e.(event.NewMessage).Content)
	})
	f.notifier.EXPECT().Push(gomock.Any())

	err := f.service.SendMessage(context.Background(), "buyer-1", chat.ID, "pay me on venmo tonight")

	req.NoError(err)
	req.Equal("pay me on ***** tonight", stored.Content)
}

func TestChatService_SendMessage_Silent_Drops(t *testing.T) {
	tests := []struct {
		name    string
		sender  string
		content string
		wantErr bool
	}{
		{"Non participant", "intruder", "hello", false},
		{"Empty content", "buyer-1", "", false},
		{"Whitespace only content", "buyer-1", "   \n\t  ", false},
		{"Content too long", "buyer-1", strings.Repeat("a", 2001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newChatFixture(t, ctrl, nil)
			chat := aChat()

			// Nothing is stored, published or pushed; the mocks would
			// fail on any unexpected call
			f.chats.EXPECT().Get(chat.ID).Return(chat, nil)

			err := f.service.SendMessage(context.Background(), tt.sender, chat.ID, tt.content)

			req.NoError(err)
		})
	}
}

func TestChatService_SendMessage_Unknown_Chat(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newChatFixture(t, ctrl, nil)
	chatID := uuid.NewString()

	f.chats.EXPECT().Get(chatID).Return(domain.Chat{}, errors.ErrChatNotFound)

	// The error surfaces for logging only; no side effect occurred
	err := f.service.SendMessage(context.Background(), "buyer-1", chatID, "hello")

	req.ErrorIs(err, errors.ErrChatNotFound)
}

func TestChatService_JoinAndAnnounce_Joins_Online_Participants_Only(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newChatFixture(t, ctrl, nil)
	chat := aChat()

	// Given the seller is online and the buyer is not
	f.registry.EXPECT().LookupConnection("seller-1").Return("conn-1", true)
	f.registry.EXPECT().LookupConnection("buyer-1").Return("", false)
	f.registry.EXPECT().JoinRoom("seller-1", chat.Room())
	f.publisher.EXPECT().Publish(event.ChatStarted{ChatID: chat.ID, RoomID: chat.Room()})

	f.service.JoinAndAnnounce(chat)
}

func TestChatService_RejoinRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newChatFixture(t, ctrl, nil)

	first := aChat()
	second := aChat()
	f.chats.EXPECT().ListByUser("buyer-1").Return([]domain.Chat{first, second}, nil)
	f.registry.EXPECT().JoinRoom("buyer-1", first.Room())
	f.registry.EXPECT().JoinRoom("buyer-1", second.Room())

	f.service.RejoinRooms("buyer-1")
}

func TestChatService_GetChat(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newChatFixture(t, ctrl, nil)
	chat := aChat()
	history := []domain.Message{{ID: uuid.New(), ChatID: chat.ID, SenderID: "buyer-1", Content: "hello"}}
	next := "cursor-1"

	f.chats.EXPECT().Get(chat.ID).Return(chat, nil)
	f.messages.EXPECT().List(chat.ID, gomock.Nil()).Return(history, &next, nil)

	fetched, messages, cursor, err := f.service.GetChat("seller-1", chat.ID, nil)

	req.NoError(err)
	req.Equal(chat.ID, fetched.ID)
	req.Len(messages, 1)
	req.Equal(&next, cursor)
}

func TestChatService_GetChat_Hides_Foreign_Chats(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newChatFixture(t, ctrl, nil)
	chat := aChat()

	f.chats.EXPECT().Get(chat.ID).Return(chat, nil)

	// A non-participant cannot tell a hidden chat from a missing one
	_, _, _, err := f.service.GetChat("intruder", chat.ID, nil)

	req.ErrorIs(err, errors.ErrChatNotFound)
}
