package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"tradepost/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_List_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)
	chatID := uuid.NewString()
	at := time.Now().UTC()

	// Given three messages written out of order
	for _, m := range []domain.Message{
		{ID: uuid.New(), ChatID: chatID, SenderID: "bob", Content: "second", CreatedAt: at.Add(1 * time.Minute)},
		{ID: uuid.New(), ChatID: chatID, SenderID: "alice", Content: "first", CreatedAt: at},
		{ID: uuid.New(), ChatID: chatID, SenderID: "clara", Content: "third", CreatedAt: at.Add(2 * time.Minute)},
	} {
		req.NoError(repository.Store(m))
	}

	// When fetching the chat history
	messages, cursor, err := repository.List(chatID, nil)
	req.NoError(err)

	// Then the messages come back newest first, with no further page
	req.Nil(cursor)
	req.Len(messages, 3)
	req.Equal("third", messages[0].Content)
	req.Equal("second", messages[1].Content)
	req.Equal("first", messages[2].Content)
}

func TestMessageRepository_List_Ignores_Other_Chats(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)
	chatID := uuid.NewString()
	otherChatID := uuid.NewString()
	at := time.Now().UTC()

	req.NoError(repository.Store(domain.Message{ID: uuid.New(), ChatID: chatID, SenderID: "alice", Content: "mine", CreatedAt: at}))
	req.NoError(repository.Store(domain.Message{ID: uuid.New(), ChatID: otherChatID, SenderID: "bob", Content: "elsewhere", CreatedAt: at}))

	messages, _, err := repository.List(chatID, nil)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("mine", messages[0].Content)
}

func TestMessageRepository_Pagination(t *testing.T) {
	req := require.New(t)
	limit := 4
	repository := NewMessageRepository(openTestDB(t), slog.Default(), &limit)
	chatID := uuid.NewString()
	now := time.Now().UTC()

	// Given 10 messages, oldest to newest
	for i := 1; i <= 10; i++ {
		req.NoError(repository.Store(domain.Message{
			ID:        uuid.New(),
			ChatID:    chatID,
			SenderID:  fmt.Sprintf("user_%d", i),
			Content:   fmt.Sprintf("Message %d", i),
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	// --- PAGE 1 ---
	page1, cursor1, err := repository.List(chatID, nil)
	req.NoError(err)
	req.Len(page1, 4)
	req.Equal("user_10", page1[0].SenderID)
	req.Equal("user_7", page1[3].SenderID)
	req.NotNil(cursor1)

	// --- PAGE 2 ---
	page2, cursor2, err := repository.List(chatID, cursor1)
	req.NoError(err)
	req.Len(page2, 4)
	req.Equal("user_6", page2[0].SenderID)
	req.Equal("user_3", page2[3].SenderID)
	req.NotNil(cursor2)

	// --- PAGE 3 (end) ---
	page3, cursor3, err := repository.List(chatID, cursor2)
	req.NoError(err)
	req.Len(page3, 2)
	req.Equal("user_2", page3[0].SenderID)
	req.Equal("user_1", page3[1].SenderID)
	// A nil cursor tells the caller the history is exhausted
	req.Nil(cursor3)
}

func TestMessageRepository_List_Empty_Chat(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	messages, cursor, err := repository.List(uuid.NewString(), nil)

	req.NoError(err)
	req.Empty(messages)
	req.Nil(cursor)
}
