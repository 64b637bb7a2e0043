package repositories

import (
	"testing"

	"tradepost/domain"
	"tradepost/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestChatRepository_Create_And_Get(t *testing.T) {
	req := require.New(t)
	repository := NewChatRepository(openTestDB(t))
	chat := domain.NewChat(uuid.NewString(), "seller-1", "buyer-1")

	req.NoError(repository.Create(chat))
	fetched, err := repository.Get(chat.ID)

	req.NoError(err)
	req.Equal(chat.ID, fetched.ID)
	req.Equal(chat.ProductID, fetched.ProductID)
	req.Equal(chat.SellerID, fetched.SellerID)
	req.Equal(chat.BuyerID, fetched.BuyerID)
}

func TestChatRepository_Get_Unknown_Chat(t *testing.T) {
	req := require.New(t)
	repository := NewChatRepository(openTestDB(t))

	_, err := repository.Get(uuid.NewString())

	req.ErrorIs(err, errors.ErrChatNotFound)
}

func TestChatRepository_ListByProduct(t *testing.T) {
	req := require.New(t)
	repository := NewChatRepository(openTestDB(t))
	productID := uuid.NewString()

	// Given two buyers negotiated the same product, plus an unrelated chat
	chat1 := domain.NewChat(productID, "seller-1", "buyer-1")
	chat2 := domain.NewChat(productID, "seller-1", "buyer-2")
	other := domain.NewChat(uuid.NewString(), "seller-2", "buyer-1")
	for _, c := range []domain.Chat{chat1, chat2, other} {
		req.NoError(repository.Create(c))
	}

	chats, err := repository.ListByProduct(productID)

	req.NoError(err)
	req.Len(chats, 2)
	ids := []string{chats[0].ID, chats[1].ID}
	req.Contains(ids, chat1.ID)
	req.Contains(ids, chat2.ID)
}

func TestChatRepository_ListByUser_Covers_Both_Sides(t *testing.T) {
	req := require.New(t)
	repository := NewChatRepository(openTestDB(t))
	userID := uuid.NewString()

	// Given the user buys in one chat and sells in another
	asBuyer := domain.NewChat(uuid.NewString(), "seller-1", userID)
	asSeller := domain.NewChat(uuid.NewString(), userID, "buyer-2")
	unrelated := domain.NewChat(uuid.NewString(), "seller-3", "buyer-3")
	for _, c := range []domain.Chat{asBuyer, asSeller, unrelated} {
		req.NoError(repository.Create(c))
	}

	chats, err := repository.ListByUser(userID)

	req.NoError(err)
	req.Len(chats, 2)
	ids := []string{chats[0].ID, chats[1].ID}
	req.Contains(ids, asBuyer.ID)
	req.Contains(ids, asSeller.ID)
}
