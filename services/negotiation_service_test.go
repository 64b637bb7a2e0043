package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"tradepost/domain"
	"tradepost/domain/event"
	"tradepost/errors"
	"tradepost/mocks"
	"tradepost/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type negotiationFixture struct {
	products  *mocks.MockIProductRepository
	users     *mocks.MockIUserRepository
	chats     *mocks.MockIChatRepository
	sessions  *mocks.MockIChatService
	notifier  *mocks.MockINotificationService
	publisher *mocks.MockEventPublisher
	service   *NegotiationService
}

func newNegotiationFixture(t *testing.T, ctrl *gomock.Controller) negotiationFixture {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := negotiationFixture{
		products:  mocks.NewMockIProductRepository(ctrl),
		users:     mocks.NewMockIUserRepository(ctrl),
		chats:     mocks.NewMockIChatRepository(ctrl),
		sessions:  mocks.NewMockIChatService(ctrl),
		notifier:  mocks.NewMockINotificationService(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
	}
	f.service = NewNegotiationService(log, testUnitOfWork(t),
		f.products, f.users, f.chats, f.sessions, f.notifier, f.publisher)
	return f
}

func availableProduct(sellerID string) domain.Product {
	return domain.Product{
		ID:        uuid.NewString(),
		SellerID:  sellerID,
		Name:      "Vintage road bike",
		Price:     120,
		Status:    domain.StatusAvailable,
		CreatedAt: time.Now().UTC(),
	}
}

func TestNegotiationService_RequestPurchase(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newNegotiationFixture(t, ctrl)
	ctx := context.Background()

	product := availableProduct("seller-1")
	pending := product
	pending.Status = domain.StatusPending

	// Given the product is available and the buyer exists
	f.products.EXPECT().Get(product.ID).Return(product, nil)
	f.products.EXPECT().
		UpdateStatusIf(product.ID, domain.StatusAvailable, domain.StatusPending).
		Return(pending, nil)
	f.users.EXPECT().Get("buyer-1").Return(domain.User{ID: "buyer-1", Username: "alice"}, nil)

	// Then the buyer gets an ack and the seller gets the request
	f.publisher.EXPECT().Publish(event.RequestSent{BuyerID: "buyer-1", Msg: "Request sent to seller"})
	f.publisher.EXPECT().Publish(event.NewRequest{
		SellerID:      "seller-1",
		ProductID:     product.ID,
		ProductName:   "Vintage road bike",
		BuyerID:       "buyer-1",
		BuyerUsername: "alice",
	})

	req.NoError(f.service.RequestPurchase(ctx, "buyer-1", product.ID))
}

func TestNegotiationService_RequestPurchase_Failures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(f negotiationFixture, product domain.Product)
	}{
		{
			name: "Unknown product",
			setup: func(f negotiationFixture, product domain.Product) {
				f.products.EXPECT().Get(product.ID).Return(domain.Product{}, errors.ErrProductNotFound)
			},
		},
		{
			name: "Buyer is the seller",
			setup: func(f negotiationFixture, product domain.Product) {
				product.SellerID = "buyer-1"
				f.products.EXPECT().Get(product.ID).Return(product, nil)
			},
		},
		{
			name: "Product already pending",
			setup: func(f negotiationFixture, product domain.Product) {
				f.products.EXPECT().Get(product.ID).Return(product, nil)
				f.products.EXPECT().
					UpdateStatusIf(product.ID, domain.StatusAvailable, domain.StatusPending).
					Return(domain.Product{}, errors.ErrNotAvailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newNegotiationFixture(t, ctrl)
			product := availableProduct("seller-1")
			tt.setup(f, product)

			// Then the caller only learns the coarse refusal, and
			// nothing is published
			err := f.service.RequestPurchase(ctx, "buyer-1", product.ID)
			req.ErrorIs(err, errors.ErrNotAvailable)
		})
	}
}

func TestNegotiationService_AcceptRequest(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newNegotiationFixture(t, ctrl)
	ctx := context.Background()

	product := availableProduct("seller-1")
	note := domain.NewNotification("buyer-1", "The seller accepted your request for Vintage road bike", "")
	var created domain.Chat

	f.products.EXPECT().Get(product.ID).Return(product, nil)
	// Given the chat and the buyer's notification land in one write group
	f.chats.EXPECT().CreateTxn(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *badger.Txn, c domain.Chat) error {
			created = c
			return nil
		})
	f.notifier.EXPECT().NotifyTxn(gomock.Any(), "buyer-1",
		"The seller accepted your request for Vintage road bike", gomock.Any()).
		Return(note, nil)
	// Then both parties are joined and the buyer is pushed
	f.sessions.EXPECT().JoinAndAnnounce(gomock.Any()).Do(func(c domain.Chat) {
		req.Equal(created.ID, c.ID)
	})
	f.notifier.EXPECT().Push(note)

	chatID, err := f.service.AcceptRequest(ctx, "seller-1", "buyer-1", product.ID)

	req.NoError(err)
	req.Equal(created.ID, chatID)
	req.Equal("seller-1", created.SellerID)
	req.Equal("buyer-1", created.BuyerID)
	req.Equal(product.ID, created.ProductID)
}

func TestNegotiationService_AcceptRequest_Not_Seller(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newNegotiationFixture(t, ctrl)

	product := availableProduct("seller-1")
	f.products.EXPECT().Get(product.ID).Return(product, nil)

	_, err := f.service.AcceptRequest(context.Background(), "intruder", "buyer-1", product.ID)

	req.ErrorIs(err, errors.ErrNotSeller)
}

func TestNegotiationService_AcceptRequest_Twice_Creates_Two_Chats(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newNegotiationFixture(t, ctrl)
	ctx := context.Background()

	product := availableProduct("seller-1")
	var createdIDs []string

	f.products.EXPECT().Get(product.ID).Return(product, nil).Times(2)
	f.chats.EXPECT().CreateTxn(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *badger.Txn, c domain.Chat) error {
			createdIDs = append(createdIDs, c.ID)
			return nil
		}).Times(2)
	f.notifier.EXPECT().NotifyTxn(gomock.Any(), "buyer-1", gomock.Any(), gomock.Any()).
		Return(domain.Notification{}, nil).Times(2)
	f.sessions.EXPECT().JoinAndAnnounce(gomock.Any()).Times(2)
	f.notifier.EXPECT().Push(gomock.Any()).Times(2)

	// When the seller accepts the same buyer twice
	first, err := f.service.AcceptRequest(ctx, "seller-1", "buyer-1", product.ID)
	req.NoError(err)
	second, err := f.service.AcceptRequest(ctx, "seller-1", "buyer-1", product.ID)
	req.NoError(err)

	// Then two independent chats exist
	req.Len(createdIDs, 2)
	req.NotEqual(first, second)
}

func TestNegotiationService_MarkSold_Notifies_Every_Partner(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newNegotiationFixture(t, ctrl)

	product := availableProduct("seller-1")
	product.Status = domain.StatusPending
	// Given two buyers negotiated, one of them twice
	chats := []domain.Chat{
		{ID: "c1", ProductID: product.ID, SellerID: "seller-1", BuyerID: "buyer-1"},
		{ID: "c2", ProductID: product.ID, SellerID: "seller-1", BuyerID: "buyer-2"},
		{ID: "c3", ProductID: product.ID, SellerID: "seller-1", BuyerID: "buyer-1"},
	}

	f.products.EXPECT().GetTxn(gomock.Any(), product.ID).Return(product, nil)
	f.chats.EXPECT().ListByProductTxn(gomock.Any(), product.ID).Return(chats, nil)
	f.products.EXPECT().PutTxn(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *badger.Txn, p domain.Product) error {
			req.Equal(domain.StatusSold, p.Status)
			return nil
		})
	// Then each distinct partner is notified exactly once
	var notified []string
	f.notifier.EXPECT().NotifyTxn(gomock.Any(), gomock.Any(),
		"Vintage road bike has been sold", "/products/"+product.ID).
		DoAndReturn(func(_ *badger.Txn, recipientID, content, link string) (domain.Notification, error) {
			notified = append(notified, recipientID)
			return domain.NewNotification(recipientID, content, link), nil
		}).Times(2)
	f.notifier.EXPECT().Push(gomock.Any()).Times(2)

	req.NoError(f.service.MarkSold(context.Background(), "seller-1", product.ID))
	req.ElementsMatch([]string{"buyer-1", "buyer-2"}, notified)
}

func TestNegotiationService_MarkSold_Not_Seller(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newNegotiationFixture(t, ctrl)

	product := availableProduct("seller-1")
	f.products.EXPECT().GetTxn(gomock.Any(), product.ID).Return(product, nil)

	err := f.service.MarkSold(context.Background(), "intruder", product.ID)

	req.ErrorIs(err, errors.ErrNotSeller)
}

func TestNegotiationService_UpdatePickupStatus(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newNegotiationFixture(t, ctrl)

	product := availableProduct("seller-1")
	f.products.EXPECT().GetTxn(gomock.Any(), product.ID).Return(product, nil)
	f.products.EXPECT().PutTxn(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ *badger.Txn, p domain.Product) error {
			req.Equal(domain.PickupAtCenter, p.PickupStatus)
			return nil
		})

	req.NoError(f.service.UpdatePickupStatus(context.Background(), "seller-1", product.ID, domain.PickupAtCenter))
}

func TestNegotiationService_UpdatePickupStatus_Invalid_Value(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newNegotiationFixture(t, ctrl)

	// The repository is never touched for a bogus status
	err := f.service.UpdatePickupStatus(context.Background(), "seller-1", uuid.NewString(), "Teleported")

	req.ErrorIs(err, errors.ErrInvalidPickupStatus)
}

// racingProducts delegates to a real repository and runs a hook right
// after the in-transaction read, letting a test commit a concurrent
// write inside the read/commit window.
type racingProducts struct {
	repositories.IProductRepository
	afterGet func()
}

func (r racingProducts) GetTxn(txn *badger.Txn, id string) (domain.Product, error) {
	product, err := r.IProductRepository.GetTxn(txn, id)
	if r.afterGet != nil {
		r.afterGet()
	}
	return product, err
}

func TestNegotiationService_UpdatePickupStatus_Detects_Concurrent_Status_Change(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db := openTestDB(t)
	products := repositories.NewProductRepository(db)

	product := availableProduct("seller-1")
	req.NoError(products.Put(product))

	// Given a purchase request that lands between the read and the
	// commit of the pickup update
	racing := racingProducts{IProductRepository: products, afterGet: func() {
		_, err := products.UpdateStatusIf(product.ID, domain.StatusAvailable, domain.StatusPending)
		req.NoError(err)
	}}
	service := NewNegotiationService(log, repositories.NewUnitOfWork(db), racing,
		mocks.NewMockIUserRepository(ctrl), mocks.NewMockIChatRepository(ctrl),
		mocks.NewMockIChatService(ctrl), mocks.NewMockINotificationService(ctrl),
		mocks.NewMockEventPublisher(ctrl))

	// When the seller updates the pickup status over the same row
	err := service.UpdatePickupStatus(context.Background(), "seller-1", product.ID, domain.PickupAtCenter)

	// Then the write group aborts instead of reverting the request
	req.ErrorIs(err, badger.ErrConflict)
	stored, getErr := products.Get(product.ID)
	req.NoError(getErr)
	req.Equal(domain.StatusPending, stored.Status)
	req.NotEqual(domain.PickupAtCenter, stored.PickupStatus)
}

func TestNegotiationService_MarkSold_Detects_Concurrent_Status_Change(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db := openTestDB(t)
	products := repositories.NewProductRepository(db)
	chats := repositories.NewChatRepository(db)

	product := availableProduct("seller-1")
	req.NoError(products.Put(product))

	racing := racingProducts{IProductRepository: products, afterGet: func() {
		_, err := products.UpdateStatusIf(product.ID, domain.StatusAvailable, domain.StatusPending)
		req.NoError(err)
	}}
	service := NewNegotiationService(log, repositories.NewUnitOfWork(db), racing,
		mocks.NewMockIUserRepository(ctrl), chats,
		mocks.NewMockIChatService(ctrl), mocks.NewMockINotificationService(ctrl),
		mocks.NewMockEventPublisher(ctrl))

	err := service.MarkSold(context.Background(), "seller-1", product.ID)

	// Then the sale is refused rather than racing past the request
	req.ErrorIs(err, badger.ErrConflict)
	stored, getErr := products.Get(product.ID)
	req.NoError(getErr)
	req.Equal(domain.StatusPending, stored.Status)
}

func TestNegotiationService_MarkSold_Notifies_From_One_Snapshot(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db := openTestDB(t)
	products := repositories.NewProductRepository(db)
	chats := repositories.NewChatRepository(db)

	product := availableProduct("seller-1")
	req.NoError(products.Put(product))
	req.NoError(chats.Create(domain.NewChat(product.ID, "seller-1", "buyer-1")))

	// Given a second chat accepted while the sale is being recorded
	racing := racingProducts{IProductRepository: products, afterGet: func() {
		req.NoError(chats.Create(domain.NewChat(product.ID, "seller-1", "buyer-2")))
	}}
	notifier := mocks.NewMockINotificationService(ctrl)
	notifier.EXPECT().NotifyTxn(gomock.Any(), "buyer-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *badger.Txn, recipientID, content, link string) (domain.Notification, error) {
			return domain.NewNotification(recipientID, content, link), nil
		})
	notifier.EXPECT().Push(gomock.Any())
	service := NewNegotiationService(log, repositories.NewUnitOfWork(db), racing,
		mocks.NewMockIUserRepository(ctrl), chats,
		mocks.NewMockIChatService(ctrl), notifier,
		mocks.NewMockEventPublisher(ctrl))

	req.NoError(service.MarkSold(context.Background(), "seller-1", product.ID))

	// Then only the partner known at the moment of the sale is
	// notified, and the late chat still exists afterwards
	stored, err := products.Get(product.ID)
	req.NoError(err)
	req.Equal(domain.StatusSold, stored.Status)
	all, err := chats.ListByProduct(product.ID)
	req.NoError(err)
	req.Len(all, 2)
}

func TestNegotiationService_UpdatePickupStatus_Not_Seller(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newNegotiationFixture(t, ctrl)

	product := availableProduct("seller-1")
	f.products.EXPECT().GetTxn(gomock.Any(), product.ID).Return(product, nil)

	err := f.service.UpdatePickupStatus(context.Background(), "intruder", product.ID, domain.PickupShipped)

	req.ErrorIs(err, errors.ErrNotSeller)
}
