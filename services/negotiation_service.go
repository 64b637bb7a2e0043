//go:generate go run go.uber.org/mock/mockgen -source=negotiation_service.go -destination=../mocks/mock_negotiation_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"tradepost/contract"
	"tradepost/domain"
	"tradepost/domain/event"
	"tradepost/errors"
	"tradepost/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

// INegotiationService owns the product lifecycle:
// Available -> Pending -> Sold, with no reverse path and no timeout
// reverting Pending.
type INegotiationService interface {
	RequestPurchase(ctx context.Context, buyerID, productID string) error
	AcceptRequest(ctx context.Context, sellerID, buyerID, productID string) (string, error)
	MarkSold(ctx context.Context, sellerID, productID string) error
	UpdatePickupStatus(ctx context.Context, sellerID, productID string, newStatus domain.PickupStatus) error
}

type NegotiationService struct {
	log       *slog.Logger
	uow       repositories.UnitOfWork
	products  repositories.IProductRepository
	users     repositories.IUserRepository
	chats     repositories.IChatRepository
	sessions  IChatService
	notifier  INotificationService
	publisher contract.EventPublisher
}

func NewNegotiationService(log *slog.Logger, uow repositories.UnitOfWork,
	products repositories.IProductRepository, users repositories.IUserRepository,
	chats repositories.IChatRepository, sessions IChatService,
	notifier INotificationService, publisher contract.EventPublisher) *NegotiationService {
	return &NegotiationService{
		log:       log,
		uow:       uow,
		products:  products,
		users:     users,
		chats:     chats,
		sessions:  sessions,
		notifier:  notifier,
		publisher: publisher,
	}
}

// RequestPurchase transitions Available -> Pending. The caller is told
// only "not available or invalid request" on any failure; the specific
// cause is not distinguished.
func (s *NegotiationService) RequestPurchase(_ context.Context, buyerID, productID string) error {
	product, err := s.products.Get(productID)
	if err != nil {
		return errors.ErrNotAvailable
	}
	if product.SellerID == buyerID {
		return errors.ErrNotAvailable
	}

	// Conditional update: two buyers racing on the same product cannot
	// both observe Available.
	product, err = s.products.UpdateStatusIf(productID, domain.StatusAvailable, domain.StatusPending)
	if err != nil {
		return errors.ErrNotAvailable
	}

	buyer, err := s.users.Get(buyerID)
	if err != nil {
		s.log.Warn("Requester has no user row", "buyer_id", buyerID)
	}

	s.publisher.Publish(event.RequestSent{BuyerID: buyerID, Msg: "Request sent to seller"})
	s.publisher.Publish(event.NewRequest{
		SellerID:      product.SellerID,
		ProductID:     product.ID,
		ProductName:   product.Name,
		BuyerID:       buyerID,
		BuyerUsername: buyer.Username,
	})
	return nil
}

// AcceptRequest does not change the product status; it creates the
// chat and records the buyer's notification in one write group, then
// joins both parties. Not idempotent: each call creates an
// independent chat.
func (s *NegotiationService) AcceptRequest(_ context.Context, sellerID, buyerID, productID string) (string, error) {
	product, err := s.products.Get(productID)
	if err != nil {
		return "", err
	}
	if product.SellerID != sellerID {
		return "", errors.ErrNotSeller
	}

	chat := domain.NewChat(productID, sellerID, buyerID)
	var note domain.Notification
	err = s.uow.Execute(func(txn *badger.Txn) error {
		if err := s.chats.CreateTxn(txn, chat); err != nil {
			return err
		}
		note, err = s.notifier.NotifyTxn(txn,
			buyerID,
			fmt.Sprintf("The seller accepted your request for %s", product.Name),
			"/chats/"+chat.ID)
		return err
	})
	if err != nil {
		return "", err
	}

	s.sessions.JoinAndAnnounce(chat)
	s.notifier.Push(note)
	return chat.ID, nil
}

// MarkSold sets the terminal status and notifies the other participant
// of every chat tied to the product, all in one write group. The read,
// the chat listing and the writes share one transaction: a concurrent
// product write aborts the group instead of being overwritten with the
// row read here, and the notified partners match the chats at the
// moment of the sale.
func (s *NegotiationService) MarkSold(_ context.Context, sellerID, productID string) error {
	var notes []domain.Notification
	err := s.uow.Execute(func(txn *badger.Txn) error {
		notes = notes[:0]
		product, err := s.products.GetTxn(txn, productID)
		if err != nil {
			return err
		}
		if product.SellerID != sellerID {
			return errors.ErrNotSeller
		}

		chats, err := s.chats.ListByProductTxn(txn, productID)
		if err != nil {
			return err
		}
		recipients := lo.Uniq(lo.Map(chats, func(c domain.Chat, _ int) string {
			return c.OtherParticipant(sellerID)
		}))

		product.Status = domain.StatusSold
		if err := s.products.PutTxn(txn, product); err != nil {
			return err
		}
		for _, recipientID := range recipients {
			note, err := s.notifier.NotifyTxn(txn,
				recipientID,
				fmt.Sprintf("%s has been sold", product.Name),
				"/products/"+product.ID)
			if err != nil {
				return err
			}
			notes = append(notes, note)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, note := range notes {
		s.notifier.Push(note)
	}
	return nil
}

// UpdatePickupStatus is independent of the negotiation status; pickup
// can advance before or after Sold with no ordering enforced. Read and
// write share one transaction so a status change landing in between
// cannot be reverted by the stale row read here.
func (s *NegotiationService) UpdatePickupStatus(_ context.Context, sellerID, productID string, newStatus domain.PickupStatus) error {
	if !newStatus.Valid() {
		return errors.ErrInvalidPickupStatus
	}
	return s.uow.Execute(func(txn *badger.Txn) error {
		product, err := s.products.GetTxn(txn, productID)
		if err != nil {
			return err
		}
		if product.SellerID != sellerID {
			return errors.ErrNotSeller
		}
		product.PickupStatus = newStatus
		return s.products.PutTxn(txn, product)
	})
}
