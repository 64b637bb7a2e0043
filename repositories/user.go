//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	gerrors "errors"

	"tradepost/domain"
	"tradepost/errors"
	spb "tradepost/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

// IUserRepository reads the user rows owned by the account layer; the
// negotiation core only needs id and display name.
type IUserRepository interface {
	Get(id string) (domain.User, error)
	Put(u domain.User) error
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) UserRepository {
	return UserRepository{db: db}
}

func userKey(id string) []byte {
	return []byte("user:" + id)
}

func (r UserRepository) Get(id string) (domain.User, error) {
	var userPb spb.User
	err := r.db.View(func(txn *badger.Txn) error {
		return getProto(txn, userKey(id), &userPb)
	})
	if gerrors.Is(err, badger.ErrKeyNotFound) {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{ID: userPb.Id, Username: userPb.Username}, nil
}

func (r UserRepository) Put(u domain.User) error {
	bytes, err := proto.Marshal(&spb.User{Id: u.ID, Username: u.Username})
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(u.ID), bytes)
	})
}
