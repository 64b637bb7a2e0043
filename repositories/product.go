//go:generate go run go.uber.org/mock/mockgen -source=product.go -destination=../mocks/mock_product_repository.go -package=mocks
package repositories

import (
	gerrors "errors"
	"time"

	"tradepost/domain"
	"tradepost/errors"
	spb "tradepost/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

type IProductRepository interface {
	Get(id string) (domain.Product, error)
	// GetTxn reads the product inside an already open transaction, so
	// a caller can base a write on the very row it just read. The
	// transaction aborts on commit if the row changed concurrently.
	GetTxn(txn *badger.Txn, id string) (domain.Product, error)
	Put(p domain.Product) error
	PutTxn(txn *badger.Txn, p domain.Product) error
	// UpdateStatusIf transitions the status only when the stored value
	// still matches from. The read and the write share one transaction,
	// so two concurrent buyers cannot both observe Available.
	UpdateStatusIf(id string, from, to domain.ProductStatus) (domain.Product, error)
}

type ProductRepository struct {
	db *badger.DB
}

func NewProductRepository(db *badger.DB) ProductRepository {
	return ProductRepository{db: db}
}

func productKey(id string) []byte {
	return []byte("product:" + id)
}

func (r ProductRepository) Get(id string) (domain.Product, error) {
	var product domain.Product
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		product, err = r.GetTxn(txn, id)
		return err
	})
	if err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (r ProductRepository) GetTxn(txn *badger.Txn, id string) (domain.Product, error) {
	var productPb spb.Product
	err := getProto(txn, productKey(id), &productPb)
	if gerrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Product{}, errors.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return toProduct(&productPb), nil
}

func (r ProductRepository) Put(p domain.Product) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return r.PutTxn(txn, p)
	})
}

func (r ProductRepository) PutTxn(txn *badger.Txn, p domain.Product) error {
	bytes, err := proto.Marshal(fromProduct(p))
	if err != nil {
		return err
	}
	return txn.Set(productKey(p.ID), bytes)
}

func (r ProductRepository) UpdateStatusIf(id string, from, to domain.ProductStatus) (domain.Product, error) {
	var updated domain.Product
	err := r.db.Update(func(txn *badger.Txn) error {
		var productPb spb.Product
		if err := getProto(txn, productKey(id), &productPb); err != nil {
			return err
		}
		if domain.ProductStatus(productPb.Status) != from {
			return errors.ErrNotAvailable
		}
		productPb.Status = string(to)
		bytes, err := proto.Marshal(&productPb)
		if err != nil {
			return err
		}
		if err := txn.Set(productKey(id), bytes); err != nil {
			return err
		}
		updated = toProduct(&productPb)
		return nil
	})
	if gerrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Product{}, errors.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return updated, nil
}

// getProto reads one key and unmarshals its value in place.
func getProto(txn *badger.Txn, key []byte, msg proto.Message) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return proto.Unmarshal(val, msg)
	})
}

func fromProduct(p domain.Product) *spb.Product {
	return &spb.Product{
		Id:           p.ID,
		SellerId:     p.SellerID,
		Name:         p.Name,
		Price:        p.Price,
		Status:       string(p.Status),
		PickupStatus: string(p.PickupStatus),
		CreatedAt:    p.CreatedAt.UnixNano(),
	}
}

func toProduct(productPb *spb.Product) domain.Product {
	return domain.Product{
		ID:           productPb.Id,
		SellerID:     productPb.SellerId,
		Name:         productPb.Name,
		Price:        productPb.Price,
		Status:       domain.ProductStatus(productPb.Status),
		PickupStatus: domain.PickupStatus(productPb.PickupStatus),
		CreatedAt:    time.Unix(0, productPb.CreatedAt).UTC(),
	}
}
