package repositories

import (
	"testing"
	"time"

	"tradepost/domain"
	"tradepost/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func aProduct(status domain.ProductStatus) domain.Product {
	return domain.Product{
		ID:        uuid.NewString(),
		SellerID:  "seller-1",
		Name:      "Vintage road bike",
		Price:     120.50,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

func TestProductRepository_Put_And_Get(t *testing.T) {
	req := require.New(t)
	repository := NewProductRepository(openTestDB(t))
	product := aProduct(domain.StatusAvailable)

	// When storing then fetching the product
	req.NoError(repository.Put(product))
	fetched, err := repository.Get(product.ID)

	// Then every field survives the roundtrip
	req.NoError(err)
	req.Equal(product.ID, fetched.ID)
	req.Equal(product.SellerID, fetched.SellerID)
	req.Equal(product.Name, fetched.Name)
	req.Equal(product.Price, fetched.Price)
	req.Equal(domain.StatusAvailable, fetched.Status)
}

func TestProductRepository_Get_Unknown_Product(t *testing.T) {
	req := require.New(t)
	repository := NewProductRepository(openTestDB(t))

	_, err := repository.Get(uuid.NewString())

	req.ErrorIs(err, errors.ErrProductNotFound)
}

func TestProductRepository_UpdateStatusIf_Available(t *testing.T) {
	req := require.New(t)
	repository := NewProductRepository(openTestDB(t))
	product := aProduct(domain.StatusAvailable)
	req.NoError(repository.Put(product))

	// When reserving an available product
	updated, err := repository.UpdateStatusIf(product.ID, domain.StatusAvailable, domain.StatusPending)

	// Then the transition is applied and persisted
	req.NoError(err)
	req.Equal(domain.StatusPending, updated.Status)
	fetched, err := repository.Get(product.ID)
	req.NoError(err)
	req.Equal(domain.StatusPending, fetched.Status)
}

func TestProductRepository_UpdateStatusIf_Already_Reserved(t *testing.T) {
	req := require.New(t)
	repository := NewProductRepository(openTestDB(t))
	product := aProduct(domain.StatusAvailable)
	req.NoError(repository.Put(product))

	// Given a first buyer already reserved the product
	_, err := repository.UpdateStatusIf(product.ID, domain.StatusAvailable, domain.StatusPending)
	req.NoError(err)

	// When a second buyer tries the same transition
	_, err = repository.UpdateStatusIf(product.ID, domain.StatusAvailable, domain.StatusPending)

	// Then the second attempt is refused and the status is untouched
	req.ErrorIs(err, errors.ErrNotAvailable)
	fetched, err := repository.Get(product.ID)
	req.NoError(err)
	req.Equal(domain.StatusPending, fetched.Status)
}

func TestProductRepository_UpdateStatusIf_Unknown_Product(t *testing.T) {
	req := require.New(t)
	repository := NewProductRepository(openTestDB(t))

	_, err := repository.UpdateStatusIf(uuid.NewString(), domain.StatusAvailable, domain.StatusPending)

	req.ErrorIs(err, errors.ErrProductNotFound)
}
