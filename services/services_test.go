package services

import (
	"testing"

	"tradepost/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testUnitOfWork(t *testing.T) repositories.UnitOfWork {
	t.Helper()
	return repositories.NewUnitOfWork(openTestDB(t))
}
