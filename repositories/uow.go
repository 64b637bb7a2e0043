// Package repositories persists the negotiation entities in BadgerDB.
// Values are protobuf-encoded; time-ordered entities use keys with a
// 19-digit zero-padded nanosecond timestamp so a prefix scan returns
// them chronologically.
package repositories

import "github.com/dgraph-io/badger/v4"

// UnitOfWork groups the writes of one logical operation into a single
// Badger transaction: accept-request persists its chat and the buyer
// notification together, mark-sold persists the status change and its
// notification fan-out together. A partial failure rolls back the
// whole group.
type UnitOfWork struct {
	db *badger.DB
}

func NewUnitOfWork(db *badger.DB) UnitOfWork {
	return UnitOfWork{db: db}
}

func (u UnitOfWork) Execute(fn func(txn *badger.Txn) error) error {
	return u.db.Update(fn)
}
