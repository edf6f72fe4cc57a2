package store

import (
	"context"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
)

// BadgerStore implements Store on an embedded Badger database
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens the Badger database at path
// With inMemory set, path must be empty and nothing touches the disk
func NewBadgerStore(path string, inMemory bool) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithInMemory(inMemory)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open Badger database: %w", err)
	}

	return &BadgerStore{db: db}, nil
}

// Put sets key to value in its own read-write transaction
func (s *BadgerStore) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("can't save value to storage: %w", err)
	}
	return nil
}

// Ping implements the Store interface
func (s *BadgerStore) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger database is closed")
	}
	return ctx.Err()
}

// Name implements the Store interface
func (s *BadgerStore) Name() string {
	return "badger"
}

// Close closes the database
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
