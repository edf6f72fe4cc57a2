package store

import (
	"context"
	"sync"
)

// MemoryStore keeps entries in a process-local map
// Entries are lost on restart; intended for development and tests
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Put implements the Store interface
func (s *MemoryStore) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Ping implements the Store interface
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Name implements the Store interface
func (s *MemoryStore) Name() string {
	return "memory"
}

// Entries returns a copy of everything stored so far
func (s *MemoryStore) Entries() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// Close implements the Store interface
func (s *MemoryStore) Close() error {
	return nil
}
