package store

import (
	"context"
	"sync"
)

// PutCall records the arguments of a single Put
type PutCall struct {
	Key   string
	Value string
}

// MockStore is a test double for the Store interface
// It allows tests to control behavior and verify interactions
type MockStore struct {
	mu sync.Mutex

	// Track method calls for verification in tests
	PutCalls    []PutCall
	PingCalls   int
	CloseCalled bool

	// Control behavior for error scenarios
	PutError   error
	PingError  error
	CloseError error
}

// NewMockStore creates a mock store that accepts every write
func NewMockStore() *MockStore {
	return &MockStore{
		PutCalls: []PutCall{},
	}
}

// Put implements the Store interface
// Tracks calls and returns the configured error, if any
func (m *MockStore) Put(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PutCalls = append(m.PutCalls, PutCall{Key: key, Value: value})
	return m.PutError
}

// Ping implements the Store interface
func (m *MockStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PingCalls++
	return m.PingError
}

// Name implements the Store interface
func (m *MockStore) Name() string {
	return "mock"
}

// Calls returns a snapshot of the recorded Put calls
func (m *MockStore) Calls() []PutCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]PutCall(nil), m.PutCalls...)
}

// Close implements the Store interface
// Tracks that close was called and returns configured error if any
func (m *MockStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CloseCalled = true
	return m.CloseError
}
