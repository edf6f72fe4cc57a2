package store

import "context"

// Store is the key-value mapping observations are written to
// Implementations must be safe for concurrent use. A Put on an existing key
// overwrites it; nothing in this service ever reads a key back.
type Store interface {
	// Put writes value under key and returns once the write is durable
	// for the backend (flushed, committed or acknowledged)
	Put(ctx context.Context, key, value string) error

	// Ping reports whether the backend is reachable
	Ping(ctx context.Context) error

	// Name identifies the backend in logs and metrics
	Name() string

	// Close cleans up resources (database connections, file handles, etc.)
	Close() error
}
