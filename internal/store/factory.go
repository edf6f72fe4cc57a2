package store

import (
	"fmt"
	"strings"
)

// Default file locations for the file based backends
const (
	DefaultCSVPath    = "./data/whoami.csv"
	DefaultBadgerPath = "./data/whoami-badger"
)

// Options holds configuration for creating a key-value store
type Options struct {
	Backend string // "memory", "csv", "redis", "mysql" or "badger"
	Path    string // CSV file or badger directory; empty selects the default

	// MySQL-specific config
	MySQLDSN string

	// Redis-specific config
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New creates a store based on the options (factory pattern)
func New(opts Options) (Store, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))

	switch backend {
	case "memory":
		return NewMemoryStore(), nil

	case "csv", "":
		path := opts.Path
		if path == "" {
			path = DefaultCSVPath
		}
		s, err := NewCSVStore(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create CSV store: %w", err)
		}
		return s, nil

	case "redis":
		s, err := NewRedisStore(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		return s, nil

	case "mysql":
		s, err := NewMySQLStore(opts.MySQLDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create MySQL store: %w", err)
		}
		return s, nil

	case "badger":
		path := opts.Path
		if path == "" {
			path = DefaultBadgerPath
		}
		s, err := NewBadgerStore(path, false)
		if err != nil {
			return nil, fmt.Errorf("failed to create Badger store: %w", err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown store backend: %s (supported: 'memory', 'csv', 'redis', 'mysql', 'badger')", opts.Backend)
	}
}
