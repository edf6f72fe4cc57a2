package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var errCSVClosed = errors.New("CSV store is closed")

// CSVStore implements Store by appending rows to a CSV file
// The file acts as a write-ahead log: a key written twice appears twice and
// the last row wins when the file is replayed.
//
// CSV Format: key,value
// Example: 1700000000000,"{""ip"":""1.2.3.4"",""country"":""DE""}"
type CSVStore struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	writer *csv.Writer
}

// NewCSVStore opens (or creates) the CSV file at filePath for appending
// Missing parent directories are created and a header row is written to new files
func NewCSVStore(filePath string) (*CSVStore, error) {
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create CSV directory: %w", err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat CSV file: %w", err)
	}

	s := &CSVStore{
		path:   filePath,
		file:   file,
		writer: csv.NewWriter(file),
	}

	if info.Size() == 0 {
		if err := s.writeRow("key", "value"); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	return s, nil
}

// Put appends a key,value row and flushes it to the file
func (s *CSVStore) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return errCSVClosed
	}
	if err := s.writeRow(key, value); err != nil {
		return fmt.Errorf("failed to append to CSV file: %w", err)
	}
	return nil
}

// writeRow writes and flushes one record; callers hold mu (or own s exclusively)
func (s *CSVStore) writeRow(fields ...string) error {
	if err := s.writer.Write(fields); err != nil {
		return err
	}
	s.writer.Flush()
	return s.writer.Error()
}

// Ping checks that the file is still open
func (s *CSVStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return errCSVClosed
	}
	return nil
}

// Name implements the Store interface
func (s *CSVStore) Name() string {
	return "csv"
}

// Close flushes and closes the file
func (s *CSVStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	s.writer.Flush()
	err := s.file.Close()
	s.file = nil
	return err
}
