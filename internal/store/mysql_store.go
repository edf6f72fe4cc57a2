package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// KVEntryModel is the GORM model for the kv_entries table
type KVEntryModel struct {
	Key   string `gorm:"column:key;primaryKey;size:64"`
	Value string `gorm:"column:value;type:text;not null"`
}

// TableName specifies the table name for GORM
// By default, GORM would pluralize to "kv_entry_models"
func (KVEntryModel) TableName() string {
	return "kv_entries"
}

// MySQLStore implements Store using MySQL with GORM
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore creates a new MySQL store using GORM
//
// Parameters:
//   - dsn: Data Source Name (connection string)
//     Format: user:password@tcp(host:port)/dbname?parseTime=true
//     Example: root:password@tcp(localhost:3306)/whoami?parseTime=true
//
// The kv_entries table must exist; see cmd/migrate.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	config := &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true, // single-statement writes
	}

	db, err := gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL with GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping MySQL database: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

// Migrate creates or updates the kv_entries table
func (s *MySQLStore) Migrate() error {
	if err := s.db.AutoMigrate(&KVEntryModel{}); err != nil {
		return fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return nil
}

// Put upserts the entry
// INSERT INTO kv_entries (key, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)
func (s *MySQLStore) Put(ctx context.Context, key, value string) error {
	entry := KVEntryModel{Key: key, Value: value}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry)
	if result.Error != nil {
		return fmt.Errorf("database write failed: %w", result.Error)
	}
	return nil
}

// Ping implements the Store interface
func (s *MySQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Name implements the Store interface
func (s *MySQLStore) Name() string {
	return "mysql"
}

// Close closes the database connection
func (s *MySQLStore) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
