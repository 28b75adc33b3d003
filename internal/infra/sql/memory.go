package sql

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
)

// NewMemoryORM opens a private in-memory sqlite database. Every call gets its
// own database so tests never share tables.
func NewMemoryORM(opts ...Option) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := NewSQLiteORM(dsn, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite in-memory db: %w", err)
	}

	return db, nil
}

func NewSQLiteORM(dsn string, opts ...Option) (*DB, error) {
	db, err := open(sqlite.Open(dsn), opts...)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sqlite pool: %w", err)
	}
	// a single connection serialises writers and keeps the memory db alive
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}
