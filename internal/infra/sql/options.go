package sql

import (
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Option func(*DB, *gorm.Config)

func WithLogger(logger gormlogger.Interface) Option {
	return func(_ *DB, cfg *gorm.Config) {
		cfg.Logger = logger
	}
}

func WithQueryTimeout(timeout time.Duration) Option {
	return func(db *DB, _ *gorm.Config) {
		db.timeout = timeout
	}
}

func WithAutoMigration(enabled bool) Option {
	return func(db *DB, _ *gorm.Config) {
		db.autoMigrationEnabled = enabled
	}
}

func open(dialector gorm.Dialector, opts ...Option) (*DB, error) {
	db := &DB{autoMigrationEnabled: true}
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	}
	for _, opt := range opts {
		opt(db, cfg)
	}

	gormDB, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, err
	}
	db.DB = gormDB

	return db, nil
}
