package sql

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
)

func NewPosgreORM(dsn string, opts ...Option) (*DB, error) {
	pass, ok := os.LookupEnv("DMS_SERVER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	db, err := open(postgres.Open(dsn), opts...)
	if err != nil {
		return nil, fmt.Errorf("opening postgres db: %w", err)
	}

	return db, nil
}
