package sql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateTable  = errors.New("table already exists")
	ErrUndefinedTable  = errors.New("table does not exist")
	ErrUniqueViolation = errors.New("unique constraint violation")
)

const (
	_pgUniqueViolation = "23505"
	_pgUndefinedTable  = "42P01"
	_pgDuplicateTable  = "42P07"
)

// ClassifyError tags driver errors with one of the package sentinels while
// keeping the original cause in the chain. Unknown errors are returned as is.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case _pgDuplicateTable:
			return fmt.Errorf("%w: %w", ErrDuplicateTable, err)
		case _pgUndefinedTable:
			return fmt.Errorf("%w: %w", ErrUndefinedTable, err)
		case _pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		}
		return err
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	}

	// sqlite only reports these through the message text
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already exists") && strings.Contains(msg, "table"):
		return fmt.Errorf("%w: %w", ErrDuplicateTable, err)
	case strings.Contains(msg, "no such table"):
		return fmt.Errorf("%w: %w", ErrUndefinedTable, err)
	case strings.Contains(msg, "unique constraint failed"):
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	}

	return err
}
