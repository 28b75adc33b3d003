package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/sql"
)

const (
	_dialectPostgres = "postgres"

	_opCreateTable = "create table"
	_opAddColumns  = "add columns"
	_opDropTable   = "drop table"
	_opTableExists = "table exists"
	_opInsert      = "insert"
	_opSelect      = "select"
	_opUpdate      = "update"
	_opDelete      = "delete"
)

func NewSchemaStore(orm sql.ORM) *SimpleSchemaStore {
	return &SimpleSchemaStore{orm: orm}
}

var _ usecases.SchemaStore = (*SimpleSchemaStore)(nil)

// SimpleSchemaStore builds every statement from sanitized identifiers quoted
// with the dialect quoting. Values never appear in statement text.
type SimpleSchemaStore struct {
	orm sql.ORM
}

func (s *SimpleSchemaStore) quote(name domain.Identifier) string {
	return s.orm.QuoteIdentifier(name.String())
}

func (s *SimpleSchemaStore) primaryKeyDefinition() string {
	if s.orm.Dialect() == _dialectPostgres {
		return "SERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func (s *SimpleSchemaStore) CreateTable(ctx context.Context, table domain.Identifier, fragments []domain.ColumnFragment) error {
	definitions := []string{
		fmt.Sprintf("%s %s", s.quote(domain.SystemColumnID), s.primaryKeyDefinition()),
		fmt.Sprintf("%s TIMESTAMP DEFAULT CURRENT_TIMESTAMP", s.quote(domain.SystemColumnCreatedAt)),
	}
	for _, fragment := range fragments {
		definitions = append(definitions, fmt.Sprintf("%s %s", s.quote(fragment.Name), fragment.Definition()))
	}
	statement := fmt.Sprintf("CREATE TABLE %s (%s)", s.quote(table), strings.Join(definitions, ", "))

	err := s.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		return tx.Exec(statement).Error()
	})
	if errors.Is(err, sql.ErrDuplicateTable) {
		return domain.NewSchemaError(_opCreateTable, table, domain.ErrTableExists, err)
	}
	if err != nil {
		slog.Error("creating form table", slog.String("table", table.String()), slog.String("error", err.Error()))
		return domain.NewSchemaError(_opCreateTable, table, domain.ErrDDLFailed, err)
	}

	slog.Info("form table created", slog.String("table", table.String()), slog.Int("columns", len(fragments)))
	return nil
}

// AddColumns applies every fragment in one transaction. Nothing is added
// when any of them fails.
func (s *SimpleSchemaStore) AddColumns(ctx context.Context, table domain.Identifier, fragments []domain.ColumnFragment) error {
	if len(fragments) == 0 {
		return nil
	}

	err := s.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, fragment := range fragments {
			statement := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", s.quote(table), s.quote(fragment.Name), fragment.Definition())
			if err := tx.Exec(statement).Error(); err != nil {
				return fmt.Errorf("adding column %s: %w", fragment.Name, err)
			}
		}
		return nil
	})
	if errors.Is(err, sql.ErrUndefinedTable) {
		return domain.NewSchemaError(_opAddColumns, table, domain.ErrTableNotFound, err)
	}
	if err != nil {
		slog.Error("altering form table", slog.String("table", table.String()), slog.String("error", err.Error()))
		return domain.NewSchemaError(_opAddColumns, table, domain.ErrDDLFailed, err)
	}

	return nil
}

func (s *SimpleSchemaStore) DropTable(ctx context.Context, table domain.Identifier) error {
	statement := fmt.Sprintf("DROP TABLE IF EXISTS %s", s.quote(table))

	err := s.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		return tx.Exec(statement).Error()
	})
	if err != nil {
		slog.Error("dropping form table", slog.String("table", table.String()), slog.String("error", err.Error()))
		return domain.NewSchemaError(_opDropTable, table, domain.ErrDDLFailed, err)
	}

	return nil
}

func (s *SimpleSchemaStore) TableExists(ctx context.Context, table domain.Identifier) (bool, error) {
	var count int64
	query, args := s.tableExistsQuery(table)
	err := s.orm.WithContext(ctx).Raw(query, args...).Scan(&count).Error()
	if err != nil {
		return false, domain.NewSchemaError(_opTableExists, table, domain.ErrQueryFailed, err)
	}
	return count > 0, nil
}

func (s *SimpleSchemaStore) tableExistsQuery(table domain.Identifier) (string, []any) {
	if s.orm.Dialect() == _dialectPostgres {
		return "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = ?", []any{table.String()}
	}
	return "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", []any{table.String()}
}

func (s *SimpleSchemaStore) InsertRow(ctx context.Context, table domain.Identifier, values []domain.ColumnValue) (domain.RecordID, error) {
	var statement string
	args := make([]any, 0, len(values))

	if len(values) == 0 {
		statement = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", s.quote(table), s.quote(domain.SystemColumnID))
	} else {
		columns := make([]string, len(values))
		placeholders := make([]string, len(values))
		for i, v := range values {
			columns[i] = s.quote(v.Column)
			placeholders[i] = "?"
			args = append(args, v.Value)
		}
		statement = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			s.quote(table), strings.Join(columns, ", "), strings.Join(placeholders, ", "), s.quote(domain.SystemColumnID))
	}

	var id int64
	err := s.orm.WithContext(ctx).Raw(statement, args...).Scan(&id).Error()
	if err != nil {
		return 0, s.dmlError(_opInsert, table, err)
	}

	return domain.RecordID(id), nil
}

func (s *SimpleSchemaStore) selectStatement(table domain.Identifier, columns []domain.TableColumn) string {
	names := []string{s.quote(domain.SystemColumnID), s.quote(domain.SystemColumnCreatedAt)}
	for _, c := range columns {
		names = append(names, s.quote(c.Name))
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), s.quote(table))
}

// SelectRows returns every row in insertion order.
func (s *SimpleSchemaStore) SelectRows(ctx context.Context, table domain.Identifier, columns []domain.TableColumn) ([]domain.Record, error) {
	statement := s.selectStatement(table, columns) + fmt.Sprintf(" ORDER BY %s", s.quote(domain.SystemColumnID))

	records, err := s.queryRecords(ctx, statement, columns)
	if err != nil {
		return nil, s.dmlError(_opSelect, table, err)
	}
	return records, nil
}

func (s *SimpleSchemaStore) SelectRow(ctx context.Context, table domain.Identifier, columns []domain.TableColumn, id domain.RecordID) (domain.Record, error) {
	statement := s.selectStatement(table, columns) + fmt.Sprintf(" WHERE %s = ?", s.quote(domain.SystemColumnID))

	records, err := s.queryRecords(ctx, statement, columns, int64(id))
	if err != nil {
		return domain.Record{}, s.dmlError(_opSelect, table, err)
	}
	if len(records) == 0 {
		return domain.Record{}, usecases.ErrRecordNotFound
	}
	return records[0], nil
}

func (s *SimpleSchemaStore) queryRecords(ctx context.Context, statement string, columns []domain.TableColumn, args ...any) ([]domain.Record, error) {
	rows, err := s.orm.WithContext(ctx).Raw(statement, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	width := len(columns) + 2
	var records []domain.Record
	for rows.Next() {
		row := make([]any, width)
		pointers := make([]any, width)
		for i := range row {
			pointers[i] = &row[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		records = append(records, domain.RowToRecord(row, columns))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", sql.ClassifyError(err))
	}

	return records, nil
}

// UpdateRow replaces the given columns of one row.
func (s *SimpleSchemaStore) UpdateRow(ctx context.Context, table domain.Identifier, id domain.RecordID, values []domain.ColumnValue) error {
	if len(values) == 0 {
		_, err := s.SelectRow(ctx, table, nil, id)
		return err
	}

	assignments := make([]string, len(values))
	args := make([]any, 0, len(values)+1)
	for i, v := range values {
		assignments[i] = fmt.Sprintf("%s = ?", s.quote(v.Column))
		args = append(args, v.Value)
	}
	args = append(args, int64(id))

	statement := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", s.quote(table), strings.Join(assignments, ", "), s.quote(domain.SystemColumnID))
	result := s.orm.WithContext(ctx).Exec(statement, args...)
	if err := result.Error(); err != nil {
		return s.dmlError(_opUpdate, table, err)
	}
	if result.RowsAffected() == 0 {
		return usecases.ErrRecordNotFound
	}

	return nil
}

// DeleteRow succeeds when the row is already gone.
func (s *SimpleSchemaStore) DeleteRow(ctx context.Context, table domain.Identifier, id domain.RecordID) error {
	statement := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", s.quote(table), s.quote(domain.SystemColumnID))
	if err := s.orm.WithContext(ctx).Exec(statement, int64(id)).Error(); err != nil {
		return s.dmlError(_opDelete, table, err)
	}
	return nil
}

func (s *SimpleSchemaStore) dmlError(op string, table domain.Identifier, err error) error {
	if errors.Is(err, sql.ErrUndefinedTable) {
		return domain.NewSchemaError(op, table, domain.ErrTableNotFound, err)
	}
	return domain.NewSchemaError(op, table, domain.ErrQueryFailed, err)
}
