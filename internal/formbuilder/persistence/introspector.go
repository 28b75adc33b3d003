package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/sql"
)

const (
	_sqliteColumnsQuery = `SELECT name, type, "notnull" FROM pragma_table_info(?) ORDER BY cid`

	_postgresColumnsQuery = `SELECT column_name, data_type, CASE WHEN is_nullable = 'YES' THEN 0 ELSE 1 END
FROM information_schema.columns
WHERE table_schema = current_schema() AND table_name = ?
ORDER BY ordinal_position`
)

func NewSchemaIntrospector(orm sql.ORM) *SimpleSchemaIntrospector {
	return &SimpleSchemaIntrospector{orm: orm}
}

var _ usecases.SchemaIntrospector = (*SimpleSchemaIntrospector)(nil)

// SimpleSchemaIntrospector reads user columns from the engine catalog on
// every call. Results are never cached since the schema changes at runtime.
type SimpleSchemaIntrospector struct {
	orm sql.ORM
}

func (i *SimpleSchemaIntrospector) ListColumns(ctx context.Context, table domain.Identifier) ([]string, error) {
	columns, err := i.DescribeColumns(ctx, table)
	if err != nil {
		return nil, err
	}
	return domain.ColumnNames(columns), nil
}

// DescribeColumns returns the user columns in physical order. id and
// created_at are left out.
func (i *SimpleSchemaIntrospector) DescribeColumns(ctx context.Context, table domain.Identifier) ([]domain.TableColumn, error) {
	query := _sqliteColumnsQuery
	if i.orm.Dialect() == _dialectPostgres {
		query = _postgresColumnsQuery
	}

	rows, err := i.orm.WithContext(ctx).Raw(query, table.String()).Rows()
	if err != nil {
		return nil, domain.NewSchemaError("describe columns", table, domain.ErrQueryFailed, err)
	}
	defer rows.Close()

	found := false
	var columns []domain.TableColumn
	for rows.Next() {
		var (
			name     string
			dataType string
			notNull  int
		)
		if err := rows.Scan(&name, &dataType, &notNull); err != nil {
			return nil, domain.NewSchemaError("describe columns", table, domain.ErrQueryFailed, fmt.Errorf("scanning column: %w", err))
		}
		found = true

		identifier, err := domain.SanitizeIdentifier(name)
		if err != nil || identifier.String() != name {
			slog.Warn("skipping column with an unsupported name",
				slog.String("table", table.String()),
				slog.String("column", name))
			continue
		}
		if identifier.IsSystemColumn() {
			continue
		}

		columns = append(columns, domain.TableColumn{
			Name:     identifier,
			DataType: dataType,
			Nullable: notNull == 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewSchemaError("describe columns", table, domain.ErrQueryFailed, err)
	}

	if !found {
		return nil, domain.NewSchemaError("describe columns", table, domain.ErrTableNotFound, nil)
	}

	return columns, nil
}
