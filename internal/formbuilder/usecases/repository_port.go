package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/formbuilder/usecases/repository_port_mock.go -package=usecases -mock_names=FormRepository=MockFormRepository,SchemaStore=MockSchemaStore,SchemaIntrospector=MockSchemaIntrospector,EventPublisher=MockEventPublisher,TableRenderer=MockTableRenderer

import (
	"context"
	"errors"

	"dms-server/internal/formbuilder/domain"
	shareddomain "dms-server/internal/shared_kernel/domain"
)

var (
	ErrFormNotFound   = errors.New("form not found")
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateName  = errors.New("a form with this name already exists")
)

type Pagination struct {
	Limit  int
	Offset int
}

type FormRepository interface {
	Create(ctx context.Context, form domain.LogicalForm) error
	Update(ctx context.Context, form domain.LogicalForm) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.LogicalForm, error)
	GetByName(ctx context.Context, name domain.Identifier) (domain.LogicalForm, error)
	FindAll(ctx context.Context, pagination Pagination) ([]domain.LogicalForm, int, error)
	Delete(ctx context.Context, id shareddomain.ID) error
}

// SchemaStore is the only port that emits SQL against form tables. It only
// accepts sanitized identifiers and binds every value.
type SchemaStore interface {
	CreateTable(ctx context.Context, table domain.Identifier, fragments []domain.ColumnFragment) error
	AddColumns(ctx context.Context, table domain.Identifier, fragments []domain.ColumnFragment) error
	DropTable(ctx context.Context, table domain.Identifier) error
	TableExists(ctx context.Context, table domain.Identifier) (bool, error)

	InsertRow(ctx context.Context, table domain.Identifier, values []domain.ColumnValue) (domain.RecordID, error)
	SelectRows(ctx context.Context, table domain.Identifier, columns []domain.TableColumn) ([]domain.Record, error)
	SelectRow(ctx context.Context, table domain.Identifier, columns []domain.TableColumn, id domain.RecordID) (domain.Record, error)
	UpdateRow(ctx context.Context, table domain.Identifier, id domain.RecordID, values []domain.ColumnValue) error
	DeleteRow(ctx context.Context, table domain.Identifier, id domain.RecordID) error
}

type SchemaIntrospector interface {
	ListColumns(ctx context.Context, table domain.Identifier) ([]string, error)
	DescribeColumns(ctx context.Context, table domain.Identifier) ([]domain.TableColumn, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.FormEvent) error
}

// TableRenderer turns tabular record data into a downloadable document.
type TableRenderer interface {
	Format() string
	ContentType() string
	Render(title string, headers []string, rows [][]string) ([]byte, error)
}
