package usecases

//go:generate mockgen -source=./record_service.go -destination=../../../test/unit/doubles/formbuilder/usecases/record_service_mock.go -package=usecases -mock_names=RecordService=MockRecordService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/shared_kernel/authz"
	shareddomain "dms-server/internal/shared_kernel/domain"
)

const _exportTimestampLayout = "20060102_150405"

type RecordService interface {
	ListRecords(ctx context.Context, formID shareddomain.ID, pagination Pagination) (domain.RecordPage, error)
	EntryForm(ctx context.Context, formID shareddomain.ID) (domain.FormDescriptor, error)
	GetRecord(ctx context.Context, formID shareddomain.ID, recordID domain.RecordID) (domain.Record, error)
	CreateRecord(ctx context.Context, formID shareddomain.ID, raw map[string]string) (domain.RecordID, error)
	UpdateRecord(ctx context.Context, formID shareddomain.ID, recordID domain.RecordID, raw map[string]string) error
	DeleteRecord(ctx context.Context, formID shareddomain.ID, recordID domain.RecordID) error
	ExportRecords(ctx context.Context, formID shareddomain.ID, format string) (Export, error)
}

type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}

func NewRecordService(
	forms FormRepository,
	store SchemaStore,
	introspector SchemaIntrospector,
	publisher EventPublisher,
	authorizer authz.Authorizer,
	renderers ...TableRenderer,
) *SimpleRecordService {
	byFormat := make(map[string]TableRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}

	return &SimpleRecordService{
		forms:        forms,
		store:        store,
		introspector: introspector,
		publisher:    publisher,
		authorizer:   authorizer,
		renderers:    byFormat,
		now:          time.Now,
	}
}

var _ RecordService = (*SimpleRecordService)(nil)

// SimpleRecordService works on form tables whose columns are only known at
// run time. Every call introspects the table again.
type SimpleRecordService struct {
	forms        FormRepository
	store        SchemaStore
	introspector SchemaIntrospector
	publisher    EventPublisher
	authorizer   authz.Authorizer
	renderers    map[string]TableRenderer
	now          func() time.Time
}

type formTable struct {
	form    domain.LogicalForm
	columns []domain.TableColumn
}

func (t formTable) names() []string {
	return domain.ColumnNames(t.columns)
}

func (s *SimpleRecordService) load(ctx context.Context, formID shareddomain.ID) (formTable, error) {
	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return formTable{}, ErrFormNotFound
		}
		return formTable{}, fmt.Errorf("getting form: %w", err)
	}

	columns, err := s.introspector.DescribeColumns(ctx, form.TableName())
	if err != nil {
		if errors.Is(err, domain.ErrTableNotFound) {
			slog.Warn("form table is missing", slog.String("form", form.Name.String()))
		}
		return formTable{}, fmt.Errorf("describing columns: %w", err)
	}

	return formTable{form: form, columns: columns}, nil
}

// ListRecords pages over all rows in memory.
func (s *SimpleRecordService) ListRecords(ctx context.Context, formID shareddomain.ID, pagination Pagination) (domain.RecordPage, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionEdit); err != nil {
		return domain.RecordPage{}, err
	}

	table, err := s.load(ctx, formID)
	if err != nil {
		return domain.RecordPage{}, err
	}

	records, err := s.store.SelectRows(ctx, table.form.TableName(), table.columns)
	if err != nil {
		slog.Error("listing records", slog.String("form", table.form.Name.String()), slog.String("error", err.Error()))
		return domain.RecordPage{}, fmt.Errorf("listing records: %w", err)
	}

	return domain.RecordPage{
		Columns: table.names(),
		Records: paginate(records, pagination),
		Total:   len(records),
	}, nil
}

func paginate(records []domain.Record, pagination Pagination) []domain.Record {
	if pagination.Limit <= 0 {
		return records
	}
	start := min(max(pagination.Offset, 0), len(records))
	end := min(start+pagination.Limit, len(records))
	return records[start:end]
}

func (s *SimpleRecordService) EntryForm(ctx context.Context, formID shareddomain.ID) (domain.FormDescriptor, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionAdd); err != nil {
		return domain.FormDescriptor{}, err
	}

	table, err := s.load(ctx, formID)
	if err != nil {
		return domain.FormDescriptor{}, err
	}

	return domain.BuildForm(table.names()), nil
}

func (s *SimpleRecordService) GetRecord(ctx context.Context, formID shareddomain.ID, recordID domain.RecordID) (domain.Record, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionEdit); err != nil {
		return domain.Record{}, err
	}

	table, err := s.load(ctx, formID)
	if err != nil {
		return domain.Record{}, err
	}

	record, err := s.store.SelectRow(ctx, table.form.TableName(), table.columns, recordID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return domain.Record{}, ErrRecordNotFound
		}
		return domain.Record{}, fmt.Errorf("getting record: %w", err)
	}

	return record, nil
}

// validate runs a submission through the synthesized descriptor and narrows
// the values to the column types.
func (t formTable) validate(raw map[string]string) ([]domain.ColumnValue, error) {
	form := domain.BuildForm(t.names())
	if len(form.Fields) == 0 {
		errs := domain.ValidationErrors{"form": "this form has no fields yet"}
		return nil, &SubmissionError{Form: form, Errors: errs}
	}

	values, errs := form.Validate(raw)
	if errs.HasErrors() {
		return nil, &SubmissionError{Form: form.Prefill(raw, errs), Errors: errs}
	}

	stored, errs := domain.CoerceForStorage(values, t.columns)
	if errs.HasErrors() {
		return nil, &SubmissionError{Form: form.Prefill(raw, errs), Errors: errs}
	}

	return stored, nil
}

func (s *SimpleRecordService) CreateRecord(ctx context.Context, formID shareddomain.ID, raw map[string]string) (domain.RecordID, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionAdd); err != nil {
		return 0, err
	}

	table, err := s.load(ctx, formID)
	if err != nil {
		return 0, err
	}

	values, err := table.validate(raw)
	if err != nil {
		return 0, err
	}

	id, err := s.store.InsertRow(ctx, table.form.TableName(), values)
	if err != nil {
		slog.Error("inserting record", slog.String("form", table.form.Name.String()), slog.String("error", err.Error()))
		return 0, fmt.Errorf("inserting record: %w", err)
	}

	slog.Info("record created", slog.String("form", table.form.Name.String()), slog.Int64("record_id", int64(id)))
	s.publish(ctx, domain.NewRecordEvent(domain.EventRecordCreated, table.form, id))

	return id, nil
}

func (s *SimpleRecordService) UpdateRecord(ctx context.Context, formID shareddomain.ID, recordID domain.RecordID, raw map[string]string) error {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionEdit); err != nil {
		return err
	}

	table, err := s.load(ctx, formID)
	if err != nil {
		return err
	}

	values, err := table.validate(raw)
	if err != nil {
		return err
	}

	err = s.store.UpdateRow(ctx, table.form.TableName(), recordID, values)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		slog.Error("updating record", slog.String("form", table.form.Name.String()), slog.String("error", err.Error()))
		return fmt.Errorf("updating record: %w", err)
	}

	s.publish(ctx, domain.NewRecordEvent(domain.EventRecordUpdated, table.form, recordID))

	return nil
}

func (s *SimpleRecordService) DeleteRecord(ctx context.Context, formID shareddomain.ID, recordID domain.RecordID) error {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionDelete); err != nil {
		return err
	}

	form, err := s.forms.GetByID(ctx, formID)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return ErrFormNotFound
		}
		return fmt.Errorf("getting form: %w", err)
	}

	err = s.store.DeleteRow(ctx, form.TableName(), recordID)
	if err != nil {
		slog.Error("deleting record", slog.String("form", form.Name.String()), slog.String("error", err.Error()))
		return fmt.Errorf("deleting record: %w", err)
	}

	s.publish(ctx, domain.NewRecordEvent(domain.EventRecordDeleted, form, recordID))

	return nil
}

// ExportRecords renders every row of the form. Headers are the user columns,
// id and created_at are not exported.
func (s *SimpleRecordService) ExportRecords(ctx context.Context, formID shareddomain.ID, format string) (Export, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionEdit); err != nil {
		return Export{}, err
	}

	renderer, ok := s.renderers[strings.ToLower(format)]
	if !ok {
		return Export{}, ErrUnsupportedFormat
	}

	table, err := s.load(ctx, formID)
	if err != nil {
		return Export{}, err
	}

	records, err := s.store.SelectRows(ctx, table.form.TableName(), table.columns)
	if err != nil {
		return Export{}, fmt.Errorf("reading records: %w", err)
	}

	headers := table.names()
	rows := make([][]string, len(records))
	for i, record := range records {
		row := make([]string, len(headers))
		for j, column := range headers {
			row[j] = record.Cell(column)
		}
		rows[i] = row
	}

	data, err := renderer.Render(string(table.form.DisplayTitle), headers, rows)
	if err != nil {
		slog.Error("rendering export",
			slog.String("form", table.form.Name.String()),
			slog.String("format", renderer.Format()),
			slog.String("error", err.Error()))
		return Export{}, fmt.Errorf("rendering %s export: %w", renderer.Format(), err)
	}

	return Export{
		FileName:    fmt.Sprintf("%s_%s.%s", table.form.Name, s.now().Format(_exportTimestampLayout), renderer.Format()),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}

func (s *SimpleRecordService) publish(ctx context.Context, event domain.FormEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Error("publishing record event",
			slog.String("type", string(event.Type)),
			slog.String("form", event.FormName.String()),
			slog.String("error", err.Error()))
	}
}
