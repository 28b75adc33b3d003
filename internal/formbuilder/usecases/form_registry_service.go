package usecases

//go:generate mockgen -source=./form_registry_service.go -destination=../../../test/unit/doubles/formbuilder/usecases/form_registry_service_mock.go -package=usecases -mock_names=FormRegistryService=MockFormRegistryService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/shared_kernel/authz"
	shareddomain "dms-server/internal/shared_kernel/domain"
)

type FormRegistryService interface {
	CreateLogicalForm(ctx context.Context, request CreateFormRequest) (CreateFormResult, error)
	AddFields(ctx context.Context, id shareddomain.ID, specs []domain.FieldSpec) (AddFieldsResult, error)
	DeleteLogicalForm(ctx context.Context, id shareddomain.ID) error
	DeleteLogicalForms(ctx context.Context, ids []shareddomain.ID) (BulkDeleteResult, error)
	ListLogicalForms(ctx context.Context, pagination Pagination) ([]domain.LogicalForm, int, error)
	GetLogicalForm(ctx context.Context, id shareddomain.ID) (domain.LogicalForm, error)
	ListColumns(ctx context.Context, id shareddomain.ID) ([]string, error)
}

type CreateFormRequest struct {
	Name         string
	DisplayTitle string
	WelcomeText  string
	Language     string
	Template     int
	Logo         *string
	Fields       []domain.FieldSpec
}

type CreateFormResult struct {
	Form    domain.LogicalForm
	Added   []string
	Skipped []string
}

// AddFieldsResult lists the columns that were added and the field names that
// were dropped because their logical type is unknown.
type AddFieldsResult struct {
	Added   []string
	Skipped []string
}

type BulkDeleteResult struct {
	Deleted []shareddomain.ID
	Failed  map[shareddomain.ID]string
}

func NewFormRegistryService(
	repository FormRepository,
	store SchemaStore,
	introspector SchemaIntrospector,
	publisher EventPublisher,
	authorizer authz.Authorizer,
) *SimpleFormRegistryService {
	return &SimpleFormRegistryService{
		repository:   repository,
		store:        store,
		introspector: introspector,
		publisher:    publisher,
		authorizer:   authorizer,
	}
}

var _ FormRegistryService = (*SimpleFormRegistryService)(nil)

type SimpleFormRegistryService struct {
	repository   FormRepository
	store        SchemaStore
	introspector SchemaIntrospector
	publisher    EventPublisher
	authorizer   authz.Authorizer
}

func (s *SimpleFormRegistryService) CreateLogicalForm(ctx context.Context, request CreateFormRequest) (CreateFormResult, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionAdd); err != nil {
		return CreateFormResult{}, err
	}

	form, errs := buildForm(request)
	if errs.HasErrors() {
		return CreateFormResult{}, errs
	}

	plan := planFields(request.Fields, nil)
	if plan.errors.HasErrors() {
		return CreateFormResult{}, plan.errors
	}

	if err := s.ensureNameIsFree(ctx, form.Name); err != nil {
		return CreateFormResult{}, err
	}

	err := s.store.CreateTable(ctx, form.TableName(), plan.fragments)
	if errors.Is(err, domain.ErrTableExists) {
		return CreateFormResult{}, ErrDuplicateName
	}
	if err != nil {
		slog.Error("creating form table", slog.String("form", form.Name.String()), slog.String("error", err.Error()))
		return CreateFormResult{}, fmt.Errorf("creating form table: %w", err)
	}

	if len(plan.fragments) > 0 {
		form.Activate()
	}

	err = s.repository.Create(ctx, form)
	if err != nil {
		if dropErr := s.store.DropTable(ctx, form.TableName()); dropErr != nil {
			slog.Error("dropping table of unsaved form",
				slog.String("form", form.Name.String()),
				slog.String("error", dropErr.Error()))
		}
		if errors.Is(err, ErrDuplicateName) {
			return CreateFormResult{}, ErrDuplicateName
		}
		slog.Error("saving form", slog.String("form", form.Name.String()), slog.String("error", err.Error()))
		return CreateFormResult{}, fmt.Errorf("saving form: %w", err)
	}

	slog.Info("form created",
		slog.String("id", form.ID.String()),
		slog.String("form", form.Name.String()),
		slog.Int("fields", len(plan.fragments)))

	s.publish(ctx, domain.NewFormEvent(domain.EventFormCreated, form))

	return CreateFormResult{
		Form:    form,
		Added:   plan.added(),
		Skipped: plan.skipped,
	}, nil
}

func buildForm(request CreateFormRequest) (domain.LogicalForm, domain.ValidationErrors) {
	errs := make(domain.ValidationErrors)

	name, err := domain.SanitizeIdentifier(request.Name)
	if err != nil {
		var invalid domain.ErrInvalidIdentifier
		if errors.As(err, &invalid) {
			errs.Add("name", "name "+invalid.Reason)
		} else {
			errs.Add("name", err.Error())
		}
	}
	if _, err := domain.ParseLanguage(request.Language); err != nil {
		errs.Add("language", "select a supported language")
	}
	if _, err := domain.ParseTemplate(request.Template); err != nil {
		errs.Add("template", "select a supported template")
	}
	if errs.HasErrors() {
		return domain.LogicalForm{}, errs
	}

	form, err := domain.NewLogicalFormBuilder().
		WithName(name).
		WithDisplayTitle(request.DisplayTitle).
		WithWelcomeText(request.WelcomeText).
		WithLanguage(request.Language).
		WithTemplate(request.Template).
		WithLogo(request.Logo).
		Build()
	if err != nil {
		errs.Add("name", err.Error())
	}

	return form, errs
}

func (s *SimpleFormRegistryService) ensureNameIsFree(ctx context.Context, name domain.Identifier) error {
	_, err := s.repository.GetByName(ctx, name)
	if err == nil {
		return ErrDuplicateName
	}
	if !errors.Is(err, ErrFormNotFound) {
		return fmt.Errorf("looking up form name: %w", err)
	}

	exists, err := s.store.TableExists(ctx, name)
	if err != nil {
		return fmt.Errorf("checking table: %w", err)
	}
	if exists {
		return ErrDuplicateName
	}

	return nil
}

func (s *SimpleFormRegistryService) AddFields(ctx context.Context, id shareddomain.ID, specs []domain.FieldSpec) (AddFieldsResult, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionAdd); err != nil {
		return AddFieldsResult{}, err
	}

	if len(specs) == 0 {
		return AddFieldsResult{}, domain.ValidationErrors{"fields": "add at least one field"}
	}

	form, err := s.getForm(ctx, id)
	if err != nil {
		return AddFieldsResult{}, err
	}

	existing, err := s.introspector.ListColumns(ctx, form.TableName())
	if err != nil {
		return AddFieldsResult{}, fmt.Errorf("listing columns: %w", err)
	}

	plan := planFields(specs, existing)
	if plan.errors.HasErrors() {
		return AddFieldsResult{}, plan.errors
	}

	err = s.store.AddColumns(ctx, form.TableName(), plan.fragments)
	if err != nil {
		slog.Error("adding form fields", slog.String("form", form.Name.String()), slog.String("error", err.Error()))
		return AddFieldsResult{}, fmt.Errorf("adding columns: %w", err)
	}

	if len(existing)+len(plan.fragments) > 0 && form.Activate() {
		if err := s.repository.Update(ctx, form); err != nil {
			slog.Error("activating form", slog.String("form", form.Name.String()), slog.String("error", err.Error()))
			return AddFieldsResult{}, fmt.Errorf("activating form: %w", err)
		}
	}

	result := AddFieldsResult{Added: plan.added(), Skipped: plan.skipped}
	if len(plan.skipped) > 0 {
		slog.Warn("skipped fields with unknown types",
			slog.String("form", form.Name.String()),
			slog.Any("fields", plan.skipped))
	}

	if len(result.Added) > 0 {
		event := domain.NewFormEvent(domain.EventFieldsAdded, form)
		event.Columns = result.Added
		s.publish(ctx, event)
	}

	return result, nil
}

type fieldPlan struct {
	fragments []domain.ColumnFragment
	skipped   []string
	errors    domain.ValidationErrors
}

func (p fieldPlan) added() []string {
	names := make([]string, len(p.fragments))
	for i, f := range p.fragments {
		names[i] = f.Name.String()
	}
	return names
}

// planFields sanitizes and maps every spec. Bad names fail the whole batch,
// unknown types only drop their own field.
func planFields(specs []domain.FieldSpec, existing []string) fieldPlan {
	plan := fieldPlan{errors: make(domain.ValidationErrors)}

	taken := make(map[domain.Identifier]bool, len(existing)+len(specs))
	for _, name := range existing {
		taken[domain.Identifier(name)] = true
	}

	for i, spec := range specs {
		key := fmt.Sprintf("fields[%d].name", i)

		name, err := domain.SanitizeIdentifier(spec.Name)
		if err != nil {
			plan.errors.Add(key, err.Error())
			continue
		}
		if name.IsSystemColumn() {
			plan.errors.Add(key, fmt.Sprintf("%q is reserved", name))
			continue
		}
		if taken[name] {
			plan.errors.Add(key, fmt.Sprintf("a field named %q already exists", name))
			continue
		}

		fragment, ok := domain.MapLogicalType(name, spec)
		if !ok {
			plan.skipped = append(plan.skipped, spec.Name)
			continue
		}

		taken[name] = true
		plan.fragments = append(plan.fragments, fragment)
	}

	return plan
}

// DeleteLogicalForm drops the table before removing the catalog row, so a
// failed drop leaves the form listed.
func (s *SimpleFormRegistryService) DeleteLogicalForm(ctx context.Context, id shareddomain.ID) error {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionDelete); err != nil {
		return err
	}

	return s.deleteForm(ctx, id)
}

func (s *SimpleFormRegistryService) deleteForm(ctx context.Context, id shareddomain.ID) error {
	form, err := s.getForm(ctx, id)
	if err != nil {
		return err
	}

	err = s.store.DropTable(ctx, form.TableName())
	if err != nil {
		slog.Error("dropping form table", slog.String("form", form.Name.String()), slog.String("error", err.Error()))
		return fmt.Errorf("dropping form table: %w", err)
	}

	err = s.repository.Delete(ctx, form.ID)
	if err != nil {
		slog.Error("deleting form", slog.String("form", form.Name.String()), slog.String("error", err.Error()))
		return fmt.Errorf("deleting form: %w", err)
	}

	slog.Info("form deleted", slog.String("id", form.ID.String()), slog.String("form", form.Name.String()))
	s.publish(ctx, domain.NewFormEvent(domain.EventFormDeleted, form))

	return nil
}

func (s *SimpleFormRegistryService) DeleteLogicalForms(ctx context.Context, ids []shareddomain.ID) (BulkDeleteResult, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionDelete); err != nil {
		return BulkDeleteResult{}, err
	}

	result := BulkDeleteResult{Failed: make(map[shareddomain.ID]string)}
	for _, id := range ids {
		if err := s.deleteForm(ctx, id); err != nil {
			result.Failed[id] = err.Error()
			continue
		}
		result.Deleted = append(result.Deleted, id)
	}

	return result, nil
}

func (s *SimpleFormRegistryService) ListLogicalForms(ctx context.Context, pagination Pagination) ([]domain.LogicalForm, int, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionEdit); err != nil {
		return nil, 0, err
	}

	forms, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing forms", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing forms: %w", err)
	}

	return forms, total, nil
}

func (s *SimpleFormRegistryService) GetLogicalForm(ctx context.Context, id shareddomain.ID) (domain.LogicalForm, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionEdit); err != nil {
		return domain.LogicalForm{}, err
	}

	return s.getForm(ctx, id)
}

func (s *SimpleFormRegistryService) ListColumns(ctx context.Context, id shareddomain.ID) ([]string, error) {
	if err := authz.Require(ctx, s.authorizer, authz.ResourceForm, authz.ActionEdit); err != nil {
		return nil, err
	}

	form, err := s.getForm(ctx, id)
	if err != nil {
		return nil, err
	}

	columns, err := s.introspector.ListColumns(ctx, form.TableName())
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}

	return columns, nil
}

func (s *SimpleFormRegistryService) getForm(ctx context.Context, id shareddomain.ID) (domain.LogicalForm, error) {
	form, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return domain.LogicalForm{}, ErrFormNotFound
		}
		slog.Error("getting form", slog.String("id", id.String()), slog.String("error", err.Error()))
		return domain.LogicalForm{}, fmt.Errorf("getting form: %w", err)
	}

	return form, nil
}

func (s *SimpleFormRegistryService) publish(ctx context.Context, event domain.FormEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Error("publishing form event",
			slog.String("type", string(event.Type)),
			slog.String("form", event.FormName.String()),
			slog.String("error", err.Error()))
	}
}
