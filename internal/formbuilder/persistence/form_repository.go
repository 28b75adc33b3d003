package persistence

import (
	"context"
	"errors"
	"fmt"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/persistence/internal"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/sql"
	shareddomain "dms-server/internal/shared_kernel/domain"
)

func NewFormRepository(orm sql.ORM) (*SimpleFormRepository, error) {
	err := orm.AutoMigrate(&internal.LogicalForm{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFormRepository{
		orm: orm,
	}, nil
}

var _ usecases.FormRepository = (*SimpleFormRepository)(nil)

// SimpleFormRepository keeps the catalog of logical forms.
type SimpleFormRepository struct {
	orm sql.ORM
}

func (r *SimpleFormRepository) Create(ctx context.Context, form domain.LogicalForm) error {
	entity := internal.FromLogicalForm(form)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrUniqueViolation) {
		return usecases.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("creating form in database: %w", err)
	}

	return nil
}

func (r *SimpleFormRepository) Update(ctx context.Context, form domain.LogicalForm) error {
	entity := internal.FromLogicalForm(form)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating form in database: %w", err)
	}

	return nil
}

func (r *SimpleFormRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.LogicalForm, error) {
	var entity internal.LogicalForm
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.LogicalForm{}, usecases.ErrFormNotFound
	}

	if err != nil {
		return domain.LogicalForm{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFormRepository) GetByName(ctx context.Context, name domain.Identifier) (domain.LogicalForm, error) {
	var entity internal.LogicalForm
	err := r.orm.
		WithContext(ctx).
		First(&entity, "name = ?", name.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.LogicalForm{}, usecases.ErrFormNotFound
	}

	if err != nil {
		return domain.LogicalForm{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

// FindAll lists forms by creation time. A zero limit returns every form.
func (r *SimpleFormRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.LogicalForm, int, error) {
	var total int64
	err := r.orm.WithContext(ctx).Model(&internal.LogicalForm{}).Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	query := r.orm.WithContext(ctx).Order("created_at ASC")
	if pagination.Limit > 0 {
		query = query.Limit(pagination.Limit).Offset(pagination.Offset)
	}

	var entities []internal.LogicalForm
	err = query.Find(&entities).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.LogicalForm, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleFormRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	err := r.orm.WithContext(ctx).Delete(&internal.LogicalForm{}, "id = ?", id.String()).Error()
	if err != nil {
		return fmt.Errorf("deleting form from database: %w", err)
	}

	return nil
}
