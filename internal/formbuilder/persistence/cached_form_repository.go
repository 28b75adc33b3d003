package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/persistence/internal"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/cache"
	shareddomain "dms-server/internal/shared_kernel/domain"

	"github.com/vmihailenco/msgpack/v5"
)

const _formCacheKeyPrefix = "form:"

func NewCachedFormRepository(next usecases.FormRepository, store cache.Cache, ttl time.Duration) *CachedFormRepository {
	return &CachedFormRepository{next: next, cache: store, ttl: ttl}
}

var _ usecases.FormRepository = (*CachedFormRepository)(nil)

// CachedFormRepository reads catalog rows by id through a cache. Entries are
// msgpack encoded so the in-process and redis caches hold the same bytes.
type CachedFormRepository struct {
	next  usecases.FormRepository
	cache cache.Cache
	ttl   time.Duration
}

func formCacheKey(id shareddomain.ID) string {
	return _formCacheKeyPrefix + id.String()
}

func (r *CachedFormRepository) Create(ctx context.Context, form domain.LogicalForm) error {
	return r.next.Create(ctx, form)
}

func (r *CachedFormRepository) Update(ctx context.Context, form domain.LogicalForm) error {
	err := r.next.Update(ctx, form)
	r.cache.Delete(ctx, formCacheKey(form.ID))
	return err
}

func (r *CachedFormRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.LogicalForm, error) {
	value, err := r.cache.GetOrSet(ctx, formCacheKey(id), r.ttl, func() (any, error) {
		form, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return msgpack.Marshal(internal.FromLogicalForm(form))
	})
	if err != nil {
		return domain.LogicalForm{}, err
	}

	data, ok := value.([]byte)
	if !ok {
		return domain.LogicalForm{}, fmt.Errorf("unexpected cache entry %T for form %s", value, id)
	}

	var entity internal.LogicalForm
	if err := msgpack.Unmarshal(data, &entity); err != nil {
		slog.Warn("dropping undecodable cache entry", slog.String("form_id", id.String()), slog.String("error", err.Error()))
		r.cache.Delete(ctx, formCacheKey(id))
		return r.next.GetByID(ctx, id)
	}

	return entity.ToDomain(), nil
}

func (r *CachedFormRepository) GetByName(ctx context.Context, name domain.Identifier) (domain.LogicalForm, error) {
	return r.next.GetByName(ctx, name)
}

func (r *CachedFormRepository) FindAll(ctx context.Context, pagination usecases.Pagination) ([]domain.LogicalForm, int, error) {
	return r.next.FindAll(ctx, pagination)
}

func (r *CachedFormRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	err := r.next.Delete(ctx, id)
	r.cache.Delete(ctx, formCacheKey(id))
	return err
}
