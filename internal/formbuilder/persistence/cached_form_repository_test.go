package persistence_test

import (
	"context"
	"time"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/persistence"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/cache"
	"dms-server/internal/infra/sql"
	shareddomain "dms-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type countingFormRepository struct {
	usecases.FormRepository
	reads int
}

func (r *countingFormRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.LogicalForm, error) {
	r.reads++
	return r.FormRepository.GetByID(ctx, id)
}

var _ = ginkgo.Describe("CachedFormRepository", func() {
	var (
		inner *countingFormRepository
		repo  *persistence.CachedFormRepository
		ctx   context.Context
	)

	ginkgo.BeforeEach(func() {
		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		base, err := persistence.NewFormRepository(orm)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		store, err := cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		inner = &countingFormRepository{FormRepository: base}
		repo = persistence.NewCachedFormRepository(inner, store, time.Minute)
		ctx = context.Background()
	})

	ginkgo.It("should serve repeated reads from the cache", func() {
		form := newForm("survey")
		gomega.Expect(repo.Create(ctx, form)).To(gomega.Succeed())

		first, err := repo.GetByID(ctx, form.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		second, err := repo.GetByID(ctx, form.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Expect(second.Name).To(gomega.Equal(first.Name))
		gomega.Expect(inner.reads).To(gomega.Equal(1))
	})

	ginkgo.It("should invalidate on update", func() {
		form := newForm("survey")
		gomega.Expect(repo.Create(ctx, form)).To(gomega.Succeed())
		_, err := repo.GetByID(ctx, form.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		form.Activate()
		gomega.Expect(repo.Update(ctx, form)).To(gomega.Succeed())

		stored, err := repo.GetByID(ctx, form.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(stored.Status).To(gomega.Equal(domain.FormStatusActive))
		gomega.Expect(inner.reads).To(gomega.Equal(2))
	})

	ginkgo.It("should invalidate on delete and not cache misses", func() {
		form := newForm("survey")
		gomega.Expect(repo.Create(ctx, form)).To(gomega.Succeed())
		_, err := repo.GetByID(ctx, form.ID)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		gomega.Expect(repo.Delete(ctx, form.ID)).To(gomega.Succeed())

		_, err = repo.GetByID(ctx, form.ID)
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrFormNotFound))
		_, err = repo.GetByID(ctx, form.ID)
		gomega.Expect(err).To(gomega.MatchError(usecases.ErrFormNotFound))
		gomega.Expect(inner.reads).To(gomega.Equal(3))
	})
})
