package persistence_test

import (
	"context"
	"errors"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/persistence"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func fragment(name string, logicalType string, required bool) domain.ColumnFragment {
	f, ok := domain.MapLogicalType(domain.Identifier(name), domain.FieldSpec{LogicalType: logicalType, Required: required})
	gomega.Expect(ok).To(gomega.BeTrue())
	return f
}

var _ = ginkgo.Describe("SchemaStore", func() {
	var (
		orm          sql.ORM
		store        *persistence.SimpleSchemaStore
		introspector *persistence.SimpleSchemaIntrospector
		ctx          context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		store = persistence.NewSchemaStore(orm)
		introspector = persistence.NewSchemaIntrospector(orm)
		ctx = context.Background()
	})

	ginkgo.Context("CreateTable", func() {
		ginkgo.It("should create a table with the system columns", func() {
			err := store.CreateTable(ctx, "customer_feedback", []domain.ColumnFragment{
				fragment("name", "short-text", true),
				fragment("rating", "integer", false),
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			exists, err := store.TableExists(ctx, "customer_feedback")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeTrue())

			columns, err := introspector.ListColumns(ctx, "customer_feedback")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(columns).To(gomega.Equal([]string{"name", "rating"}))
		})

		ginkgo.It("should report an existing table", func() {
			gomega.Expect(store.CreateTable(ctx, "survey", nil)).To(gomega.Succeed())

			err := store.CreateTable(ctx, "survey", nil)
			gomega.Expect(errors.Is(err, domain.ErrTableExists)).To(gomega.BeTrue())

			var schemaErr *domain.SchemaError
			gomega.Expect(errors.As(err, &schemaErr)).To(gomega.BeTrue())
			gomega.Expect(schemaErr.Table).To(gomega.Equal(domain.Identifier("survey")))
		})

		ginkgo.It("should leave nothing behind when a fragment is invalid", func() {
			err := store.CreateTable(ctx, "broken", []domain.ColumnFragment{
				fragment("name", "short-text", false),
				fragment("name", "integer", false),
			})
			gomega.Expect(errors.Is(err, domain.ErrDDLFailed)).To(gomega.BeTrue())

			exists, err := store.TableExists(ctx, "broken")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("AddColumns", func() {
		ginkgo.BeforeEach(func() {
			gomega.Expect(store.CreateTable(ctx, "survey", []domain.ColumnFragment{fragment("name", "short-text", false)})).To(gomega.Succeed())
		})

		ginkgo.It("should append columns in order", func() {
			err := store.AddColumns(ctx, "survey", []domain.ColumnFragment{
				fragment("user_email", "short-text", true),
				fragment("signup_date", "date", false),
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			columns, err := introspector.ListColumns(ctx, "survey")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(columns).To(gomega.Equal([]string{"name", "user_email", "signup_date"}))
		})

		ginkgo.It("should add required columns to tables that hold rows", func() {
			_, err := store.InsertRow(ctx, "survey", []domain.ColumnValue{{Column: "name", Value: "Ada"}})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			err = store.AddColumns(ctx, "survey", []domain.ColumnFragment{fragment("score", "integer", true)})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should roll back every column when one fails", func() {
			err := store.AddColumns(ctx, "survey", []domain.ColumnFragment{
				fragment("extra", "short-text", false),
				fragment("name", "integer", false),
			})
			gomega.Expect(errors.Is(err, domain.ErrDDLFailed)).To(gomega.BeTrue())

			columns, err := introspector.ListColumns(ctx, "survey")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(columns).To(gomega.Equal([]string{"name"}))
		})

		ginkgo.It("should report a missing table", func() {
			err := store.AddColumns(ctx, "missing", []domain.ColumnFragment{fragment("x", "integer", false)})
			gomega.Expect(errors.Is(err, domain.ErrTableNotFound)).To(gomega.BeTrue())
		})
	})

	ginkgo.Context("DropTable", func() {
		ginkgo.It("should be idempotent", func() {
			gomega.Expect(store.CreateTable(ctx, "survey", nil)).To(gomega.Succeed())

			gomega.Expect(store.DropTable(ctx, "survey")).To(gomega.Succeed())
			gomega.Expect(store.DropTable(ctx, "survey")).To(gomega.Succeed())

			exists, err := store.TableExists(ctx, "survey")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("Rows", func() {
		var columns []domain.TableColumn

		ginkgo.BeforeEach(func() {
			gomega.Expect(store.CreateTable(ctx, "survey", []domain.ColumnFragment{
				fragment("name", "short-text", false),
				fragment("rating", "integer", false),
				fragment("is_active", "boolean", false),
			})).To(gomega.Succeed())

			var err error
			columns, err = introspector.DescribeColumns(ctx, "survey")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should insert and read rows in order", func() {
			first, err := store.InsertRow(ctx, "survey", []domain.ColumnValue{
				{Column: "name", Value: "Ada"},
				{Column: "rating", Value: int64(5)},
				{Column: "is_active", Value: true},
			})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			second, err := store.InsertRow(ctx, "survey", []domain.ColumnValue{{Column: "name", Value: "Grace"}})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(second).To(gomega.BeNumerically(">", first))

			records, err := store.SelectRows(ctx, "survey", columns)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(records).To(gomega.HaveLen(2))
			gomega.Expect(records[0].ID).To(gomega.Equal(first))
			gomega.Expect(records[0].CreatedAt.IsZero()).To(gomega.BeFalse())
			gomega.Expect(records[0].Values).To(gomega.Equal(map[string]any{"name": "Ada", "rating": int64(5), "is_active": true}))
			gomega.Expect(records[1].Values["rating"]).To(gomega.BeNil())
		})

		ginkgo.It("should store hostile text verbatim", func() {
			payload := `Robert'); DROP TABLE survey; --`
			id, err := store.InsertRow(ctx, "survey", []domain.ColumnValue{{Column: "name", Value: payload}})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			record, err := store.SelectRow(ctx, "survey", columns, id)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.Values["name"]).To(gomega.Equal(payload))

			exists, err := store.TableExists(ctx, "survey")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(exists).To(gomega.BeTrue())
		})

		ginkgo.It("should update and delete rows", func() {
			id, err := store.InsertRow(ctx, "survey", []domain.ColumnValue{{Column: "name", Value: "Ada"}})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(store.UpdateRow(ctx, "survey", id, []domain.ColumnValue{{Column: "name", Value: "Ada L."}})).To(gomega.Succeed())
			record, err := store.SelectRow(ctx, "survey", columns, id)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.Values["name"]).To(gomega.Equal("Ada L."))

			gomega.Expect(store.DeleteRow(ctx, "survey", id)).To(gomega.Succeed())
			gomega.Expect(store.DeleteRow(ctx, "survey", id)).To(gomega.Succeed())

			_, err = store.SelectRow(ctx, "survey", columns, id)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRecordNotFound))
		})

		ginkgo.It("should report updates of missing rows", func() {
			err := store.UpdateRow(ctx, "survey", 99, []domain.ColumnValue{{Column: "name", Value: "x"}})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRecordNotFound))
		})

		ginkgo.It("should report a dropped table as not found", func() {
			gomega.Expect(store.DropTable(ctx, "survey")).To(gomega.Succeed())

			_, err := store.SelectRows(ctx, "survey", columns)
			gomega.Expect(errors.Is(err, domain.ErrTableNotFound)).To(gomega.BeTrue())
		})
	})
})
