package sql_test

import (
	"context"
	"errors"
	"time"

	"dms-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.Context("WithTimeout", func() {
		ginkgo.It("should complete operations within timeout", func() {
			type TestModel struct {
				ID   uint `gorm:"primaryKey"`
				Name string
			}

			err := orm.AutoMigrate(&TestModel{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			var count int64
			err = orm.WithTimeout(ctx, 5*time.Second).Model(&TestModel{}).Count(&count).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(0)))
		})
	})

	ginkgo.Context("Raw statements", func() {
		ginkgo.BeforeEach(func() {
			err := orm.WithContext(ctx).Exec(`CREATE TABLE "notes" (id INTEGER PRIMARY KEY AUTOINCREMENT, body TEXT)`).Error()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should bind values and report affected rows", func() {
			result := orm.WithContext(ctx).Exec(`INSERT INTO "notes" (body) VALUES (?), (?)`, "a", "b")
			gomega.Expect(result.Error()).NotTo(gomega.HaveOccurred())
			gomega.Expect(result.RowsAffected()).To(gomega.Equal(int64(2)))
		})

		ginkgo.It("should stream rows", func() {
			gomega.Expect(orm.WithContext(ctx).Exec(`INSERT INTO "notes" (body) VALUES (?)`, "hello").Error()).To(gomega.Succeed())

			rows, err := orm.WithContext(ctx).Raw(`SELECT body FROM "notes" WHERE id = ?`, 1).Rows()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			defer rows.Close()

			gomega.Expect(rows.Next()).To(gomega.BeTrue())
			var body string
			gomega.Expect(rows.Scan(&body)).To(gomega.Succeed())
			gomega.Expect(body).To(gomega.Equal("hello"))
		})

		ginkgo.It("should report existing tables", func() {
			gomega.Expect(orm.WithContext(ctx).HasTable("notes")).To(gomega.BeTrue())
			gomega.Expect(orm.WithContext(ctx).HasTable("missing")).To(gomega.BeFalse())
		})

		ginkgo.It("should classify duplicate tables", func() {
			err := orm.WithContext(ctx).Exec(`CREATE TABLE "notes" (id INTEGER)`).Error()
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(errors.Is(err, sql.ErrDuplicateTable)).To(gomega.BeTrue())
		})

		ginkgo.It("should classify missing tables", func() {
			err := orm.WithContext(ctx).Exec(`DELETE FROM "missing" WHERE id = ?`, 1).Error()
			gomega.Expect(errors.Is(err, sql.ErrUndefinedTable)).To(gomega.BeTrue())
		})

		ginkgo.It("should roll back a failed transaction", func() {
			err := orm.Transaction(func(tx sql.ORM) error {
				if err := tx.Exec(`INSERT INTO "notes" (body) VALUES (?)`, "kept?").Error(); err != nil {
					return err
				}
				return tx.Exec(`INSERT INTO "missing" (body) VALUES (?)`, "boom").Error()
			})
			gomega.Expect(err).To(gomega.HaveOccurred())

			var count int64
			gomega.Expect(orm.WithContext(ctx).Raw(`SELECT COUNT(*) FROM "notes"`).Scan(&count).Error()).To(gomega.Succeed())
			gomega.Expect(count).To(gomega.BeZero())
		})
	})

	ginkgo.Context("Dialect", func() {
		ginkgo.It("should expose the dialect and quote identifiers", func() {
			gomega.Expect(orm.Dialect()).To(gomega.Equal("sqlite"))
			gomega.Expect(orm.QuoteIdentifier("customer_feedback")).To(gomega.Equal("`customer_feedback`"))
		})
	})

	ginkgo.Context("Isolation", func() {
		ginkgo.It("should give every memory ORM its own database", func() {
			gomega.Expect(orm.Exec(`CREATE TABLE "only_here" (id INTEGER)`).Error()).To(gomega.Succeed())

			other, err := sql.NewMemoryORM()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(other.HasTable("only_here")).To(gomega.BeFalse())
		})
	})
})
