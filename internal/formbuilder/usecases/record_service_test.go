package usecases_test

import (
	"context"
	"errors"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/shared_kernel/authz"
	mockusecases "dms-server/test/unit/doubles/formbuilder/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("RecordService", func() {
	var (
		ctrl     *gomock.Controller
		renderer *mockusecases.MockTableRenderer
		e        engine
		ctx      context.Context
		form     domain.LogicalForm
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		renderer = mockusecases.NewMockTableRenderer(ctrl)
		renderer.EXPECT().Format().Return("csv").AnyTimes()
		renderer.EXPECT().ContentType().Return("text/csv").AnyTimes()

		e = newEngine(authz.AllowAll(), renderer)
		ctx = context.Background()

		result, err := e.registry.CreateLogicalForm(ctx, usecases.CreateFormRequest{
			Name:         "employees",
			DisplayTitle: "Employees",
			Fields: []domain.FieldSpec{
				field("user_email", "short-text"),
				field("is_active", "boolean"),
				field("signup_date", "date"),
				field("employee_id", "integer"),
				field("notes", "long-text"),
			},
		})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		form = result.Form
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	validSubmission := func() map[string]string {
		return map[string]string{
			"user_email":  "ana@example.com",
			"is_active":   "on",
			"signup_date": "2024-03-01",
			"employee_id": "42",
			"notes":       "first week",
		}
	}

	ginkgo.Context("EntryForm", func() {
		ginkgo.It("should synthesize one field per user column", func() {
			descriptor, err := e.records.EntryForm(ctx, form.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(descriptor.FieldNames()).To(gomega.Equal([]string{"user_email", "is_active", "signup_date", "employee_id", "notes"}))

			email, ok := descriptor.Field("user_email")
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(email.Kind).To(gomega.Equal(domain.PresentationEmail))

			active, ok := descriptor.Field("is_active")
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(active.Required).To(gomega.BeFalse())
		})

		ginkgo.It("should report a missing form", func() {
			_, err := e.records.EntryForm(ctx, "missing")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrFormNotFound))
		})
	})

	ginkgo.Context("CreateRecord", func() {
		ginkgo.It("should store a valid submission and read it back", func() {
			id, err := e.records.CreateRecord(ctx, form.ID, validSubmission())
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(id).To(gomega.Equal(domain.RecordID(1)))

			record, err := e.records.GetRecord(ctx, form.ID, id)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.Cell("user_email")).To(gomega.Equal("ana@example.com"))
			gomega.Expect(record.Cell("is_active")).To(gomega.Equal("true"))
			gomega.Expect(record.Cell("signup_date")).To(gomega.Equal("2024-03-01"))
			gomega.Expect(record.Cell("employee_id")).To(gomega.Equal("42"))
			gomega.Expect(record.CreatedAt.IsZero()).To(gomega.BeFalse())

			gomega.Expect(e.publisher.Types()).To(gomega.ContainElement(domain.EventRecordCreated))
		})

		ginkgo.It("should return every field error and insert nothing", func() {
			_, err := e.records.CreateRecord(ctx, form.ID, map[string]string{
				"user_email":  "not-an-email",
				"signup_date": "01/03/2024",
				"employee_id": "4.2",
			})

			var submission *usecases.SubmissionError
			gomega.Expect(errors.As(err, &submission)).To(gomega.BeTrue())
			gomega.Expect(submission.Errors).To(gomega.HaveKey("user_email"))
			gomega.Expect(submission.Errors).To(gomega.HaveKey("signup_date"))
			gomega.Expect(submission.Errors).To(gomega.HaveKey("employee_id"))
			gomega.Expect(submission.Errors).To(gomega.HaveKey("notes"))
			gomega.Expect(submission.Errors).NotTo(gomega.HaveKey("is_active"))

			email, _ := submission.Form.Field("user_email")
			gomega.Expect(email.Value).To(gomega.Equal("not-an-email"))
			gomega.Expect(email.Error).NotTo(gomega.BeEmpty())

			page, err := e.records.ListRecords(ctx, form.ID, usecases.Pagination{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(page.Total).To(gomega.BeZero())
		})

		ginkgo.It("should refuse submissions to a form without fields", func() {
			draft, err := e.registry.CreateLogicalForm(ctx, usecases.CreateFormRequest{Name: "empty"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = e.records.CreateRecord(ctx, draft.Form.ID, map[string]string{})
			var submission *usecases.SubmissionError
			gomega.Expect(errors.As(err, &submission)).To(gomega.BeTrue())
			gomega.Expect(submission.Errors).To(gomega.HaveKey("form"))
		})

		ginkgo.It("should pick up columns added after the first record", func() {
			first, err := e.records.CreateRecord(ctx, form.ID, validSubmission())
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, err = e.registry.AddFields(ctx, form.ID, []domain.FieldSpec{{Name: "extension", LogicalType: "integer"}})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			record, err := e.records.GetRecord(ctx, form.ID, first)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.Values).To(gomega.HaveKey("extension"))

			submission := validSubmission()
			submission["extension"] = "7"
			second, err := e.records.CreateRecord(ctx, form.ID, submission)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			record, err = e.records.GetRecord(ctx, form.ID, second)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.Cell("extension")).To(gomega.Equal("7"))
		})
	})

	ginkgo.Context("UpdateRecord and DeleteRecord", func() {
		var id domain.RecordID

		ginkgo.BeforeEach(func() {
			var err error
			id, err = e.records.CreateRecord(ctx, form.ID, validSubmission())
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("should replace the values of a record", func() {
			submission := validSubmission()
			submission["is_active"] = ""
			submission["notes"] = "moved teams"

			gomega.Expect(e.records.UpdateRecord(ctx, form.ID, id, submission)).To(gomega.Succeed())

			record, err := e.records.GetRecord(ctx, form.ID, id)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(record.Cell("is_active")).To(gomega.Equal("false"))
			gomega.Expect(record.Cell("notes")).To(gomega.Equal("moved teams"))
		})

		ginkgo.It("should report an unknown record on update", func() {
			err := e.records.UpdateRecord(ctx, form.ID, 99, validSubmission())
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRecordNotFound))
		})

		ginkgo.It("should delete a record and tolerate repeated deletes", func() {
			gomega.Expect(e.records.DeleteRecord(ctx, form.ID, id)).To(gomega.Succeed())
			gomega.Expect(e.records.DeleteRecord(ctx, form.ID, id)).To(gomega.Succeed())

			_, err := e.records.GetRecord(ctx, form.ID, id)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRecordNotFound))
		})
	})

	ginkgo.Context("ListRecords", func() {
		ginkgo.BeforeEach(func() {
			for range 3 {
				_, err := e.records.CreateRecord(ctx, form.ID, validSubmission())
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
			}
		})

		ginkgo.It("should page in insertion order", func() {
			page, err := e.records.ListRecords(ctx, form.ID, usecases.Pagination{Limit: 2, Offset: 1})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(page.Total).To(gomega.Equal(3))
			gomega.Expect(page.Records).To(gomega.HaveLen(2))
			gomega.Expect(page.Records[0].ID).To(gomega.Equal(domain.RecordID(2)))
			gomega.Expect(page.Columns).To(gomega.HaveLen(5))
		})

		ginkgo.It("should return an empty page past the end", func() {
			page, err := e.records.ListRecords(ctx, form.ID, usecases.Pagination{Limit: 10, Offset: 10})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(page.Records).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("ExportRecords", func() {
		ginkgo.It("should render the user columns of every row", func() {
			_, err := e.records.CreateRecord(ctx, form.ID, validSubmission())
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			renderer.EXPECT().
				Render("Employees", []string{"user_email", "is_active", "signup_date", "employee_id", "notes"}, gomock.Any()).
				DoAndReturn(func(_ string, _ []string, rows [][]string) ([]byte, error) {
					gomega.Expect(rows).To(gomega.Equal([][]string{{"ana@example.com", "true", "2024-03-01", "42", "first week"}}))
					return []byte("rendered"), nil
				})

			export, err := e.records.ExportRecords(ctx, form.ID, "CSV")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(export.FileName).To(gomega.MatchRegexp(`^employees_\d{8}_\d{6}\.csv$`))
			gomega.Expect(export.ContentType).To(gomega.Equal("text/csv"))
			gomega.Expect(export.Data).To(gomega.Equal([]byte("rendered")))
		})

		ginkgo.It("should reject unknown formats", func() {
			_, err := e.records.ExportRecords(ctx, form.ID, "docx")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrUnsupportedFormat))
		})
	})

	ginkgo.Context("Authorization", func() {
		ginkgo.It("should refuse a record delete to a role without the grant", func() {
			restricted := usecases.NewRecordService(e.forms, e.store, e.introspector, e.publisher,
				authz.NewRoleAuthorizer("editor", map[string][]string{"editor": {"Form:add", "Form:edit"}}))

			id, err := restricted.CreateRecord(asUser("editor"), form.ID, validSubmission())
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			err = restricted.DeleteRecord(asUser("editor"), form.ID, id)
			gomega.Expect(err).To(gomega.MatchError(authz.ErrForbidden))

			_, err = e.records.GetRecord(ctx, form.ID, id)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})
	})
})
