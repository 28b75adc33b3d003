package domain_test

import (
	"dms-server/internal/formbuilder/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildForm", func() {
	DescribeTable("presentation heuristics",
		func(column string, kind domain.PresentationKind, required bool) {
			form := domain.BuildForm([]string{column})
			Expect(form.Fields).To(HaveLen(1))
			Expect(form.Fields[0].Kind).To(Equal(kind))
			Expect(form.Fields[0].Required).To(Equal(required))
		},
		Entry("email", "user_email", domain.PresentationEmail, true),
		Entry("boolean prefix", "is_active", domain.PresentationBoolean, false),
		Entry("date", "signup_date", domain.PresentationDate, true),
		Entry("notes", "notes", domain.PresentationLongText, true),
		Entry("foreign id", "widget_id", domain.PresentationInteger, true),
		Entry("fallback", "title", domain.PresentationShortText, true),
		Entry("time", "start_time", domain.PresentationTime, true),
		Entry("number", "phone_number", domain.PresentationInteger, true),
		Entry("description", "description", domain.PresentationLongText, true),
		Entry("email wins over date", "email_date", domain.PresentationEmail, true),
		Entry("date wins over time", "datetime", domain.PresentationDate, true),
	)

	It("should keep the column order and label every field", func() {
		form := domain.BuildForm([]string{"name", "user_email", "rating"})

		Expect(form.FieldNames()).To(Equal([]string{"name", "user_email", "rating"}))
		Expect(form.Fields[1].Label).To(Equal("User Email"))
		Expect(form.Fields[1].Widget).To(Equal(domain.WidgetEmail))
		Expect(form.Fields[2].MaxLength).To(Equal(domain.DefaultMaxLength))
	})

	It("should be a pure function of the names", func() {
		columns := []string{"title", "is_active"}
		Expect(domain.BuildForm(columns)).To(Equal(domain.BuildForm(columns)))
	})

	It("should build an empty descriptor for a table without user columns", func() {
		Expect(domain.BuildForm(nil).Fields).To(BeEmpty())
	})

	It("should prefill values and errors without touching the original", func() {
		form := domain.BuildForm([]string{"name", "user_email"})
		prefilled := form.Prefill(
			map[string]string{"name": "Ada", "user_email": "nope"},
			domain.ValidationErrors{"user_email": "enter a valid email address"},
		)

		name, _ := prefilled.Field("name")
		email, _ := prefilled.Field("user_email")
		Expect(name.Value).To(Equal("Ada"))
		Expect(name.Error).To(BeEmpty())
		Expect(email.Error).NotTo(BeEmpty())
		Expect(form.Fields[0].Value).To(BeEmpty())
	})
})
