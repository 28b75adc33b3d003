package domain_test

import (
	"strings"

	"dms-server/internal/formbuilder/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Submission", func() {
	var form domain.FormDescriptor

	BeforeEach(func() {
		form = domain.BuildForm([]string{"name", "user_email", "signup_date", "start_time", "widget_id", "is_active", "notes"})
	})

	It("should coerce every field of a valid submission", func() {
		values, errs := form.Validate(map[string]string{
			"name":        "Ada",
			"user_email":  "ada@example.com",
			"signup_date": "2024-02-29",
			"start_time":  "09:30",
			"widget_id":   "42",
			"is_active":   "on",
			"notes":       "first\nsecond",
			"unknown":     "ignored",
		})

		Expect(errs.HasErrors()).To(BeFalse())
		Expect(values).To(Equal(domain.Values{
			"name":        "Ada",
			"user_email":  "ada@example.com",
			"signup_date": "2024-02-29",
			"start_time":  "09:30:00",
			"widget_id":   int64(42),
			"is_active":   true,
			"notes":       "first\nsecond",
		}))
	})

	It("should collect every error of an invalid submission", func() {
		_, errs := form.Validate(map[string]string{
			"user_email":  "not-an-email",
			"signup_date": "2024-13-01",
			"start_time":  "25:00",
			"widget_id":   "4.2",
			"is_active":   "maybe",
		})

		Expect(errs).To(HaveLen(7))
		Expect(errs).To(HaveKey("name"))
		Expect(errs).To(HaveKey("notes"))
		Expect(errs).To(HaveKey("user_email"))
		Expect(errs).To(HaveKey("signup_date"))
		Expect(errs).To(HaveKey("start_time"))
		Expect(errs).To(HaveKey("widget_id"))
		Expect(errs).To(HaveKey("is_active"))
		Expect(errs.OrNil()).To(HaveOccurred())
	})

	It("should treat a missing boolean as false", func() {
		values, errs := domain.BuildForm([]string{"is_active"}).Validate(map[string]string{})
		Expect(errs.HasErrors()).To(BeFalse())
		Expect(values["is_active"]).To(BeFalse())
	})

	It("should enforce the short text maximum length", func() {
		title := domain.BuildForm([]string{"title"})

		_, errs := title.Validate(map[string]string{"title": strings.Repeat("x", domain.DefaultMaxLength+1)})
		Expect(errs).To(HaveKey("title"))

		_, errs = title.Validate(map[string]string{"title": strings.Repeat("é", domain.DefaultMaxLength)})
		Expect(errs.HasErrors()).To(BeFalse())
	})

	Context("CoerceForStorage", func() {
		It("should narrow values to the column storage type", func() {
			columns := []domain.TableColumn{
				{Name: "rating", DataType: "INTEGER"},
				{Name: "price", DataType: "DECIMAL(10,2)"},
				{Name: "flag", DataType: "BOOLEAN"},
				{Name: "title", DataType: "VARCHAR(255)"},
				{Name: "missing", DataType: "TEXT"},
			}

			stored, errs := domain.CoerceForStorage(domain.Values{
				"rating": "5",
				"price":  "9.5",
				"flag":   "yes",
				"title":  "Hello",
			}, columns)

			Expect(errs.HasErrors()).To(BeFalse())
			Expect(stored).To(Equal([]domain.ColumnValue{
				{Column: "rating", Value: int64(5)},
				{Column: "price", Value: 9.5},
				{Column: "flag", Value: true},
				{Column: "title", Value: "Hello"},
			}))
		})

		It("should report values the column cannot hold", func() {
			_, errs := domain.CoerceForStorage(
				domain.Values{"rating": "five"},
				[]domain.TableColumn{{Name: "rating", DataType: "integer"}},
			)
			Expect(errs).To(HaveKey("rating"))
		})
	})
})
