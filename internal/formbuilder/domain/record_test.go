package domain_test

import (
	"time"

	"dms-server/internal/formbuilder/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Record", func() {
	columns := []domain.TableColumn{
		{Name: "title", DataType: "VARCHAR(255)"},
		{Name: "signup_date", DataType: "DATE"},
		{Name: "is_active", DataType: "BOOLEAN"},
		{Name: "added_later", DataType: "TEXT"},
	}

	It("should map a row positionally", func() {
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		record := domain.RowToRecord([]any{
			int64(7), created, []byte("Hello"), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), int64(1), nil,
		}, columns)

		Expect(record.ID).To(Equal(domain.RecordID(7)))
		Expect(record.CreatedAt).To(Equal(created))
		Expect(record.Values).To(Equal(map[string]any{
			"title":       "Hello",
			"signup_date": "2024-01-02",
			"is_active":   true,
			"added_later": nil,
		}))
		Expect(record.Cell("is_active")).To(Equal("true"))
		Expect(record.Cell("added_later")).To(BeEmpty())
	})

	It("should parse text timestamps", func() {
		record := domain.RowToRecord([]any{int64(1), "2024-05-01 10:00:00"}, nil)
		Expect(record.CreatedAt.Year()).To(Equal(2024))
	})

	It("should parse record ids", func() {
		id, err := domain.ParseRecordID("12")
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(Equal(domain.RecordID(12)))

		_, err = domain.ParseRecordID("abc")
		Expect(err).To(MatchError(domain.ErrInvalidRecordID))
		_, err = domain.ParseRecordID("0")
		Expect(err).To(HaveOccurred())
	})
})
