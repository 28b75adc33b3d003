package domain_test

import (
	"errors"
	"strings"

	"dms-server/internal/formbuilder/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SanitizeIdentifier", func() {
	DescribeTable("accepted names",
		func(raw string, expected domain.Identifier) {
			result, err := domain.SanitizeIdentifier(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(expected))
		},
		Entry("lowercases and replaces spaces", "Customer Feedback", domain.Identifier("customer_feedback")),
		Entry("collapses whitespace runs", "  Order   Date ", domain.Identifier("order_date")),
		Entry("collapses repeated underscores", "user__email", domain.Identifier("user_email")),
		Entry("trims underscores", "_rating_", domain.Identifier("rating")),
		Entry("keeps digits after the first letter", "field2", domain.Identifier("field2")),
	)

	DescribeTable("rejected names",
		func(raw string) {
			_, err := domain.SanitizeIdentifier(raw)
			Expect(err).To(HaveOccurred())

			var invalid domain.ErrInvalidIdentifier
			Expect(errors.As(err, &invalid)).To(BeTrue())
			Expect(invalid.Raw).To(Equal(raw))
		},
		Entry("empty", ""),
		Entry("only spaces", "   "),
		Entry("quote injection", `x"; DROP TABLE users; --`),
		Entry("dash", "first-name"),
		Entry("leading digit", "1st_place"),
		Entry("non ascii letter", "café"),
		Entry("too long", strings.Repeat("a", domain.MaxIdentifierLength+1)),
	)

	It("should accept a name at the length limit", func() {
		result, err := domain.SanitizeIdentifier(strings.Repeat("a", domain.MaxIdentifierLength))
		Expect(err).NotTo(HaveOccurred())
		Expect(result.String()).To(HaveLen(domain.MaxIdentifierLength))
	})

	It("should only produce names from the allow-list", func() {
		for _, raw := range []string{"Hello World", "a b c", "Tab\tSeparated", "MiXeD_Case 9"} {
			result, err := domain.SanitizeIdentifier(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.String()).To(MatchRegexp(`^[a-z][a-z0-9_]*$`))
		}
	})

	It("should render labels", func() {
		Expect(domain.Identifier("user_email").Label()).To(Equal("User Email"))
		Expect(domain.Identifier("rating").Label()).To(Equal("Rating"))
	})

	It("should flag system columns", func() {
		Expect(domain.Identifier("id").IsSystemColumn()).To(BeTrue())
		Expect(domain.Identifier("created_at").IsSystemColumn()).To(BeTrue())
		Expect(domain.Identifier("title").IsSystemColumn()).To(BeFalse())
	})
})
