package domain_test

import (
	"dms-server/internal/formbuilder/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MapLogicalType", func() {
	DescribeTable("known types",
		func(spec domain.FieldSpec, expected string) {
			fragment, ok := domain.MapLogicalType("col", spec)
			Expect(ok).To(BeTrue())
			Expect(fragment.Definition()).To(Equal(expected))
		},
		Entry("short text default length", domain.FieldSpec{LogicalType: "short-text"}, "VARCHAR(255)"),
		Entry("short text custom length", domain.FieldSpec{LogicalType: "short-text", MaxLength: 40}, "VARCHAR(40)"),
		Entry("varchar alias", domain.FieldSpec{LogicalType: "VARCHAR"}, "VARCHAR(255)"),
		Entry("long text", domain.FieldSpec{LogicalType: "long-text"}, "TEXT"),
		Entry("text alias", domain.FieldSpec{LogicalType: "Text"}, "TEXT"),
		Entry("integer", domain.FieldSpec{LogicalType: "integer"}, "INTEGER"),
		Entry("date", domain.FieldSpec{LogicalType: "date"}, "DATE"),
		Entry("boolean", domain.FieldSpec{LogicalType: "boolean"}, "BOOLEAN"),
		Entry("decimal", domain.FieldSpec{LogicalType: "decimal"}, "DECIMAL(10,2)"),
		Entry("required text", domain.FieldSpec{LogicalType: "short-text", Required: true}, "VARCHAR(255) NOT NULL DEFAULT ''"),
		Entry("required integer", domain.FieldSpec{LogicalType: "integer", Required: true}, "INTEGER NOT NULL DEFAULT 0"),
		Entry("required date", domain.FieldSpec{LogicalType: "date", Required: true}, "DATE NOT NULL DEFAULT '1970-01-01'"),
	)

	It("should produce no fragment for unknown types", func() {
		_, ok := domain.MapLogicalType("col", domain.FieldSpec{LogicalType: "json"})
		Expect(ok).To(BeFalse())

		_, ok = domain.MapLogicalType("col", domain.FieldSpec{LogicalType: ""})
		Expect(ok).To(BeFalse())
	})
})
