package export_test

import (
	"bytes"
	"strings"

	"dms-server/internal/formbuilder/export"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

var _ = ginkgo.Describe("XLSXRenderer", func() {
	renderer := export.NewXLSXRenderer()

	ginkgo.It("should write the header and every row", func() {
		data, err := renderer.Render("Employees", []string{"name", "age"}, [][]string{{"Ana", "31"}, {"Omar", "28"}})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(data))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		defer f.Close()

		gomega.Expect(f.GetSheetList()).To(gomega.Equal([]string{"Employees"}))

		rows, err := f.GetRows("Employees")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(rows).To(gomega.Equal([][]string{{"name", "age"}, {"Ana", "31"}, {"Omar", "28"}}))
	})

	ginkgo.It("should clean up titles that are not valid sheet names", func() {
		data, err := renderer.Render("Q1/Q2 [draft] "+strings.Repeat("x", 40), []string{"a"}, nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(data))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		defer f.Close()

		sheets := f.GetSheetList()
		gomega.Expect(sheets).To(gomega.HaveLen(1))
		gomega.Expect(sheets[0]).To(gomega.HavePrefix("Q1Q2 draft"))
		gomega.Expect(len([]rune(sheets[0]))).To(gomega.BeNumerically("<=", 31))
	})

	ginkgo.It("should fall back to a default sheet for an empty title", func() {
		data, err := renderer.Render("", []string{"a"}, [][]string{{"1"}})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		f, err := excelize.OpenReader(bytes.NewReader(data))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		defer f.Close()
		gomega.Expect(f.GetSheetList()).To(gomega.Equal([]string{"Records"}))
	})

	ginkgo.It("should describe its format", func() {
		gomega.Expect(renderer.Format()).To(gomega.Equal("xlsx"))
		gomega.Expect(renderer.ContentType()).To(gomega.ContainSubstring("spreadsheetml"))
	})
})

var _ = ginkgo.Describe("PDFRenderer", func() {
	renderer := export.NewPDFRenderer()

	ginkgo.It("should produce a pdf document", func() {
		rows := make([][]string, 0, 80)
		for range 80 {
			rows = append(rows, []string{"Ana", strings.Repeat("long text ", 30)})
		}

		data, err := renderer.Render("Employees", []string{"name", "notes"}, rows)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(string(data[:5])).To(gomega.Equal("%PDF-"))
	})

	ginkgo.It("should render a table without rows", func() {
		data, err := renderer.Render("Empty", []string{"name"}, nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(data).NotTo(gomega.BeEmpty())
	})

	ginkgo.It("should describe its format", func() {
		gomega.Expect(renderer.Format()).To(gomega.Equal("pdf"))
		gomega.Expect(renderer.ContentType()).To(gomega.Equal("application/pdf"))
	})
})
