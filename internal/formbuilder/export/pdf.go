package export

import (
	"bytes"
	"fmt"

	"dms-server/internal/formbuilder/usecases"

	"github.com/go-pdf/fpdf"
)

const (
	FormatPDF      = "pdf"
	ContentTypePDF = "application/pdf"

	_pdfFont       = "Helvetica"
	_pdfTitleSize  = 14
	_pdfBodySize   = 9
	_pdfLineHeight = 7
)

var _ usecases.TableRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// PDFRenderer lays the table out on landscape A4 pages, one equal-width
// column per header. The header row is repeated on every page.
type PDFRenderer struct{}

func (r *PDFRenderer) Format() string {
	return FormatPDF
}

func (r *PDFRenderer) ContentType() string {
	return ContentTypePDF
}

func (r *PDFRenderer) Render(title string, headers []string, rows [][]string) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	columnWidth := pageWidth - left - right
	if len(headers) > 0 {
		columnWidth /= float64(len(headers))
	}

	writeHeader := func() {
		pdf.SetFont(_pdfFont, "B", _pdfBodySize)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range headers {
			pdf.CellFormat(columnWidth, _pdfLineHeight, translate(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(_pdfFont, "", _pdfBodySize)
	}

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			writeHeader()
		}
	})

	pdf.AddPage()
	pdf.SetFont(_pdfFont, "B", _pdfTitleSize)
	pdf.CellFormat(0, 10, translate(title), "", 1, "L", false, 0, "")
	writeHeader()

	for _, row := range rows {
		for i := range headers {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			pdf.CellFormat(columnWidth, _pdfLineHeight, translate(truncate(pdf, value, columnWidth)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// truncate shortens value so it fits a cell of the given width.
func truncate(pdf *fpdf.Fpdf, value string, width float64) string {
	const ellipsis = "..."
	limit := width - 2
	if pdf.GetStringWidth(value) <= limit {
		return value
	}

	runes := []rune(value)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+ellipsis) > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
