package export

import (
	"fmt"
	"strings"

	"dms-server/internal/formbuilder/usecases"

	"github.com/xuri/excelize/v2"
)

const (
	FormatXLSX      = "xlsx"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	_defaultSheet   = "Sheet1"
	_maxSheetName   = 31
	_fallbackSheet  = "Records"
	_invalidInSheet = `:\/?*[]`
)

var _ usecases.TableRenderer = (*XLSXRenderer)(nil)

func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

// XLSXRenderer writes one worksheet named after the form with a bold header row.
type XLSXRenderer struct{}

func (r *XLSXRenderer) Format() string {
	return FormatXLSX
}

func (r *XLSXRenderer) ContentType() string {
	return ContentTypeXLSX
}

func (r *XLSXRenderer) Render(title string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(title)
	if sheet != _defaultSheet {
		if err := f.SetSheetName(_defaultSheet, sheet); err != nil {
			return nil, fmt.Errorf("naming sheet: %w", err)
		}
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("styling header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(_invalidInSheet, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(title))
	name = strings.Trim(name, "'")

	if runes := []rune(name); len(runes) > _maxSheetName {
		name = string(runes[:_maxSheetName])
	}
	if name == "" {
		return _fallbackSheet
	}
	return name
}
