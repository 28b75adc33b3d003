package steps

import (
	"strings"

	"github.com/cucumber/godog"
)

func (fc *FeatureContext) iActAs(role string) error {
	fc.apiDriver.ActAs(role)
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) theErrorShouldPointAtTheField(field string) error {
	data := fc.responseJSON()
	fields, ok := data["fields"].(map[string]any)
	fc.require.True(ok, "response carries no field errors")
	fc.require.NotEmpty(fields[field])
	return nil
}

// tableRows returns the data rows of a gherkin table keyed by its header.
func tableRows(table *godog.Table) []map[string]string {
	if len(table.Rows) == 0 {
		return nil
	}

	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[strings.TrimSpace(header[i].Value)] = strings.TrimSpace(cell.Value)
		}
		rows = append(rows, values)
	}
	return rows
}

func splitList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return []string{}
	}

	parts := strings.Split(list, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func toStrings(value any) []string {
	items, _ := value.([]any)
	result := make([]string, 0, len(items))
	for _, item := range items {
		s, _ := item.(string)
		result = append(result, s)
	}
	return result
}
