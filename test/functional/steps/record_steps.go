package steps

import (
	"fmt"
	"mime"
	"net/http"
	"path"
	"time"

	"github.com/cucumber/godog"
)

const _feedTimeout = 5 * time.Second

func recordValues(table *godog.Table) map[string]string {
	values := make(map[string]string)
	for _, row := range tableRows(table) {
		values[row["field"]] = row["value"]
	}
	return values
}

func (fc *FeatureContext) iSubmitARecordWith(table *godog.Table) error {
	return fc.setResponse(fc.apiDriver.CreateRecord(fc.formID, recordValues(table)))
}

func (fc *FeatureContext) theFormHasARecordWith(table *godog.Table) error {
	resp, err := fc.apiDriver.CreateRecord(fc.formID, recordValues(table))
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)
	return resp.Body.Close()
}

func (fc *FeatureContext) iListPageOfTheRecords(page int) error {
	err := fc.setResponse(fc.apiDriver.ListRecords(fc.formID, page))
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)

	records, decodeErr := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(decodeErr)
	fc.responseListData = records
	return err
}

func (fc *FeatureContext) thePageShouldContainRecords(count int) error {
	fc.require.Len(fc.responseListData, count)
	return nil
}

func (fc *FeatureContext) recordAt(position int) map[string]any {
	fc.require.GreaterOrEqual(position, 1)
	fc.require.LessOrEqual(position, len(fc.responseListData))
	return fc.responseListData[position-1]
}

func (fc *FeatureContext) recordShouldHaveACreationTime(position int) error {
	record := fc.recordAt(position)
	fc.require.NotEmpty(record["created_at"])
	fc.require.EqualValues(position, record["id"])
	return nil
}

func (fc *FeatureContext) recordShouldHaveEqualTo(position int, column, expected string) error {
	record := fc.recordAt(position)
	values, ok := record["values"].(map[string]any)
	fc.require.True(ok, "record has no values")
	fc.require.Equal(expected, fmt.Sprint(values[column]))
	return nil
}

func (fc *FeatureContext) iOpenTheEntryForm() error {
	return fc.setResponse(fc.apiDriver.EntryForm(fc.formID))
}

func (fc *FeatureContext) descriptorField(data map[string]any, name string) map[string]any {
	fields, ok := data["fields"].([]any)
	fc.require.True(ok, "response carries no form fields")
	for _, item := range fields {
		field, _ := item.(map[string]any)
		if field["name"] == name {
			return field
		}
	}
	fc.require.Failf("field not found", "field %s is not part of the form", name)
	return nil
}

func (fc *FeatureContext) theFieldShouldBeRenderedAs(name, widget string) error {
	field := fc.descriptorField(fc.responseJSON(), name)
	fc.require.Equal(widget, field["widget"])
	return nil
}

func (fc *FeatureContext) theFieldShouldKeepTheValueWithAnError(name, value string) error {
	data := fc.responseJSON()
	form, ok := data["form"].(map[string]any)
	fc.require.True(ok, "response carries no form")

	field := fc.descriptorField(form, name)
	fc.require.Equal(value, field["value"])
	fc.require.NotEmpty(field["error"])
	return nil
}

func (fc *FeatureContext) iExportTheRecordsAs(format string) error {
	return fc.setResponse(fc.apiDriver.ExportRecords(fc.formID, format))
}

func (fc *FeatureContext) theDownloadShouldBeNamed(pattern string) error {
	defer fc.response.Body.Close()

	_, params, err := mime.ParseMediaType(fc.response.Header.Get("Content-Disposition"))
	fc.require.NoError(err)

	matched, err := path.Match(pattern, params["filename"])
	fc.require.NoError(err)
	fc.require.True(matched, "download %q does not match %q", params["filename"], pattern)
	return nil
}

func (fc *FeatureContext) iFollowTheRecordFeedOfTheForm() error {
	conn, err := fc.apiDriver.FollowRecordFeed(fc.formID)
	fc.require.NoError(err)
	fc.feed = conn
	return nil
}

func (fc *FeatureContext) theFeedShouldDeliverAnEvent(eventType string) error {
	fc.require.NotNil(fc.feed, "not following any record feed")
	fc.require.NoError(fc.feed.SetReadDeadline(time.Now().Add(_feedTimeout)))

	var message map[string]any
	fc.require.NoError(fc.feed.ReadJSON(&message))
	fc.require.Equal(eventType, message["type"])
	fc.require.Equal(fc.formID, message["form_id"])
	fc.require.NotEmpty(message["record_id"])
	return nil
}
