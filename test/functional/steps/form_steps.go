package steps

import (
	"net/http"

	"dms-server/test/functional/driver"

	"github.com/cucumber/godog"
)

func (fc *FeatureContext) iCreateAFormNamed(name string) error {
	err := fc.setResponse(fc.apiDriver.CreateForm(name, name))
	if fc.response.StatusCode == http.StatusCreated {
		data := fc.responseJSON()
		fc.formID = data["id"].(string)
	}
	return err
}

func (fc *FeatureContext) aFormExistsWithTheFields(name string, table *godog.Table) error {
	resp, err := fc.apiDriver.CreateForm(name, name)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(resp.Body, &data))
	fc.formID = data["id"].(string)

	resp, err = fc.apiDriver.AddFields(fc.formID, fieldSpecs(table))
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)
	return resp.Body.Close()
}

func fieldSpecs(table *godog.Table) []driver.FieldSpec {
	rows := tableRows(table)
	specs := make([]driver.FieldSpec, len(rows))
	for i, row := range rows {
		specs[i] = driver.FieldSpec{Name: row["name"], Type: row["type"]}
	}
	return specs
}

func (fc *FeatureContext) theFormShouldBeStoredAsWithStatus(name, status string) error {
	resp, err := fc.apiDriver.GetForm(fc.formID)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(resp.Body, &data))
	fc.require.Equal(name, data["name"])
	fc.require.Equal(status, data["status"])
	return nil
}

func (fc *FeatureContext) iAddTheFields(table *godog.Table) error {
	return fc.setResponse(fc.apiDriver.AddFields(fc.formID, fieldSpecs(table)))
}

func (fc *FeatureContext) theAddedColumnsShouldBe(columns string) error {
	data := fc.responseJSON()
	fc.require.Equal(splitList(columns), toStrings(data["added"]))
	return nil
}

func (fc *FeatureContext) theSkippedFieldsShouldBe(fields string) error {
	data := fc.responseJSON()
	fc.require.Equal(splitList(fields), toStrings(data["skipped"]))
	return nil
}

func (fc *FeatureContext) iListTheColumnsOfTheForm() error {
	return fc.setResponse(fc.apiDriver.ListColumns(fc.formID))
}

func (fc *FeatureContext) theColumnsShouldBe(columns string) error {
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)
	data := fc.responseJSON()
	fc.require.Equal(splitList(columns), toStrings(data["columns"]))
	return nil
}

func (fc *FeatureContext) iDeleteTheForm() error {
	return fc.setResponse(fc.apiDriver.DeleteForm(fc.formID))
}

func (fc *FeatureContext) iListAllForms() error {
	err := fc.setResponse(fc.apiDriver.ListForms())
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)

	forms, decodeErr := fc.decodePaginatedResponse(fc.response)
	fc.require.NoError(decodeErr)
	fc.responseListData = forms
	return err
}

func (fc *FeatureContext) theListShouldNotContainTheForm(name string) error {
	for _, form := range fc.responseListData {
		fc.require.NotEqual(name, form["name"], "form %s is still listed", name)
		fc.require.NotEqual(fc.formID, form["id"], "form %s is still listed", fc.formID)
	}
	return nil
}
