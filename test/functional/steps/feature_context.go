package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"dms-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// PaginatedResponse mirrors the envelope of every list endpoint.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

type FeatureContext struct {
	server           *driver.Server
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	formID           string
	feed             *websocket.Conn
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Given(`^I act as "([^"]*)"$`, fc.iActAs)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the error should point at the "([^"]*)" field$`, fc.theErrorShouldPointAtTheField)

	// Form steps
	ctx.When(`^I create a form named "([^"]*)"$`, fc.iCreateAFormNamed)
	ctx.Given(`^a form "([^"]*)" exists with the fields:$`, fc.aFormExistsWithTheFields)
	ctx.Then(`^the form should be stored as "([^"]*)" with status "([^"]*)"$`, fc.theFormShouldBeStoredAsWithStatus)
	ctx.When(`^I add the fields:$`, fc.iAddTheFields)
	ctx.Then(`^the added columns should be "([^"]*)"$`, fc.theAddedColumnsShouldBe)
	ctx.Then(`^the skipped fields should be "([^"]*)"$`, fc.theSkippedFieldsShouldBe)
	ctx.When(`^I list the columns of the form$`, fc.iListTheColumnsOfTheForm)
	ctx.Then(`^the columns should be "([^"]*)"$`, fc.theColumnsShouldBe)
	ctx.When(`^I delete the form$`, fc.iDeleteTheForm)
	ctx.When(`^I list all forms$`, fc.iListAllForms)
	ctx.Then(`^the list should not contain the form "([^"]*)"$`, fc.theListShouldNotContainTheForm)

	// Record steps
	ctx.When(`^I submit a record with:$`, fc.iSubmitARecordWith)
	ctx.Given(`^the form has a record with:$`, fc.theFormHasARecordWith)
	ctx.When(`^I list page (\d+) of the records$`, fc.iListPageOfTheRecords)
	ctx.Then(`^the page should contain (\d+) records?$`, fc.thePageShouldContainRecords)
	ctx.Then(`^record (\d+) should have a creation time$`, fc.recordShouldHaveACreationTime)
	ctx.Then(`^record (\d+) should have "([^"]*)" equal to "([^"]*)"$`, fc.recordShouldHaveEqualTo)
	ctx.When(`^I open the entry form$`, fc.iOpenTheEntryForm)
	ctx.Then(`^the field "([^"]*)" should be rendered as "([^"]*)"$`, fc.theFieldShouldBeRenderedAs)
	ctx.Then(`^the field "([^"]*)" should keep the value "([^"]*)" with an error$`, fc.theFieldShouldKeepTheValueWithAnError)
	ctx.When(`^I export the records as "([^"]*)"$`, fc.iExportTheRecordsAs)
	ctx.Then(`^the download should be named "([^"]*)"$`, fc.theDownloadShouldBeNamed)
	ctx.Given(`^I follow the record feed of the form$`, fc.iFollowTheRecordFeedOfTheForm)
	ctx.Then(`^the feed should deliver a "([^"]*)" event$`, fc.theFeedShouldDeliverAnEvent)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		server, err := driver.StartServer()
		if err != nil {
			return ctx, fmt.Errorf("starting server: %w", err)
		}
		fc.server = server
		fc.apiDriver = driver.NewAPIDriver(server.URL)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if fc.feed != nil {
			fc.feed.Close()
			fc.feed = nil
		}
		if fc.server != nil {
			fc.server.Close()
			fc.server = nil
		}
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.formID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(resp *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(resp.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}

// responseJSON decodes the last response once and keeps it for the following
// assertions of the same step sequence.
func (fc *FeatureContext) responseJSON() map[string]any {
	if fc.responseData == nil {
		var data map[string]any
		fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
		fc.responseData = data
	}
	return fc.responseData
}

func (fc *FeatureContext) setResponse(resp *http.Response, err error) error {
	fc.require.NoError(err)
	fc.response = resp
	fc.responseData = nil
	return nil
}
