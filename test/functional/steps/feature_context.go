package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"scout-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"pagination"`
}

type FeatureContext struct {
	env          *environment
	apiDriver    *driver.APIDriver
	response     *http.Response
	responseBody []byte
	users        map[string]string
	tableID      string
	fieldIDs     map[string]string
	recordID     string
	records      []map[string]any
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the response content type should contain "([^"]*)"$`, fc.theResponseContentTypeShouldContain)
	ctx.Then(`^the response body should contain "([^"]*)"$`, fc.theResponseBodyShouldContain)
	ctx.Then(`^the response body should not contain "([^"]*)"$`, fc.theResponseBodyShouldNotContain)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.When(`^I call the readyz endpoint$`, fc.iCallTheReadyzEndpoint)

	// User steps
	ctx.Given(`^a user "([^"]*)" with role "([^"]*)"$`, fc.aUserWithRole)

	// Table steps
	ctx.Given(`^a table "([^"]*)" exists$`, fc.aTableExists)
	ctx.When(`^user "([^"]*)" creates a table "([^"]*)" displayed as "([^"]*)"$`, fc.userCreatesATable)
	ctx.Given(`^the table has the fields:$`, fc.theTableHasTheFields)
	ctx.Then(`^the tables seen by "([^"]*)" should include "([^"]*)"$`, fc.theTablesSeenByShouldInclude)

	// Record steps
	ctx.Given(`^user "([^"]*)" created a record with:$`, fc.userCreatedARecordWith)
	ctx.When(`^user "([^"]*)" creates a record with:$`, fc.userCreatesARecordWith)
	ctx.When(`^user "([^"]*)" lists the records$`, fc.userListsTheRecords)
	ctx.When(`^user "([^"]*)" gets the last record$`, fc.userGetsTheLastRecord)
	ctx.Then(`^the list should contain (\d+) records?$`, fc.theListShouldContainRecords)
	ctx.Then(`^every listed record should have "([^"]*)" set to "([^"]*)"$`, fc.everyListedRecordShouldHave)

	// Permission steps
	ctx.Given(`^user "([^"]*)" may see records where "([^"]*)" is "([^"]*)"$`, fc.userMaySeeRecordsWhere)
	ctx.Given(`^user "([^"]*)" may see every record$`, fc.userMaySeeEveryRecord)

	// Export and print steps
	ctx.When(`^user "([^"]*)" exports the table$`, fc.userExportsTheTable)
	ctx.When(`^user "([^"]*)" exports the fields "([^"]*)" filtering "([^"]*)" on "([^"]*)"$`, fc.userExportsTheFieldsFiltering)
	ctx.Then(`^the spreadsheet should have the header "([^"]*)"$`, fc.theSpreadsheetShouldHaveTheHeader)
	ctx.Then(`^the spreadsheet should have (\d+) data rows?$`, fc.theSpreadsheetShouldHaveDataRows)
	ctx.When(`^user "([^"]*)" prints the last record$`, fc.userPrintsTheLastRecord)
	ctx.When(`^user "([^"]*)" sets the generic text "([^"]*)" to "([^"]*)"$`, fc.userSetsTheGenericText)
	ctx.When(`^user "([^"]*)" prints the generic text "([^"]*)"$`, fc.userPrintsTheGenericText)

	// Dashboard steps
	ctx.When(`^user "([^"]*)" opens the dashboard$`, fc.userOpensTheDashboard)
	ctx.Then(`^the dashboard should count (\d+) records? in total$`, fc.theDashboardShouldCountRecordsInTotal)
	ctx.Then(`^the dashboard should list (\d+) recent records?$`, fc.theDashboardShouldListRecentRecords)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		env, err := startEnvironment(ctx)
		if err != nil {
			return ctx, fmt.Errorf("starting server: %w", err)
		}
		fc.env = env
		fc.apiDriver = driver.NewAPIDriver(env.server.URL, env.server.Client())
		fc.users["admin"] = env.adminID
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		fc.env.close()
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.env = nil
	fc.response = nil
	fc.responseBody = nil
	fc.users = map[string]string{}
	fc.tableID = ""
	fc.fieldIDs = map[string]string{}
	fc.recordID = ""
	fc.records = nil
}

// keep reads the whole body so that several steps can inspect it.
func (fc *FeatureContext) keep(response *http.Response, err error) error {
	fc.require.NoError(err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	fc.require.NoError(err)

	fc.response = response
	fc.responseBody = body
	return nil
}

func (fc *FeatureContext) decodeBody(target any) error {
	return json.Unmarshal(fc.responseBody, target)
}

func (fc *FeatureContext) userID(name string) string {
	id, ok := fc.users[name]
	fc.require.True(ok, "unknown user %q", name)
	return id
}

func (fc *FeatureContext) fieldID(name string) string {
	id, ok := fc.fieldIDs[name]
	fc.require.True(ok, "unknown field %q", name)
	return id
}
