package steps

import (
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

type Record struct {
	ID     string         `json:"id"`
	Values map[string]any `json:"values"`
}

// recordValues reads a two column table of field and value. An empty value
// cell is sent as null.
func recordValues(table *godog.Table) map[string]any {
	values := map[string]any{}
	for _, row := range table.Rows {
		if len(row.Cells) < 2 || row.Cells[0].Value == "field" {
			continue
		}
		if row.Cells[1].Value == "" {
			values[row.Cells[0].Value] = nil
			continue
		}
		values[row.Cells[0].Value] = row.Cells[1].Value
	}
	return values
}

func (fc *FeatureContext) userCreatedARecordWith(user string, table *godog.Table) error {
	fc.require.NoError(fc.userCreatesARecordWith(user, table))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))
	return nil
}

func (fc *FeatureContext) userCreatesARecordWith(user string, table *godog.Table) error {
	fc.require.NoError(fc.keep(fc.apiDriver.CreateRecord(fc.userID(user), fc.tableID, recordValues(table))))
	if fc.response.StatusCode != http.StatusCreated {
		return nil
	}

	var record Record
	fc.require.NoError(fc.decodeBody(&record))
	fc.recordID = record.ID
	return nil
}

func (fc *FeatureContext) userListsTheRecords(user string) error {
	fc.require.NoError(fc.keep(fc.apiDriver.ListRecords(fc.userID(user), fc.tableID)))
	if fc.response.StatusCode != http.StatusOK {
		return nil
	}

	var page PaginatedResponse[map[string]any]
	fc.require.NoError(fc.decodeBody(&page))
	fc.records = page.Data
	return nil
}

func (fc *FeatureContext) userGetsTheLastRecord(user string) error {
	return fc.keep(fc.apiDriver.GetRecord(fc.userID(user), fc.tableID, fc.recordID))
}

func (fc *FeatureContext) theListShouldContainRecords(count int) error {
	fc.require.Len(fc.records, count)
	return nil
}

func (fc *FeatureContext) everyListedRecordShouldHave(field, value string) error {
	for _, record := range fc.records {
		values, ok := record["values"].(map[string]any)
		fc.require.True(ok, "record without values")
		fc.require.Equal(value, fmt.Sprint(values[field]))
	}
	return nil
}
