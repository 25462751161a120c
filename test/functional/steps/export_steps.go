package steps

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"
)

func (fc *FeatureContext) userExportsTheTable(user string) error {
	return fc.keep(fc.apiDriver.Export(fc.userID(user), fc.tableID, map[string]any{}))
}

func (fc *FeatureContext) userExportsTheFieldsFiltering(user, fields, filterField, filterValue string) error {
	var fieldIDs []string
	for _, name := range strings.Split(fields, ",") {
		fieldIDs = append(fieldIDs, fc.fieldID(strings.TrimSpace(name)))
	}

	return fc.keep(fc.apiDriver.Export(fc.userID(user), fc.tableID, map[string]any{
		"field_ids": fieldIDs,
		"filters":   map[string]string{fc.fieldID(filterField): filterValue},
	}))
}

func (fc *FeatureContext) spreadsheetRows() [][]string {
	file, err := excelize.OpenReader(bytes.NewReader(fc.responseBody))
	fc.require.NoError(err)
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	fc.require.NoError(err)
	fc.require.NotEmpty(rows, "spreadsheet without header")
	return rows
}

func (fc *FeatureContext) theSpreadsheetShouldHaveTheHeader(header string) error {
	var expected []string
	for _, column := range strings.Split(header, ",") {
		expected = append(expected, strings.TrimSpace(column))
	}

	fc.require.Equal(expected, fc.spreadsheetRows()[0])
	return nil
}

func (fc *FeatureContext) theSpreadsheetShouldHaveDataRows(count int) error {
	fc.require.Len(fc.spreadsheetRows()[1:], count)
	return nil
}

func (fc *FeatureContext) userPrintsTheLastRecord(user string) error {
	return fc.keep(fc.apiDriver.PrintRecord(fc.userID(user), fc.tableID, fc.recordID))
}

func (fc *FeatureContext) userSetsTheGenericText(user, name, content string) error {
	return fc.keep(fc.apiDriver.UpdateGenericText(fc.userID(user), name, content))
}

func (fc *FeatureContext) userPrintsTheGenericText(user, name string) error {
	return fc.keep(fc.apiDriver.PrintGenericText(fc.userID(user), name))
}
