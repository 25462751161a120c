package steps

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

type Table struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type Field struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FieldType string `json:"field_type"`
}

func (fc *FeatureContext) aTableExists(name string) error {
	fc.require.NoError(fc.userCreatesATable("admin", name, name))
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))
	return nil
}

func (fc *FeatureContext) userCreatesATable(user, name, displayName string) error {
	fc.require.NoError(fc.keep(fc.apiDriver.CreateTable(fc.userID(user), name, displayName)))
	if fc.response.StatusCode != http.StatusCreated {
		return nil
	}

	var table Table
	fc.require.NoError(fc.decodeBody(&table))
	fc.tableID = table.ID
	return nil
}

// theTableHasTheFields expects the columns name, type, required, unique and
// options, with options separated by semicolons.
func (fc *FeatureContext) theTableHasTheFields(fields *godog.Table) error {
	fc.require.NotEmpty(fc.tableID, "no table was created")

	header := fields.Rows[0].Cells
	for _, row := range fields.Rows[1:] {
		columns := map[string]string{}
		for i, cell := range row.Cells {
			columns[header[i].Value] = cell.Value
		}

		required, _ := strconv.ParseBool(columns["required"])
		unique, _ := strconv.ParseBool(columns["unique"])
		err := fc.keep(fc.apiDriver.CreateField(fc.userID("admin"), fc.tableID, map[string]any{
			"name":       columns["name"],
			"field_type": columns["type"],
			"required":   required,
			"unique":     unique,
			"options":    strings.ReplaceAll(columns["options"], ";", "\n"),
		}))
		fc.require.NoError(err)
		fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))

		var field Field
		fc.require.NoError(fc.decodeBody(&field))
		fc.fieldIDs[field.Name] = field.ID
	}

	return nil
}

func (fc *FeatureContext) theTablesSeenByShouldInclude(user, name string) error {
	fc.require.NoError(fc.keep(fc.apiDriver.ListTables(fc.userID(user))))
	fc.require.Equal(http.StatusOK, fc.response.StatusCode)

	var data struct {
		Tables []Table `json:"tables"`
	}
	fc.require.NoError(fc.decodeBody(&data))

	for _, table := range data.Tables {
		if table.Name == name {
			return nil
		}
	}
	fc.require.Failf("table not listed", "%q is not among %d tables", name, len(data.Tables))
	return nil
}
