package steps

import "net/http"

func (fc *FeatureContext) userMaySeeRecordsWhere(user, field, value string) error {
	err := fc.keep(fc.apiDriver.AddPermission(fc.userID("admin"), fc.tableID, map[string]any{
		"user_id":     fc.userID(user),
		"field_id":    fc.fieldID(field),
		"match_value": value,
	}))
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))
	return nil
}

func (fc *FeatureContext) userMaySeeEveryRecord(user string) error {
	err := fc.keep(fc.apiDriver.AddPermission(fc.userID("admin"), fc.tableID, map[string]any{
		"user_id":    fc.userID(user),
		"all_access": true,
	}))
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode, string(fc.responseBody))
	return nil
}
