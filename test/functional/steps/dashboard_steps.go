package steps

func (fc *FeatureContext) userOpensTheDashboard(user string) error {
	return fc.keep(fc.apiDriver.GetDashboard(fc.userID(user)))
}

type Dashboard struct {
	TotalRecords  int              `json:"total_records"`
	RecentRecords []map[string]any `json:"recent_records"`
}

func (fc *FeatureContext) dashboard() Dashboard {
	var dashboard Dashboard
	fc.require.NoError(fc.decodeBody(&dashboard))
	return dashboard
}

func (fc *FeatureContext) theDashboardShouldCountRecordsInTotal(count int) error {
	fc.require.Equal(count, fc.dashboard().TotalRecords)
	return nil
}

func (fc *FeatureContext) theDashboardShouldListRecentRecords(count int) error {
	fc.require.Len(fc.dashboard().RecentRecords, count)
	return nil
}
