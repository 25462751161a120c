package internal

import (
	"time"

	"scout-server/internal/records/usecases"
)

type DashboardResponse struct {
	Tables        []TableCountResponse   `json:"tables"`
	TotalRecords  int                    `json:"total_records"`
	RecordsToday  int                    `json:"records_today"`
	RecordsWeek   int                    `json:"records_week"`
	Trend         []DayCountResponse     `json:"trend"`
	ActivityByDay []WeekdayCountResponse `json:"activity_by_day"`
	UsersByRole   map[string]int         `json:"users_by_role"`
	RecentRecords []RecentRecordResponse `json:"recent_records"`
}

type TableCountResponse struct {
	TableID     string `json:"table_id"`
	DisplayName string `json:"display_name"`
	Count       int    `json:"count"`
}

type DayCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type WeekdayCountResponse struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type RecentRecordResponse struct {
	ID               string    `json:"id"`
	TableID          string    `json:"table_id"`
	TableDisplayName string    `json:"table_display_name"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToDashboardResponse(dashboard usecases.Dashboard) DashboardResponse {
	response := DashboardResponse{
		Tables:        make([]TableCountResponse, len(dashboard.Tables)),
		TotalRecords:  dashboard.TotalRecords,
		RecordsToday:  dashboard.RecordsToday,
		RecordsWeek:   dashboard.RecordsWeek,
		Trend:         make([]DayCountResponse, len(dashboard.Trend)),
		ActivityByDay: make([]WeekdayCountResponse, len(dashboard.ActivityByDay)),
		UsersByRole:   make(map[string]int, len(dashboard.UsersByRole)),
		RecentRecords: make([]RecentRecordResponse, len(dashboard.RecentRecords)),
	}

	for i, table := range dashboard.Tables {
		response.Tables[i] = TableCountResponse{
			TableID:     table.TableID.String(),
			DisplayName: table.DisplayName,
			Count:       table.Count,
		}
	}
	for i, day := range dashboard.Trend {
		response.Trend[i] = DayCountResponse{Date: day.Date, Count: day.Count}
	}
	for i, day := range dashboard.ActivityByDay {
		response.ActivityByDay[i] = WeekdayCountResponse{Day: day.Day, Count: day.Count}
	}
	for role, count := range dashboard.UsersByRole {
		response.UsersByRole[role.String()] = count
	}
	for i, record := range dashboard.RecentRecords {
		response.RecentRecords[i] = RecentRecordResponse{
			ID:               record.ID.String(),
			TableID:          record.TableID.String(),
			TableDisplayName: record.TableDisplayName,
			CreatedAt:        record.CreatedAt,
		}
	}

	return response
}
