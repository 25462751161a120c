package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"scout-server/internal/records/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
	sharedusecases "scout-server/internal/shared_kernel/usecases"
)

const (
	_trendDays     = 14
	_recentRecords = 5
)

var _weekdays = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

func NewDashboardService(
	schema SchemaRepository,
	records RecordRepository,
	permissions PermissionService,
	users sharedusecases.UserService,
	location *time.Location,
) *SimpleDashboardService {
	if location == nil {
		location = time.UTC
	}

	return &SimpleDashboardService{
		schema:      schema,
		records:     records,
		permissions: permissions,
		users:       users,
		location:    location,
		now:         time.Now,
	}
}

var _ DashboardService = &SimpleDashboardService{}

type SimpleDashboardService struct {
	schema      SchemaRepository
	records     RecordRepository
	permissions PermissionService
	users       sharedusecases.UserService
	location    *time.Location
	now         func() time.Time
}

// WithClock replaces the time source used for day boundaries.
func (s *SimpleDashboardService) WithClock(now func() time.Time) *SimpleDashboardService {
	s.now = now
	return s
}

func (s *SimpleDashboardService) Summary(ctx context.Context, userID shareddomain.ID) (Dashboard, error) {
	tables, err := s.schema.ListTables(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing tables: %w", err)
	}

	counts, err := s.records.CountByTable(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("counting records: %w", err)
	}

	dashboard := Dashboard{
		Tables: make([]TableCount, len(tables)),
	}
	for i, table := range tables {
		dashboard.Tables[i] = TableCount{
			TableID:     table.ID,
			DisplayName: table.DisplayName,
			Count:       counts[table.ID],
		}
		dashboard.TotalRecords += counts[table.ID]
	}

	created, err := s.records.CreationTimes(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("reading creation times: %w", err)
	}
	s.fillActivity(&dashboard, created)

	dashboard.UsersByRole, err = s.users.CountByRole(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("counting users: %w", err)
	}

	dashboard.RecentRecords, err = s.recentRecords(ctx, userID, tables)
	if err != nil {
		return Dashboard{}, err
	}

	return dashboard, nil
}

func (s *SimpleDashboardService) fillActivity(dashboard *Dashboard, created []time.Time) {
	today := startOfDay(s.now().In(s.location))
	weekStart := today.AddDate(0, 0, -weekdayIndex(today))
	trendStart := today.AddDate(0, 0, -(_trendDays - 1))

	trend := make([]int, _trendDays)
	activity := make([]int, len(_weekdays))
	for _, createdAt := range created {
		day := startOfDay(createdAt.In(s.location))
		activity[weekdayIndex(day)]++

		if day.Equal(today) {
			dashboard.RecordsToday++
		}
		if !day.Before(weekStart) {
			dashboard.RecordsWeek++
		}
		if !day.Before(trendStart) && !day.After(today) {
			trend[daysBetween(trendStart, day)]++
		}
	}

	dashboard.Trend = make([]DayCount, _trendDays)
	for i := range trend {
		dashboard.Trend[i] = DayCount{
			Date:  trendStart.AddDate(0, 0, i).Format(domain.DateLayout),
			Count: trend[i],
		}
	}

	dashboard.ActivityByDay = make([]WeekdayCount, len(_weekdays))
	for i, name := range _weekdays {
		dashboard.ActivityByDay[i] = WeekdayCount{Day: name, Count: activity[i]}
	}
}

func (s *SimpleDashboardService) recentRecords(ctx context.Context, userID shareddomain.ID, tables []domain.Table) ([]RecentRecord, error) {
	names := make(map[shareddomain.ID]string, len(tables))
	scopes := make([]RecordScope, 0, len(tables))
	for _, table := range tables {
		names[table.ID] = table.DisplayName

		visibility, err := s.permissions.VisibleRecordIDs(ctx, userID, table.ID)
		if err != nil {
			return nil, fmt.Errorf("evaluating visibility: %w", err)
		}
		if visibility.IsEmpty() {
			continue
		}
		scopes = append(scopes, RecordScope{TableID: table.ID, Visibility: visibility})
	}

	if len(scopes) == 0 {
		return []RecentRecord{}, nil
	}

	records, _, err := s.records.ListRecords(ctx, scopes, Pagination{Limit: _recentRecords})
	if err != nil {
		slog.Error("listing recent records", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing recent records: %w", err)
	}

	recent := make([]RecentRecord, len(records))
	for i, record := range records {
		recent[i] = RecentRecord{
			ID:               record.ID,
			TableID:          record.TableID,
			TableDisplayName: names[record.TableID],
			CreatedAt:        record.CreatedAt,
		}
	}

	return recent, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// weekdayIndex counts from Monday.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	return int(time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).Sub(time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)).Hours() / 24)
}
