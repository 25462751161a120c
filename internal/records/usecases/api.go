package usecases

import (
	"context"
	"time"

	"scout-server/internal/records/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/records/usecases/api_mock.go -package=usecases

type SchemaService interface {
	CreateTable(ctx context.Context, input TableInput) (domain.Table, error)
	GetTable(ctx context.Context, id shareddomain.ID) (domain.Table, error)
	ListTables(ctx context.Context) ([]domain.Table, error)
	UpdateTable(ctx context.Context, id shareddomain.ID, input TableInput) (domain.Table, error)
	DeleteTable(ctx context.Context, id shareddomain.ID) error
	CreateField(ctx context.Context, tableID shareddomain.ID, input FieldInput) (domain.Field, error)
	UpdateField(ctx context.Context, tableID, fieldID shareddomain.ID, input FieldInput) (domain.Field, error)
	DeleteField(ctx context.Context, tableID, fieldID shareddomain.ID) error
	ListFields(ctx context.Context, tableID shareddomain.ID) ([]domain.Field, error)
	ReorderFields(ctx context.Context, tableID shareddomain.ID, orders map[shareddomain.ID]int) error
}

type RecordService interface {
	CreateRecord(ctx context.Context, tableID, createdBy shareddomain.ID, values domain.RawValues) (domain.RecordView, error)
	UpdateRecord(ctx context.Context, tableID, recordID shareddomain.ID, values domain.RawValues) (domain.RecordView, error)
	DeleteRecord(ctx context.Context, tableID, recordID shareddomain.ID) error
	GetRecord(ctx context.Context, userID, tableID, recordID shareddomain.ID) (domain.RecordView, error)
	ListRecords(ctx context.Context, userID, tableID shareddomain.ID, pagination Pagination) ([]domain.RecordView, int, error)
	ToViews(ctx context.Context, records []domain.Record) ([]domain.RecordView, error)
}

type PermissionService interface {
	VisibleRecordIDs(ctx context.Context, userID, tableID shareddomain.ID) (domain.Visibility, error)
	ListRules(ctx context.Context, tableID shareddomain.ID) ([]domain.PermissionRule, error)
	AddRule(ctx context.Context, tableID shareddomain.ID, input RuleInput) (domain.PermissionRule, error)
	ReplaceRules(ctx context.Context, tableID shareddomain.ID, input RuleInput) (domain.PermissionRule, error)
	GrantAllAccess(ctx context.Context, tableID, userID shareddomain.ID) (domain.PermissionRule, error)
	BulkGrant(ctx context.Context, tableID shareddomain.ID, userIDs []shareddomain.ID) ([]domain.PermissionRule, error)
	DeleteRule(ctx context.Context, tableID, ruleID shareddomain.ID) error
}

type DashboardService interface {
	Summary(ctx context.Context, userID shareddomain.ID) (Dashboard, error)
}

type TableInput struct {
	Name        string
	DisplayName string
	Description string
}

// FieldInput carries dropdown options as raw text, one option per line.
type FieldInput struct {
	Name        string
	DisplayName string
	Type        domain.FieldType
	Required    bool
	Unique      bool
	Options     string
}

type RuleInput struct {
	UserID     shareddomain.ID
	AllAccess  bool
	FieldID    shareddomain.ID
	MatchValue string
}

type Dashboard struct {
	Tables        []TableCount
	TotalRecords  int
	RecordsToday  int
	RecordsWeek   int
	Trend         []DayCount
	ActivityByDay []WeekdayCount
	UsersByRole   map[shareddomain.Role]int
	RecentRecords []RecentRecord
}

type TableCount struct {
	TableID     shareddomain.ID
	DisplayName string
	Count       int
}

type DayCount struct {
	Date  string
	Count int
}

type WeekdayCount struct {
	Day   string
	Count int
}

type RecentRecord struct {
	ID               shareddomain.ID
	TableID          shareddomain.ID
	TableDisplayName string
	CreatedAt        time.Time
}
