package usecases

import (
	"context"
	"fmt"
	"time"

	"scout-server/internal/records/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/records/usecases/repository_port_mock.go -package=usecases -mock_names=SchemaRepository=MockSchemaRepository,ValueStore=MockValueStore,RecordRepository=MockRecordRepository,PermissionRepository=MockPermissionRepository

var (
	ErrTableNotFound      = fmt.Errorf("table %w", shareddomain.ErrNotFound)
	ErrFieldNotFound      = fmt.Errorf("field %w", shareddomain.ErrNotFound)
	ErrRecordNotFound     = fmt.Errorf("record %w", shareddomain.ErrNotFound)
	ErrPermissionNotFound = fmt.Errorf("permission %w", shareddomain.ErrNotFound)
	ErrTableDuplicated    = fmt.Errorf("a table with this name already exists: %w", shareddomain.ErrConflict)
	ErrFieldDuplicated    = fmt.Errorf("a field with this name already exists in the table: %w", shareddomain.ErrConflict)
)

type Pagination struct {
	Limit  int
	Offset int
}

// RecordScope selects the records of one table a caller may read.
type RecordScope struct {
	TableID    shareddomain.ID
	Visibility domain.Visibility
}

type SchemaRepository interface {
	CreateTable(ctx context.Context, table domain.Table, fields []domain.Field) error
	UpdateTable(ctx context.Context, table domain.Table) error
	DeleteTable(ctx context.Context, id shareddomain.ID) error
	GetTable(ctx context.Context, id shareddomain.ID) (domain.Table, error)
	GetTableByName(ctx context.Context, name string) (domain.Table, error)
	ListTables(ctx context.Context) ([]domain.Table, error)

	CreateField(ctx context.Context, field domain.Field) error
	UpdateField(ctx context.Context, field domain.Field) error
	DeleteField(ctx context.Context, id shareddomain.ID) error
	GetField(ctx context.Context, id shareddomain.ID) (domain.Field, error)
	GetFieldByName(ctx context.Context, tableID shareddomain.ID, name string) (domain.Field, error)
	ListFields(ctx context.Context, tableID shareddomain.ID) ([]domain.Field, error)
	MaxFieldOrder(ctx context.Context, tableID shareddomain.ID) (int, error)
	ReorderFields(ctx context.Context, tableID shareddomain.ID, orders map[shareddomain.ID]int) error
}

// ValueStore keeps one typed value per (record, field).
type ValueStore interface {
	SetValue(ctx context.Context, recordID shareddomain.ID, field domain.Field, raw *string) error
	GetValue(ctx context.Context, recordID shareddomain.ID, field domain.Field) (any, error)
	ValuesByRecord(ctx context.Context, recordIDs []shareddomain.ID) (map[shareddomain.ID]map[shareddomain.ID]domain.Value, error)
	RecordIDsWithText(ctx context.Context, tableID, fieldID shareddomain.ID, text string) ([]shareddomain.ID, error)
	TextExists(ctx context.Context, tableID, fieldID shareddomain.ID, text string) (bool, error)
}

type RecordRepository interface {
	CreateRecord(ctx context.Context, record domain.Record, values []domain.FieldValue) error
	UpdateRecord(ctx context.Context, record domain.Record, values []domain.FieldValue) error
	DeleteRecord(ctx context.Context, tableID, recordID shareddomain.ID) error
	GetRecord(ctx context.Context, tableID, recordID shareddomain.ID) (domain.Record, error)
	ListRecords(ctx context.Context, scopes []RecordScope, pagination Pagination) ([]domain.Record, int, error)
	CountByTable(ctx context.Context) (map[shareddomain.ID]int, error)
	CreationTimes(ctx context.Context) ([]time.Time, error)
}

type PermissionRepository interface {
	ListRules(ctx context.Context, tableID shareddomain.ID) ([]domain.PermissionRule, error)
	RulesFor(ctx context.Context, userID, tableID shareddomain.ID) ([]domain.PermissionRule, error)
	AddRule(ctx context.Context, rule domain.PermissionRule) error
	ReplaceRules(ctx context.Context, rules []domain.PermissionRule) error
	DeleteRule(ctx context.Context, tableID, ruleID shareddomain.ID) error
}
