package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"scout-server/internal/infra/utils"
	"scout-server/internal/records/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
	sharedusecases "scout-server/internal/shared_kernel/usecases"
)

var ErrRecordNotVisible = fmt.Errorf("record is not visible to the caller: %w", shareddomain.ErrForbidden)

func NewRecordService(
	schema SchemaRepository,
	records RecordRepository,
	values ValueStore,
	permissions PermissionService,
	users sharedusecases.UserService,
) *SimpleRecordService {
	return &SimpleRecordService{
		schema:      schema,
		records:     records,
		values:      values,
		permissions: permissions,
		users:       users,
	}
}

var _ RecordService = &SimpleRecordService{}

type SimpleRecordService struct {
	schema      SchemaRepository
	records     RecordRepository
	values      ValueStore
	permissions PermissionService
	users       sharedusecases.UserService
}

// CreateRecord validates every field of the table in order before writing
// anything: uniqueness, then requiredness, then coercion. The record and all
// of its values are then inserted in one transaction.
func (s *SimpleRecordService) CreateRecord(ctx context.Context, tableID, createdBy shareddomain.ID, values domain.RawValues) (domain.RecordView, error) {
	fields, err := s.tableFields(ctx, tableID)
	if err != nil {
		return domain.RecordView{}, err
	}

	prepared := make([]domain.FieldValue, 0, len(fields))
	for _, field := range fields {
		raw := values[field.Name]

		if field.Unique && raw != nil && *raw != "" {
			// check and insert are not atomic; concurrent writers may both pass
			taken, err := s.values.TextExists(ctx, tableID, field.ID, *raw)
			if err != nil {
				return domain.RecordView{}, fmt.Errorf("checking uniqueness of %s: %w", field.Name, err)
			}
			if taken {
				return domain.RecordView{}, &shareddomain.UniqueConstraintError{Field: field.DisplayName, Value: *raw}
			}
		}

		value, err := s.prepare(field, raw)
		if err != nil {
			return domain.RecordView{}, err
		}
		prepared = append(prepared, domain.FieldValue{Field: field, Value: value})
	}

	record := domain.NewRecord(tableID, createdBy)
	if err := s.records.CreateRecord(ctx, record, prepared); err != nil {
		slog.Error("creating record", slog.String("error", err.Error()))
		return domain.RecordView{}, fmt.Errorf("creating record: %w", err)
	}

	slog.Info("record created",
		slog.String("table_id", tableID.String()),
		slog.String("record_id", record.ID.String()))

	return s.toView(ctx, record, fields, prepared)
}

// UpdateRecord overwrites every field of the record. Uniqueness is only
// enforced when a record is created.
func (s *SimpleRecordService) UpdateRecord(ctx context.Context, tableID, recordID shareddomain.ID, values domain.RawValues) (domain.RecordView, error) {
	record, err := s.getRecord(ctx, tableID, recordID)
	if err != nil {
		return domain.RecordView{}, err
	}

	fields, err := s.tableFields(ctx, tableID)
	if err != nil {
		return domain.RecordView{}, err
	}

	prepared := make([]domain.FieldValue, 0, len(fields))
	for _, field := range fields {
		value, err := s.prepare(field, values[field.Name])
		if err != nil {
			return domain.RecordView{}, err
		}
		prepared = append(prepared, domain.FieldValue{Field: field, Value: value})
	}

	record.ModifiedAt = utils.Now()
	if err := s.records.UpdateRecord(ctx, record, prepared); err != nil {
		slog.Error("updating record", slog.String("error", err.Error()))
		return domain.RecordView{}, fmt.Errorf("updating record: %w", err)
	}

	return s.toView(ctx, record, fields, prepared)
}

func (s *SimpleRecordService) DeleteRecord(ctx context.Context, tableID, recordID shareddomain.ID) error {
	if _, err := s.getRecord(ctx, tableID, recordID); err != nil {
		return err
	}

	if err := s.records.DeleteRecord(ctx, tableID, recordID); err != nil {
		slog.Error("deleting record", slog.String("error", err.Error()))
		return fmt.Errorf("deleting record: %w", err)
	}

	slog.Info("record deleted", slog.String("record_id", recordID.String()))
	return nil
}

func (s *SimpleRecordService) GetRecord(ctx context.Context, userID, tableID, recordID shareddomain.ID) (domain.RecordView, error) {
	record, err := s.getRecord(ctx, tableID, recordID)
	if err != nil {
		return domain.RecordView{}, err
	}

	visibility, err := s.permissions.VisibleRecordIDs(ctx, userID, tableID)
	if err != nil {
		return domain.RecordView{}, err
	}
	if !visibility.Contains(record.ID) {
		return domain.RecordView{}, ErrRecordNotVisible
	}

	views, err := s.ToViews(ctx, []domain.Record{record})
	if err != nil {
		return domain.RecordView{}, err
	}

	return views[0], nil
}

// ListRecords returns the caller's visible records of the table, newest first.
func (s *SimpleRecordService) ListRecords(ctx context.Context, userID, tableID shareddomain.ID, pagination Pagination) ([]domain.RecordView, int, error) {
	if _, err := s.schema.GetTable(ctx, tableID); err != nil {
		return nil, 0, err
	}

	visibility, err := s.permissions.VisibleRecordIDs(ctx, userID, tableID)
	if err != nil {
		return nil, 0, err
	}
	if visibility.IsEmpty() {
		return []domain.RecordView{}, 0, nil
	}

	records, total, err := s.records.ListRecords(ctx, []RecordScope{{TableID: tableID, Visibility: visibility}}, pagination)
	if err != nil {
		slog.Error("listing records", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing records: %w", err)
	}

	views, err := s.ToViews(ctx, records)
	if err != nil {
		return nil, 0, err
	}

	return views, total, nil
}

// ToViews projects records into flat views, reading each value through the
// current type of its field.
func (s *SimpleRecordService) ToViews(ctx context.Context, records []domain.Record) ([]domain.RecordView, error) {
	if len(records) == 0 {
		return []domain.RecordView{}, nil
	}

	ids := make([]shareddomain.ID, len(records))
	for i, record := range records {
		ids[i] = record.ID
	}

	values, err := s.values.ValuesByRecord(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("reading record values: %w", err)
	}

	fieldsByTable := map[shareddomain.ID][]domain.Field{}
	creators := map[shareddomain.ID]string{}
	views := make([]domain.RecordView, len(records))
	for i, record := range records {
		fields, ok := fieldsByTable[record.TableID]
		if !ok {
			fields, err = s.schema.ListFields(ctx, record.TableID)
			if err != nil {
				return nil, fmt.Errorf("listing fields: %w", err)
			}
			fieldsByTable[record.TableID] = fields
		}

		views[i] = domain.NewRecordView(record, fields, values[record.ID], s.creatorName(ctx, creators, record.CreatedBy))
	}

	return views, nil
}

func (s *SimpleRecordService) toView(ctx context.Context, record domain.Record, fields []domain.Field, prepared []domain.FieldValue) (domain.RecordView, error) {
	values := make(map[shareddomain.ID]domain.Value, len(prepared))
	for _, fieldValue := range prepared {
		values[fieldValue.Field.ID] = fieldValue.Value
	}

	return domain.NewRecordView(record, fields, values, s.creatorName(ctx, map[shareddomain.ID]string{}, record.CreatedBy)), nil
}

func (s *SimpleRecordService) creatorName(ctx context.Context, cache map[shareddomain.ID]string, userID shareddomain.ID) string {
	if name, ok := cache[userID]; ok {
		return name
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		slog.Warn("record creator not found", slog.String("user_id", userID.String()))
	}
	cache[userID] = user.Username
	return user.Username
}

func (s *SimpleRecordService) prepare(field domain.Field, raw *string) (domain.Value, error) {
	if field.Required && domain.IsBlank(raw) {
		return domain.Value{}, &shareddomain.RequiredFieldError{Field: field.DisplayName}
	}

	return field.Coerce(raw)
}

func (s *SimpleRecordService) tableFields(ctx context.Context, tableID shareddomain.ID) ([]domain.Field, error) {
	if _, err := s.schema.GetTable(ctx, tableID); err != nil {
		return nil, err
	}

	fields, err := s.schema.ListFields(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	return fields, nil
}

func (s *SimpleRecordService) getRecord(ctx context.Context, tableID, recordID shareddomain.ID) (domain.Record, error) {
	record, err := s.records.GetRecord(ctx, tableID, recordID)
	if errors.Is(err, ErrRecordNotFound) {
		return domain.Record{}, ErrRecordNotFound
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("getting record: %w", err)
	}

	return record, nil
}
