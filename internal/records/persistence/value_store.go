package persistence

import (
	"context"
	"errors"
	"fmt"

	"scout-server/internal/infra/sql"
	"scout-server/internal/infra/utils"
	"scout-server/internal/records/domain"
	"scout-server/internal/records/persistence/internal"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

func NewValueStore(orm sql.ORM) (*SimpleValueStore, error) {
	if err := migrate(orm); err != nil {
		return nil, err
	}

	return &SimpleValueStore{
		orm: orm,
	}, nil
}

var _ usecases.ValueStore = (*SimpleValueStore)(nil)

type SimpleValueStore struct {
	orm sql.ORM
}

func (s *SimpleValueStore) SetValue(ctx context.Context, recordID shareddomain.ID, field domain.Field, raw *string) error {
	value, err := field.Coerce(raw)
	if err != nil {
		return err
	}

	return upsertValue(s.orm.WithContext(ctx), recordID, field.ID, value)
}

func (s *SimpleValueStore) GetValue(ctx context.Context, recordID shareddomain.ID, field domain.Field) (any, error) {
	var entity internal.RecordValue
	err := s.orm.
		WithContext(ctx).
		First(&entity, "record_id = ? AND field_id = ?", recordID.String(), field.ID.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return field.Interpret(entity.ToDomain()), nil
}

func (s *SimpleValueStore) ValuesByRecord(ctx context.Context, recordIDs []shareddomain.ID) (map[shareddomain.ID]map[shareddomain.ID]domain.Value, error) {
	values := make(map[shareddomain.ID]map[shareddomain.ID]domain.Value, len(recordIDs))
	if len(recordIDs) == 0 {
		return values, nil
	}

	ids := make([]string, len(recordIDs))
	for i, id := range recordIDs {
		ids[i] = id.String()
	}

	var entities []internal.RecordValue
	err := s.orm.
		WithContext(ctx).
		Where("record_id IN ?", ids).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	for _, entity := range entities {
		recordID := shareddomain.ID(entity.RecordID)
		if values[recordID] == nil {
			values[recordID] = make(map[shareddomain.ID]domain.Value)
		}
		values[recordID][shareddomain.ID(entity.FieldID)] = entity.ToDomain()
	}

	return values, nil
}

// RecordIDsWithText returns the records of the table whose text slot for the
// field equals text exactly.
func (s *SimpleValueStore) RecordIDsWithText(ctx context.Context, tableID, fieldID shareddomain.ID, text string) ([]shareddomain.ID, error) {
	var ids []string
	err := s.textMatches(ctx, tableID, fieldID, text).
		Pluck("record_values.record_id", &ids).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	recordIDs := make([]shareddomain.ID, len(ids))
	for i, id := range ids {
		recordIDs[i] = shareddomain.ID(id)
	}

	return recordIDs, nil
}

func (s *SimpleValueStore) TextExists(ctx context.Context, tableID, fieldID shareddomain.ID, text string) (bool, error) {
	var count int64
	err := s.textMatches(ctx, tableID, fieldID, text).
		Count(&count).
		Error()
	if err != nil {
		return false, fmt.Errorf("database query: %w", err)
	}

	return count > 0, nil
}

func (s *SimpleValueStore) textMatches(ctx context.Context, tableID, fieldID shareddomain.ID, text string) sql.ORM {
	return s.orm.
		WithContext(ctx).
		Model(&internal.RecordValue{}).
		Joins("JOIN records ON records.id = record_values.record_id").
		Where(
			"records.table_id = ? AND record_values.field_id = ? AND record_values.text_value = ?",
			tableID.String(), fieldID.String(), text,
		)
}

// upsertValue writes value into the single row of (record, field), creating
// it when absent. orm may be a transaction.
func upsertValue(orm sql.ORM, recordID, fieldID shareddomain.ID, value domain.Value) error {
	var entity internal.RecordValue
	err := orm.
		First(&entity, "record_id = ? AND field_id = ?", recordID.String(), fieldID.String()).
		Error()

	switch {
	case errors.Is(err, sql.ErrRecordNotFound):
		entity = internal.RecordValue{
			ID:       utils.GenerateUUID(),
			RecordID: recordID.String(),
			FieldID:  fieldID.String(),
		}
		entity.Assign(value)
		if err := orm.Create(&entity).Error(); err != nil {
			return fmt.Errorf("inserting value of field %s: %w", fieldID, err)
		}
	case err != nil:
		return fmt.Errorf("loading value of field %s: %w", fieldID, err)
	default:
		entity.Assign(value)
		if err := orm.Save(&entity).Error(); err != nil {
			return fmt.Errorf("updating value of field %s: %w", fieldID, err)
		}
	}

	return nil
}
