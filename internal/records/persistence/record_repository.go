package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scout-server/internal/infra/sql"
	"scout-server/internal/records/domain"
	"scout-server/internal/records/persistence/internal"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

func NewRecordRepository(orm sql.ORM) (*SimpleRecordRepository, error) {
	if err := migrate(orm); err != nil {
		return nil, err
	}

	return &SimpleRecordRepository{
		orm: orm,
	}, nil
}

var _ usecases.RecordRepository = (*SimpleRecordRepository)(nil)

type SimpleRecordRepository struct {
	orm sql.ORM
}

// CreateRecord inserts the record and its values atomically. A failing value
// leaves no record behind.
func (r *SimpleRecordRepository) CreateRecord(ctx context.Context, record domain.Record, values []domain.FieldValue) error {
	entity := internal.FromRecord(record)

	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Create(&entity).Error(); err != nil {
			return fmt.Errorf("inserting record: %w", err)
		}

		for _, fieldValue := range values {
			if err := upsertValue(tx, record.ID, fieldValue.Field.ID, fieldValue.Value); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *SimpleRecordRepository) UpdateRecord(ctx context.Context, record domain.Record, values []domain.FieldValue) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		result := tx.
			Model(&internal.Record{}).
			Where("id = ? AND table_id = ?", record.ID.String(), record.TableID.String()).
			Update("modified_at", record.ModifiedAt)
		if err := result.Error(); err != nil {
			return fmt.Errorf("touching record: %w", err)
		}
		if result.RowsAffected() == 0 {
			return usecases.ErrRecordNotFound
		}

		for _, fieldValue := range values {
			if err := upsertValue(tx, record.ID, fieldValue.Field.ID, fieldValue.Value); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *SimpleRecordRepository) DeleteRecord(ctx context.Context, tableID, recordID shareddomain.ID) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		result := tx.Delete(&internal.Record{}, "id = ? AND table_id = ?", recordID.String(), tableID.String())
		if err := result.Error(); err != nil {
			return fmt.Errorf("deleting record: %w", err)
		}
		if result.RowsAffected() == 0 {
			return usecases.ErrRecordNotFound
		}

		if err := tx.Delete(&internal.RecordValue{}, "record_id = ?", recordID.String()).Error(); err != nil {
			return fmt.Errorf("deleting values: %w", err)
		}

		return nil
	})
}

func (r *SimpleRecordRepository) GetRecord(ctx context.Context, tableID, recordID shareddomain.ID) (domain.Record, error) {
	var entity internal.Record
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ? AND table_id = ?", recordID.String(), tableID.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Record{}, usecases.ErrRecordNotFound
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

// ListRecords returns the page of records visible through any of the scopes,
// newest first, along with the total number of visible records.
func (r *SimpleRecordRepository) ListRecords(ctx context.Context, scopes []usecases.RecordScope, pagination usecases.Pagination) ([]domain.Record, int, error) {
	query, args := scopeCondition(scopes)
	if query == "" {
		return []domain.Record{}, 0, nil
	}

	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Record{}).
		Where(query, args...).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("counting records: %w", err)
	}

	page := r.orm.
		WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC, id DESC")
	if pagination.Offset > 0 {
		page = page.Offset(pagination.Offset)
	}
	if pagination.Limit > 0 {
		page = page.Limit(pagination.Limit)
	}

	var entities []internal.Record
	if err := page.Find(&entities).Error(); err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	records := make([]domain.Record, len(entities))
	for i, entity := range entities {
		records[i] = entity.ToDomain()
	}

	return records, int(total), nil
}

func (r *SimpleRecordRepository) CountByTable(ctx context.Context) (map[shareddomain.ID]int, error) {
	var tableIDs []string
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Record{}).
		Pluck("table_id", &tableIDs).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	counts := make(map[shareddomain.ID]int)
	for _, id := range tableIDs {
		counts[shareddomain.ID(id)]++
	}

	return counts, nil
}

func (r *SimpleRecordRepository) CreationTimes(ctx context.Context) ([]time.Time, error) {
	var times []time.Time
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Record{}).
		Pluck("created_at", &times).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return times, nil
}

func scopeCondition(scopes []usecases.RecordScope) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	for _, scope := range scopes {
		switch {
		case scope.Visibility.All:
			clauses = append(clauses, "(table_id = ?)")
			args = append(args, scope.TableID.String())
		case !scope.Visibility.IsEmpty():
			ids := scope.Visibility.IDs()
			values := make([]string, len(ids))
			for i, id := range ids {
				values[i] = id.String()
			}
			clauses = append(clauses, "(table_id = ? AND id IN ?)")
			args = append(args, scope.TableID.String(), values)
		}
	}

	return strings.Join(clauses, " OR "), args
}
