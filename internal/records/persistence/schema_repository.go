package persistence

import (
	"context"
	"errors"
	"fmt"

	"scout-server/internal/infra/sql"
	"scout-server/internal/records/domain"
	"scout-server/internal/records/persistence/internal"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

func NewSchemaRepository(orm sql.ORM) (*SimpleSchemaRepository, error) {
	if err := migrate(orm); err != nil {
		return nil, err
	}

	return &SimpleSchemaRepository{
		orm: orm,
	}, nil
}

var _ usecases.SchemaRepository = (*SimpleSchemaRepository)(nil)

type SimpleSchemaRepository struct {
	orm sql.ORM
}

func (r *SimpleSchemaRepository) CreateTable(ctx context.Context, table domain.Table, fields []domain.Field) error {
	tableEntity := internal.FromTable(table)
	fieldEntities := make([]internal.Field, len(fields))
	for i, field := range fields {
		entity, err := internal.FromField(field)
		if err != nil {
			return err
		}
		fieldEntities[i] = entity
	}

	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.Create(&tableEntity).Error()
		if errors.Is(err, sql.ErrDuplicatedKey) {
			return usecases.ErrTableDuplicated
		}
		if err != nil {
			return fmt.Errorf("inserting table: %w", err)
		}

		for i := range fieldEntities {
			if err := tx.Create(&fieldEntities[i]).Error(); err != nil {
				return fmt.Errorf("inserting field %s: %w", fieldEntities[i].Name, err)
			}
		}

		return nil
	})
}

func (r *SimpleSchemaRepository) UpdateTable(ctx context.Context, table domain.Table) error {
	entity := internal.FromTable(table)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrTableDuplicated
	}
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

// DeleteTable removes the table with its fields, records, values and
// permission rules, children first, in one transaction.
func (r *SimpleSchemaRepository) DeleteTable(ctx context.Context, id shareddomain.ID) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var recordIDs []string
		err := tx.
			Model(&internal.Record{}).
			Where("table_id = ?", id.String()).
			Pluck("id", &recordIDs).
			Error()
		if err != nil {
			return fmt.Errorf("listing records: %w", err)
		}

		if len(recordIDs) > 0 {
			if err := tx.Delete(&internal.RecordValue{}, "record_id IN ?", recordIDs).Error(); err != nil {
				return fmt.Errorf("deleting values: %w", err)
			}
		}

		if err := tx.Delete(&internal.Record{}, "table_id = ?", id.String()).Error(); err != nil {
			return fmt.Errorf("deleting records: %w", err)
		}
		if err := tx.Delete(&internal.TablePermission{}, "table_id = ?", id.String()).Error(); err != nil {
			return fmt.Errorf("deleting permissions: %w", err)
		}
		if err := tx.Delete(&internal.Field{}, "table_id = ?", id.String()).Error(); err != nil {
			return fmt.Errorf("deleting fields: %w", err)
		}

		result := tx.Delete(&internal.Table{}, "id = ?", id.String())
		if err := result.Error(); err != nil {
			return fmt.Errorf("deleting table: %w", err)
		}
		if result.RowsAffected() == 0 {
			return usecases.ErrTableNotFound
		}

		return nil
	})
}

func (r *SimpleSchemaRepository) GetTable(ctx context.Context, id shareddomain.ID) (domain.Table, error) {
	return r.firstTable(ctx, "id = ?", id.String())
}

func (r *SimpleSchemaRepository) GetTableByName(ctx context.Context, name string) (domain.Table, error) {
	return r.firstTable(ctx, "name = ?", name)
}

func (r *SimpleSchemaRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	var entities []internal.Table
	err := r.orm.
		WithContext(ctx).
		Order("display_name ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	tables := make([]domain.Table, len(entities))
	for i, entity := range entities {
		tables[i] = entity.ToDomain()
	}

	return tables, nil
}

func (r *SimpleSchemaRepository) CreateField(ctx context.Context, field domain.Field) error {
	entity, err := internal.FromField(field)
	if err != nil {
		return err
	}

	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleSchemaRepository) UpdateField(ctx context.Context, field domain.Field) error {
	entity, err := internal.FromField(field)
	if err != nil {
		return err
	}

	if err := r.orm.WithContext(ctx).Save(&entity).Error(); err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

// DeleteField removes the field, its values and the rules matching on it.
// Sibling values and the records themselves are untouched.
func (r *SimpleSchemaRepository) DeleteField(ctx context.Context, id shareddomain.ID) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Delete(&internal.RecordValue{}, "field_id = ?", id.String()).Error(); err != nil {
			return fmt.Errorf("deleting values: %w", err)
		}
		if err := tx.Delete(&internal.TablePermission{}, "field_id = ?", id.String()).Error(); err != nil {
			return fmt.Errorf("deleting permissions: %w", err)
		}

		result := tx.Delete(&internal.Field{}, "id = ?", id.String())
		if err := result.Error(); err != nil {
			return fmt.Errorf("deleting field: %w", err)
		}
		if result.RowsAffected() == 0 {
			return usecases.ErrFieldNotFound
		}

		return nil
	})
}

func (r *SimpleSchemaRepository) GetField(ctx context.Context, id shareddomain.ID) (domain.Field, error) {
	return r.firstField(ctx, "id = ?", id.String())
}

func (r *SimpleSchemaRepository) GetFieldByName(ctx context.Context, tableID shareddomain.ID, name string) (domain.Field, error) {
	return r.firstField(ctx, "table_id = ? AND name = ?", tableID.String(), name)
}

func (r *SimpleSchemaRepository) ListFields(ctx context.Context, tableID shareddomain.ID) ([]domain.Field, error) {
	var entities []internal.Field
	err := r.orm.
		WithContext(ctx).
		Where("table_id = ?", tableID.String()).
		Order("field_order ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	fields := make([]domain.Field, len(entities))
	for i, entity := range entities {
		field, err := entity.ToDomain()
		if err != nil {
			return nil, err
		}
		fields[i] = field
	}

	return fields, nil
}

func (r *SimpleSchemaRepository) MaxFieldOrder(ctx context.Context, tableID shareddomain.ID) (int, error) {
	var entities []internal.Field
	err := r.orm.
		WithContext(ctx).
		Where("table_id = ?", tableID.String()).
		Order("field_order DESC").
		Limit(1).
		Find(&entities).
		Error()
	if err != nil {
		return 0, fmt.Errorf("database query: %w", err)
	}

	if len(entities) == 0 {
		return 0, nil
	}

	return entities[0].FieldOrder, nil
}

func (r *SimpleSchemaRepository) ReorderFields(ctx context.Context, tableID shareddomain.ID, orders map[shareddomain.ID]int) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for fieldID, order := range orders {
			err := tx.
				Model(&internal.Field{}).
				Where("id = ? AND table_id = ?", fieldID.String(), tableID.String()).
				Update("field_order", order).
				Error()
			if err != nil {
				return fmt.Errorf("reordering field %s: %w", fieldID, err)
			}
		}

		return nil
	})
}

func (r *SimpleSchemaRepository) firstTable(ctx context.Context, query string, args ...any) (domain.Table, error) {
	var entity internal.Table
	err := r.orm.
		WithContext(ctx).
		First(&entity, append([]any{query}, args...)...).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Table{}, usecases.ErrTableNotFound
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleSchemaRepository) firstField(ctx context.Context, query string, args ...any) (domain.Field, error) {
	var entity internal.Field
	err := r.orm.
		WithContext(ctx).
		First(&entity, append([]any{query}, args...)...).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Field{}, usecases.ErrFieldNotFound
	}
	if err != nil {
		return domain.Field{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain()
}
