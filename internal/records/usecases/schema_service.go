package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"scout-server/internal/records/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

func NewSchemaService(repository SchemaRepository) *SimpleSchemaService {
	return &SimpleSchemaService{
		repository: repository,
	}
}

var _ SchemaService = &SimpleSchemaService{}

type SimpleSchemaService struct {
	repository SchemaRepository
}

func (s *SimpleSchemaService) CreateTable(ctx context.Context, input TableInput) (domain.Table, error) {
	table, err := domain.NewTableBuilder().
		WithName(input.Name).
		WithDisplayName(input.DisplayName).
		WithDescription(input.Description).
		Build()
	if err != nil {
		return domain.Table{}, err
	}

	if err := s.ensureTableNameFree(ctx, table.Name, ""); err != nil {
		return domain.Table{}, err
	}

	if err := s.repository.CreateTable(ctx, table, nil); err != nil {
		slog.Error("creating table", slog.String("error", err.Error()))
		return domain.Table{}, fmt.Errorf("creating table: %w", err)
	}

	slog.Info("table created", slog.String("table_id", table.ID.String()), slog.String("name", table.Name))
	return table, nil
}

func (s *SimpleSchemaService) GetTable(ctx context.Context, id shareddomain.ID) (domain.Table, error) {
	table, err := s.repository.GetTable(ctx, id)
	if errors.Is(err, ErrTableNotFound) {
		return domain.Table{}, ErrTableNotFound
	}
	if err != nil {
		slog.Error("getting table", slog.String("error", err.Error()))
		return domain.Table{}, fmt.Errorf("getting table: %w", err)
	}

	return table, nil
}

func (s *SimpleSchemaService) ListTables(ctx context.Context) ([]domain.Table, error) {
	tables, err := s.repository.ListTables(ctx)
	if err != nil {
		slog.Error("listing tables", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	return tables, nil
}

func (s *SimpleSchemaService) UpdateTable(ctx context.Context, id shareddomain.ID, input TableInput) (domain.Table, error) {
	table, err := s.GetTable(ctx, id)
	if err != nil {
		return domain.Table{}, err
	}

	if err := table.Update(input.Name, input.DisplayName, input.Description); err != nil {
		return domain.Table{}, err
	}

	if err := s.ensureTableNameFree(ctx, table.Name, table.ID); err != nil {
		return domain.Table{}, err
	}

	if err := s.repository.UpdateTable(ctx, table); err != nil {
		slog.Error("updating table", slog.String("error", err.Error()))
		return domain.Table{}, fmt.Errorf("updating table: %w", err)
	}

	return table, nil
}

func (s *SimpleSchemaService) DeleteTable(ctx context.Context, id shareddomain.ID) error {
	if _, err := s.GetTable(ctx, id); err != nil {
		return err
	}

	if err := s.repository.DeleteTable(ctx, id); err != nil {
		slog.Error("deleting table", slog.String("error", err.Error()))
		return fmt.Errorf("deleting table: %w", err)
	}

	slog.Info("table deleted", slog.String("table_id", id.String()))
	return nil
}

func (s *SimpleSchemaService) CreateField(ctx context.Context, tableID shareddomain.ID, input FieldInput) (domain.Field, error) {
	if _, err := s.GetTable(ctx, tableID); err != nil {
		return domain.Field{}, err
	}

	maxOrder, err := s.repository.MaxFieldOrder(ctx, tableID)
	if err != nil {
		return domain.Field{}, fmt.Errorf("reading field order: %w", err)
	}

	field, err := domain.NewFieldBuilder().
		WithTableID(tableID).
		WithName(input.Name).
		WithDisplayName(input.DisplayName).
		WithType(input.Type).
		WithRequired(input.Required).
		WithUnique(input.Unique).
		WithOptions(domain.ParseOptions(input.Options)).
		WithOrder(maxOrder + 1).
		Build()
	if err != nil {
		return domain.Field{}, err
	}

	if err := s.ensureFieldNameFree(ctx, tableID, field.Name, ""); err != nil {
		return domain.Field{}, err
	}

	if err := s.repository.CreateField(ctx, field); err != nil {
		slog.Error("creating field", slog.String("error", err.Error()))
		return domain.Field{}, fmt.Errorf("creating field: %w", err)
	}

	slog.Info("field created",
		slog.String("table_id", tableID.String()),
		slog.String("field_id", field.ID.String()),
		slog.Int("order", field.Order))

	return field, nil
}

func (s *SimpleSchemaService) UpdateField(ctx context.Context, tableID, fieldID shareddomain.ID, input FieldInput) (domain.Field, error) {
	current, err := s.fieldOf(ctx, tableID, fieldID)
	if err != nil {
		return domain.Field{}, err
	}

	fieldType := input.Type
	if fieldType == "" {
		fieldType = current.Type
	}

	// A type change keeps existing values in their old slot; they read back empty.
	field, err := domain.NewFieldBuilder().
		WithID(current.ID).
		WithTableID(tableID).
		WithName(input.Name).
		WithDisplayName(input.DisplayName).
		WithType(fieldType).
		WithRequired(input.Required).
		WithUnique(input.Unique).
		WithOptions(domain.ParseOptions(input.Options)).
		WithOrder(current.Order).
		Build()
	if err != nil {
		return domain.Field{}, err
	}

	if err := s.ensureFieldNameFree(ctx, tableID, field.Name, field.ID); err != nil {
		return domain.Field{}, err
	}

	if current.Type != field.Type {
		slog.Warn("field type changed, values stored under the old type become unreadable",
			slog.String("field_id", field.ID.String()),
			slog.String("from", current.Type.String()),
			slog.String("to", field.Type.String()))
	}

	if err := s.repository.UpdateField(ctx, field); err != nil {
		slog.Error("updating field", slog.String("error", err.Error()))
		return domain.Field{}, fmt.Errorf("updating field: %w", err)
	}

	return field, nil
}

func (s *SimpleSchemaService) DeleteField(ctx context.Context, tableID, fieldID shareddomain.ID) error {
	if _, err := s.fieldOf(ctx, tableID, fieldID); err != nil {
		return err
	}

	if err := s.repository.DeleteField(ctx, fieldID); err != nil {
		slog.Error("deleting field", slog.String("error", err.Error()))
		return fmt.Errorf("deleting field: %w", err)
	}

	slog.Info("field deleted", slog.String("field_id", fieldID.String()))
	return nil
}

func (s *SimpleSchemaService) ListFields(ctx context.Context, tableID shareddomain.ID) ([]domain.Field, error) {
	if _, err := s.GetTable(ctx, tableID); err != nil {
		return nil, err
	}

	fields, err := s.repository.ListFields(ctx, tableID)
	if err != nil {
		slog.Error("listing fields", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	return fields, nil
}

// ReorderFields applies the given orders to fields of tableID. Ids of fields
// owned by another table are skipped without error.
func (s *SimpleSchemaService) ReorderFields(ctx context.Context, tableID shareddomain.ID, orders map[shareddomain.ID]int) error {
	fields, err := s.ListFields(ctx, tableID)
	if err != nil {
		return err
	}

	owned := make(map[shareddomain.ID]int, len(orders))
	for _, field := range fields {
		if order, ok := orders[field.ID]; ok {
			owned[field.ID] = order
		}
	}

	if skipped := len(orders) - len(owned); skipped > 0 {
		slog.Warn("ignoring fields of other tables in reorder",
			slog.String("table_id", tableID.String()),
			slog.Int("skipped", skipped))
	}

	if len(owned) == 0 {
		return nil
	}

	if err := s.repository.ReorderFields(ctx, tableID, owned); err != nil {
		slog.Error("reordering fields", slog.String("error", err.Error()))
		return fmt.Errorf("reordering fields: %w", err)
	}

	return nil
}

func (s *SimpleSchemaService) fieldOf(ctx context.Context, tableID, fieldID shareddomain.ID) (domain.Field, error) {
	field, err := s.repository.GetField(ctx, fieldID)
	if errors.Is(err, ErrFieldNotFound) {
		return domain.Field{}, ErrFieldNotFound
	}
	if err != nil {
		return domain.Field{}, fmt.Errorf("getting field: %w", err)
	}

	if field.TableID != tableID {
		return domain.Field{}, ErrFieldNotFound
	}

	return field, nil
}

func (s *SimpleSchemaService) ensureTableNameFree(ctx context.Context, name string, self shareddomain.ID) error {
	existing, err := s.repository.GetTableByName(ctx, name)
	switch {
	case errors.Is(err, ErrTableNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("checking table name: %w", err)
	case existing.ID != self:
		return ErrTableDuplicated
	default:
		return nil
	}
}

func (s *SimpleSchemaService) ensureFieldNameFree(ctx context.Context, tableID shareddomain.ID, name string, self shareddomain.ID) error {
	existing, err := s.repository.GetFieldByName(ctx, tableID, name)
	switch {
	case errors.Is(err, ErrFieldNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("checking field name: %w", err)
	case existing.ID != self:
		return ErrFieldDuplicated
	default:
		return nil
	}
}
