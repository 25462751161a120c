package persistence

import (
	"context"
	"errors"
	"fmt"

	"scout-server/internal/infra/sql"
	"scout-server/internal/printing/domain"
	"scout-server/internal/printing/persistence/internal"
	"scout-server/internal/printing/usecases"
)

func NewGenericTextRepository(orm sql.ORM) (*SimpleGenericTextRepository, error) {
	if err := orm.AutoMigrate(&internal.GenericText{}); err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleGenericTextRepository{
		orm: orm,
	}, nil
}

var _ usecases.GenericTextRepository = (*SimpleGenericTextRepository)(nil)

type SimpleGenericTextRepository struct {
	orm sql.ORM
}

func (r *SimpleGenericTextRepository) GetByName(ctx context.Context, name string) (domain.GenericText, error) {
	var entity internal.GenericText
	err := r.orm.
		WithContext(ctx).
		First(&entity, "name = ?", name).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.GenericText{}, usecases.ErrGenericTextNotFound
	}
	if err != nil {
		return domain.GenericText{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleGenericTextRepository) Create(ctx context.Context, text domain.GenericText) error {
	entity := internal.FromGenericText(text)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrGenericTextDuplicated
	}
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleGenericTextRepository) Update(ctx context.Context, text domain.GenericText) error {
	result := r.orm.
		WithContext(ctx).
		Model(&internal.GenericText{}).
		Where("name = ?", text.Name).
		Update("content", text.Content)

	if err := result.Error(); err != nil {
		return fmt.Errorf("database update: %w", err)
	}
	if result.RowsAffected() == 0 {
		return usecases.ErrGenericTextNotFound
	}

	return nil
}
