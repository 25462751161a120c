package persistence

import (
	"context"
	"errors"
	"fmt"

	"scout-server/internal/infra/sql"
	"scout-server/internal/printing/domain"
	"scout-server/internal/printing/persistence/internal"
	"scout-server/internal/printing/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

func NewTemplateRepository(orm sql.ORM) (*SimpleTemplateRepository, error) {
	if err := orm.AutoMigrate(&internal.PrintTemplate{}); err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleTemplateRepository{
		orm: orm,
	}, nil
}

var _ usecases.TemplateRepository = (*SimpleTemplateRepository)(nil)

type SimpleTemplateRepository struct {
	orm sql.ORM
}

func (r *SimpleTemplateRepository) GetDefault(ctx context.Context) (domain.PrintTemplate, error) {
	return r.first(ctx, "is_default = ?", true)
}

func (r *SimpleTemplateRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.PrintTemplate, error) {
	return r.first(ctx, "id = ?", id.String())
}

func (r *SimpleTemplateRepository) List(ctx context.Context) ([]domain.PrintTemplate, error) {
	var entities []internal.PrintTemplate
	err := r.orm.
		WithContext(ctx).
		Order("is_default DESC, name ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	templates := make([]domain.PrintTemplate, len(entities))
	for i, entity := range entities {
		templates[i] = entity.ToDomain()
	}

	return templates, nil
}

func (r *SimpleTemplateRepository) Create(ctx context.Context, template domain.PrintTemplate) error {
	entity := internal.FromPrintTemplate(template)
	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleTemplateRepository) Update(ctx context.Context, template domain.PrintTemplate) error {
	entity := internal.FromPrintTemplate(template)
	if err := r.orm.WithContext(ctx).Save(&entity).Error(); err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleTemplateRepository) first(ctx context.Context, query string, args ...any) (domain.PrintTemplate, error) {
	var entity internal.PrintTemplate
	err := r.orm.
		WithContext(ctx).
		First(&entity, append([]any{query}, args...)...).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.PrintTemplate{}, usecases.ErrTemplateNotFound
	}
	if err != nil {
		return domain.PrintTemplate{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}
