package persistence

import (
	"context"
	"fmt"

	"scout-server/internal/infra/sql"
	"scout-server/internal/records/domain"
	"scout-server/internal/records/persistence/internal"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

func NewPermissionRepository(orm sql.ORM) (*SimplePermissionRepository, error) {
	if err := migrate(orm); err != nil {
		return nil, err
	}

	return &SimplePermissionRepository{
		orm: orm,
	}, nil
}

var _ usecases.PermissionRepository = (*SimplePermissionRepository)(nil)

type SimplePermissionRepository struct {
	orm sql.ORM
}

func (r *SimplePermissionRepository) ListRules(ctx context.Context, tableID shareddomain.ID) ([]domain.PermissionRule, error) {
	return r.find(ctx, "table_id = ?", tableID.String())
}

func (r *SimplePermissionRepository) RulesFor(ctx context.Context, userID, tableID shareddomain.ID) ([]domain.PermissionRule, error) {
	return r.find(ctx, "user_id = ? AND table_id = ?", userID.String(), tableID.String())
}

func (r *SimplePermissionRepository) AddRule(ctx context.Context, rule domain.PermissionRule) error {
	entity := internal.FromPermissionRule(rule)
	if err := r.orm.WithContext(ctx).Create(&entity).Error(); err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

// ReplaceRules drops every rule each rule's user holds on the rule's table and
// stores the given rules in their place. The whole batch commits or none of it.
func (r *SimplePermissionRepository) ReplaceRules(ctx context.Context, rules []domain.PermissionRule) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, rule := range rules {
			entity := internal.FromPermissionRule(rule)

			err := tx.
				Delete(&internal.TablePermission{}, "user_id = ? AND table_id = ?", entity.UserID, entity.TableID).
				Error()
			if err != nil {
				return fmt.Errorf("deleting rules: %w", err)
			}

			if err := tx.Create(&entity).Error(); err != nil {
				return fmt.Errorf("inserting rule: %w", err)
			}
		}

		return nil
	})
}

func (r *SimplePermissionRepository) DeleteRule(ctx context.Context, tableID, ruleID shareddomain.ID) error {
	result := r.orm.
		WithContext(ctx).
		Delete(&internal.TablePermission{}, "id = ? AND table_id = ?", ruleID.String(), tableID.String())

	if err := result.Error(); err != nil {
		return fmt.Errorf("database delete: %w", err)
	}
	if result.RowsAffected() == 0 {
		return usecases.ErrPermissionNotFound
	}

	return nil
}

func (r *SimplePermissionRepository) find(ctx context.Context, query string, args ...any) ([]domain.PermissionRule, error) {
	var entities []internal.TablePermission
	err := r.orm.
		WithContext(ctx).
		Where(query, args...).
		Order("created_at ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	rules := make([]domain.PermissionRule, len(entities))
	for i, entity := range entities {
		rules[i] = entity.ToDomain()
	}

	return rules, nil
}
