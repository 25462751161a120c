package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"scout-server/internal/infra/sql"
	"scout-server/internal/shared_kernel/domain"
	"scout-server/internal/shared_kernel/persistence/internal"
	"scout-server/internal/shared_kernel/usecases"
)

func NewUserRepository(orm sql.ORM) (*SimpleUserRepository, error) {
	err := orm.AutoMigrate(&internal.User{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleUserRepository{
		orm: orm,
	}, nil
}

var _ usecases.UserRepository = (*SimpleUserRepository)(nil)

type SimpleUserRepository struct {
	orm sql.ORM
}

func (r *SimpleUserRepository) Create(ctx context.Context, user domain.User) error {
	entity := internal.FromUser(user)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()

	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrUserDuplicated
	}
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleUserRepository) Update(ctx context.Context, user domain.User) error {
	entity := internal.FromUser(user)
	result := r.orm.
		WithContext(ctx).
		Save(&entity)

	err := result.Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrUserDuplicated
	}
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleUserRepository) Delete(ctx context.Context, id domain.ID) error {
	result := r.orm.
		WithContext(ctx).
		Delete(&internal.User{}, "id = ?", id.String())

	if err := result.Error(); err != nil {
		return fmt.Errorf("database delete: %w", err)
	}

	if result.RowsAffected() == 0 {
		return usecases.ErrUserNotFound
	}

	return nil
}

func (r *SimpleUserRepository) GetByID(ctx context.Context, id domain.ID) (domain.User, error) {
	return r.first(ctx, "id = ?", id.String())
}

func (r *SimpleUserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *SimpleUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *SimpleUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var entities []internal.User
	err := r.orm.
		WithContext(ctx).
		Order("username ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	users := make([]domain.User, len(entities))
	for i, entity := range entities {
		users[i] = entity.ToDomain()
	}

	return users, nil
}

func (r *SimpleUserRepository) CountByRole(ctx context.Context) (map[domain.Role]int, error) {
	counts := make(map[domain.Role]int, len(domain.Roles()))
	for _, role := range domain.Roles() {
		var count int64
		err := r.orm.
			WithContext(ctx).
			Model(&internal.User{}).
			Where("role = ?", role.String()).
			Count(&count).
			Error()

		if err != nil {
			return nil, fmt.Errorf("counting %s users: %w", role, err)
		}

		counts[role] = int(count)
	}

	return counts, nil
}

func (r *SimpleUserRepository) first(ctx context.Context, query string, arg any) (domain.User, error) {
	var entity internal.User
	err := r.orm.
		WithContext(ctx).
		First(&entity, query, arg).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.User{}, usecases.ErrUserNotFound
	}

	if err != nil {
		slog.Error("database query error", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}
