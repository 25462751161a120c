package usecases

import (
	"context"
	"fmt"

	"scout-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/shared_kernel/usecases/repository_port_mock.go -package=usecases -mock_names=UserRepository=MockUserRepository

var (
	ErrUserNotFound   = fmt.Errorf("user %w", domain.ErrNotFound)
	ErrUserDuplicated = fmt.Errorf("username or email already in use: %w", domain.ErrConflict)
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id domain.ID) error
	GetByID(ctx context.Context, id domain.ID) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	CountByRole(ctx context.Context) (map[domain.Role]int, error)
}
