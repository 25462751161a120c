package usecases

import (
	"context"
	"strings"

	"scout-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/shared_kernel/usecases/api_mock.go -package=usecases

// RoleResolver is the identity lookup every access decision goes through.
type RoleResolver interface {
	GetRole(ctx context.Context, userID domain.ID) (domain.Role, error)
}

type UserService interface {
	RoleResolver
	GetUser(ctx context.Context, userID domain.ID) (domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input UserInput) (domain.User, error)
	UpdateUser(ctx context.Context, actorID, userID domain.ID, input UserInput) (domain.User, error)
	DeleteUser(ctx context.Context, actorID, userID domain.ID) error
	ChangePassword(ctx context.Context, userID domain.ID, current, replacement string) error
	CountByRole(ctx context.Context) (map[domain.Role]int, error)
	EnsureDefaultAdmin(ctx context.Context, input UserInput) (bool, error)
}

type UserInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
}

func (i UserInput) normalized() UserInput {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.TrimSpace(i.Email)
	return i
}
