package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"scout-server/internal/shared_kernel/domain"
)

var (
	ErrSelfModification = fmt.Errorf("administrators cannot modify their own account: %w", domain.ErrForbidden)
	ErrWrongPassword    = fmt.Errorf("current password does not match: %w", domain.ErrForbidden)
)

func NewUserService(repository UserRepository) *SimpleUserService {
	return &SimpleUserService{
		repository: repository,
	}
}

var _ UserService = &SimpleUserService{}

type SimpleUserService struct {
	repository UserRepository
}

func (s *SimpleUserService) GetRole(ctx context.Context, userID domain.ID) (domain.Role, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}

	return user.Role, nil
}

func (s *SimpleUserService) GetUser(ctx context.Context, userID domain.ID) (domain.User, error) {
	user, err := s.repository.GetByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		slog.Warn("user not found", slog.String("user_id", userID.String()))
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		slog.Error("getting user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *SimpleUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repository.FindAll(ctx)
	if err != nil {
		slog.Error("listing users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return users, nil
}

func (s *SimpleUserService) CreateUser(ctx context.Context, input UserInput) (domain.User, error) {
	input = input.normalized()
	if err := s.checkAvailability(ctx, "", input.Username, input.Email); err != nil {
		return domain.User{}, err
	}

	user, err := domain.NewUserBuilder().
		WithUsername(input.Username).
		WithEmail(input.Email).
		WithRole(input.Role).
		WithPassword(input.Password).
		Build()
	if err != nil {
		return domain.User{}, fmt.Errorf("building user: %w: %w", domain.ErrInvalidInput, err)
	}

	if err := s.repository.Create(ctx, user); err != nil {
		slog.Error("creating user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}

	slog.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return user, nil
}

func (s *SimpleUserService) UpdateUser(ctx context.Context, actorID, userID domain.ID, input UserInput) (domain.User, error) {
	if actorID == userID {
		return domain.User{}, ErrSelfModification
	}

	current, err := s.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	input = input.normalized()
	if err := s.checkAvailability(ctx, userID, input.Username, input.Email); err != nil {
		return domain.User{}, err
	}

	builder := domain.NewUserBuilder().
		WithID(current.ID).
		WithUsername(input.Username).
		WithEmail(input.Email).
		WithRole(input.Role)
	if input.Password != "" {
		builder = builder.WithPassword(input.Password)
	}

	updated, err := builder.Build()
	if err != nil {
		return domain.User{}, fmt.Errorf("building user: %w: %w", domain.ErrInvalidInput, err)
	}
	updated.CreatedAt = current.CreatedAt
	if input.Password == "" {
		updated.PasswordHash = current.PasswordHash
	}

	if err := s.repository.Update(ctx, updated); err != nil {
		slog.Error("updating user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("updating user: %w", err)
	}

	return updated, nil
}

func (s *SimpleUserService) DeleteUser(ctx context.Context, actorID, userID domain.ID) error {
	if actorID == userID {
		return ErrSelfModification
	}

	err := s.repository.Delete(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		slog.Error("deleting user", slog.String("error", err.Error()))
		return fmt.Errorf("deleting user: %w", err)
	}

	slog.Info("user deleted", slog.String("user_id", userID.String()))
	return nil
}

func (s *SimpleUserService) ChangePassword(ctx context.Context, userID domain.ID, current, replacement string) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if !user.CheckPassword(current) {
		return ErrWrongPassword
	}

	if err := user.SetPassword(replacement); err != nil {
		return err
	}

	if err := s.repository.Update(ctx, user); err != nil {
		slog.Error("changing password", slog.String("error", err.Error()))
		return fmt.Errorf("changing password: %w", err)
	}

	return nil
}

func (s *SimpleUserService) CountByRole(ctx context.Context) (map[domain.Role]int, error) {
	counts, err := s.repository.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting users by role: %w", err)
	}

	return counts, nil
}

// EnsureDefaultAdmin creates the given admin account when no user exists yet.
func (s *SimpleUserService) EnsureDefaultAdmin(ctx context.Context, input UserInput) (bool, error) {
	users, err := s.repository.FindAll(ctx)
	if err != nil {
		return false, fmt.Errorf("listing users: %w", err)
	}
	if len(users) > 0 {
		return false, nil
	}

	input.Role = domain.RoleAdmin
	if _, err := s.CreateUser(ctx, input); err != nil {
		return false, err
	}

	return true, nil
}

func (s *SimpleUserService) checkAvailability(ctx context.Context, self domain.ID, username, email string) error {
	byUsername, err := s.repository.GetByUsername(ctx, username)
	switch {
	case err == nil && byUsername.ID != self:
		return ErrUserDuplicated
	case err != nil && !errors.Is(err, ErrUserNotFound):
		return fmt.Errorf("checking username: %w", err)
	}

	byEmail, err := s.repository.GetByEmail(ctx, email)
	switch {
	case err == nil && byEmail.ID != self:
		return ErrUserDuplicated
	case err != nil && !errors.Is(err, ErrUserNotFound):
		return fmt.Errorf("checking email: %w", err)
	}

	return nil
}
