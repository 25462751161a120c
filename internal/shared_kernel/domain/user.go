package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"scout-server/internal/infra/utils"

	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "changeme"

type User struct {
	ID           ID
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

func (u *User) SetPassword(password string) error {
	if password == "" {
		password = DefaultPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	u.PasswordHash = string(hash)
	return nil
}

func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func NewUserBuilder() *userBuilder {
	return &userBuilder{}
}

type userBuilder struct {
	actions []userHandler
}

type userHandler func(u *User) error

func (b *userBuilder) WithID(id ID) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.ID = id
		return nil
	})
	return b
}

func (b *userBuilder) WithUsername(username string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		username = strings.TrimSpace(username)
		if username == "" {
			return errors.New("username cannot be empty")
		}
		u.Username = username
		return nil
	})
	return b
}

func (b *userBuilder) WithEmail(email string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		email = strings.TrimSpace(email)
		if err := utils.ValidateEmail(email); err != nil {
			return err
		}
		u.Email = email
		return nil
	})
	return b
}

func (b *userBuilder) WithRole(role Role) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		if !role.IsValid() {
			return fmt.Errorf("invalid role '%s'", role)
		}
		u.Role = role
		return nil
	})
	return b
}

// WithPassword hashes the given password, falling back to DefaultPassword when empty.
func (b *userBuilder) WithPassword(password string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		return u.SetPassword(password)
	})
	return b
}

func (b *userBuilder) Build() (User, error) {
	result := User{
		ID:        ID(utils.GenerateUUID()),
		Role:      RoleReadonly,
		CreatedAt: utils.Now(),
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return User{}, err
		}
	}

	if result.Username == "" {
		return User{}, errors.New("username is required")
	}
	if result.Email == "" {
		return User{}, errors.New("email is required")
	}
	if result.PasswordHash == "" {
		if err := result.SetPassword(DefaultPassword); err != nil {
			return User{}, err
		}
	}

	return result, nil
}
