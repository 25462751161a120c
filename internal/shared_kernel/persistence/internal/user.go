package internal

import (
	"time"

	"scout-server/internal/shared_kernel/domain"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"password_hash" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:readonly"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (s User) ToDomain() domain.User {
	return domain.User{
		ID:           domain.ID(s.ID),
		Username:     s.Username,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		Role:         domain.Role(s.Role),
		CreatedAt:    s.CreatedAt,
	}
}

func FromUser(value domain.User) User {
	return User{
		ID:           value.ID.String(),
		Username:     value.Username,
		Email:        value.Email,
		PasswordHash: value.PasswordHash,
		Role:         value.Role.String(),
		CreatedAt:    value.CreatedAt,
	}
}
