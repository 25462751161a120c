package internal

import (
	"time"

	"scout-server/internal/records/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

type Table struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	DisplayName string    `json:"display_name" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

func (Table) TableName() string {
	return "tables"
}

func (s Table) ToDomain() domain.Table {
	return domain.Table{
		ID:          shareddomain.ID(s.ID),
		Name:        s.Name,
		DisplayName: s.DisplayName,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		ModifiedAt:  s.ModifiedAt,
	}
}

func FromTable(value domain.Table) Table {
	return Table{
		ID:          value.ID.String(),
		Name:        value.Name,
		DisplayName: value.DisplayName,
		Description: value.Description,
		CreatedAt:   value.CreatedAt,
		ModifiedAt:  value.ModifiedAt,
	}
}
