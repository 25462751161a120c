package internal

import (
	"scout-server/internal/printing/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

type GenericText struct {
	ID      string `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"uniqueIndex;not null"`
	Content string `json:"content"`
}

func (GenericText) TableName() string {
	return "generic_texts"
}

func (s GenericText) ToDomain() domain.GenericText {
	return domain.GenericText{
		ID:      shareddomain.ID(s.ID),
		Name:    s.Name,
		Content: s.Content,
	}
}

func FromGenericText(value domain.GenericText) GenericText {
	return GenericText{
		ID:      value.ID.String(),
		Name:    value.Name,
		Content: value.Content,
	}
}
