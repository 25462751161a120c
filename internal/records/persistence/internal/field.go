package internal

import (
	"encoding/json"
	"fmt"

	"scout-server/internal/records/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"

	"gorm.io/datatypes"
)

type Field struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	TableID     string         `json:"table_id" gorm:"index;not null"`
	Name        string         `json:"name" gorm:"not null"`
	DisplayName string         `json:"display_name" gorm:"not null"`
	FieldType   string         `json:"field_type" gorm:"not null"`
	IsRequired  bool           `json:"required" gorm:"column:is_required"`
	IsUnique    bool           `json:"unique" gorm:"column:is_unique"`
	Options     datatypes.JSON `json:"options"`
	FieldOrder  int            `json:"order" gorm:"column:field_order"`
}

func (Field) TableName() string {
	return "table_fields"
}

func (s Field) ToDomain() (domain.Field, error) {
	var options []string
	if len(s.Options) > 0 {
		if err := json.Unmarshal(s.Options, &options); err != nil {
			return domain.Field{}, fmt.Errorf("decoding options of field %s: %w", s.ID, err)
		}
	}

	return domain.Field{
		ID:          shareddomain.ID(s.ID),
		TableID:     shareddomain.ID(s.TableID),
		Name:        s.Name,
		DisplayName: s.DisplayName,
		Type:        domain.FieldType(s.FieldType),
		Required:    s.IsRequired,
		Unique:      s.IsUnique,
		Options:     options,
		Order:       s.FieldOrder,
	}, nil
}

func FromField(value domain.Field) (Field, error) {
	var options datatypes.JSON
	if len(value.Options) > 0 {
		encoded, err := json.Marshal(value.Options)
		if err != nil {
			return Field{}, fmt.Errorf("encoding options: %w", err)
		}
		options = encoded
	}

	return Field{
		ID:          value.ID.String(),
		TableID:     value.TableID.String(),
		Name:        value.Name,
		DisplayName: value.DisplayName,
		FieldType:   value.Type.String(),
		IsRequired:  value.Required,
		IsUnique:    value.Unique,
		Options:     options,
		FieldOrder:  value.Order,
	}, nil
}
