package internal

import (
	"time"

	"scout-server/internal/records/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

type TablePermission struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	TableID    string    `json:"table_id" gorm:"index;not null"`
	FieldID    *string   `json:"field_id"`
	MatchValue *string   `json:"match_value"`
	AllAccess  bool      `json:"all_access"`
	CreatedAt  time.Time `json:"created_at"`
}

func (TablePermission) TableName() string {
	return "table_permissions"
}

func (s TablePermission) ToDomain() domain.PermissionRule {
	rule := domain.PermissionRule{
		ID:         shareddomain.ID(s.ID),
		UserID:     shareddomain.ID(s.UserID),
		TableID:    shareddomain.ID(s.TableID),
		MatchValue: s.MatchValue,
		AllAccess:  s.AllAccess,
		CreatedAt:  s.CreatedAt,
	}
	if s.FieldID != nil {
		fieldID := shareddomain.ID(*s.FieldID)
		rule.FieldID = &fieldID
	}
	return rule
}

func FromPermissionRule(value domain.PermissionRule) TablePermission {
	permission := TablePermission{
		ID:         value.ID.String(),
		UserID:     value.UserID.String(),
		TableID:    value.TableID.String(),
		MatchValue: value.MatchValue,
		AllAccess:  value.AllAccess,
		CreatedAt:  value.CreatedAt,
	}
	if value.FieldID != nil {
		fieldID := value.FieldID.String()
		permission.FieldID = &fieldID
	}
	return permission
}
