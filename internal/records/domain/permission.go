package domain

import (
	"fmt"
	"time"

	"scout-server/internal/infra/utils"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

type PermissionRule struct {
	ID         shareddomain.ID
	UserID     shareddomain.ID
	TableID    shareddomain.ID
	FieldID    *shareddomain.ID
	MatchValue *string
	AllAccess  bool
	CreatedAt  time.Time
}

// Matcher returns the field/value pair a specific rule matches on. ok is
// false for all_access rules and for rules missing either half.
func (r PermissionRule) Matcher() (fieldID shareddomain.ID, value string, ok bool) {
	if r.AllAccess || r.FieldID == nil || r.MatchValue == nil || *r.FieldID == "" || *r.MatchValue == "" {
		return "", "", false
	}
	return *r.FieldID, *r.MatchValue, true
}

func NewPermissionRuleBuilder() *permissionRuleBuilder {
	return &permissionRuleBuilder{}
}

type permissionRuleBuilder struct {
	actions []permissionRuleHandler
}

type permissionRuleHandler func(r *PermissionRule) error

func (b *permissionRuleBuilder) WithUserID(userID shareddomain.ID) *permissionRuleBuilder {
	b.actions = append(b.actions, func(r *PermissionRule) error {
		r.UserID = userID
		return nil
	})
	return b
}

func (b *permissionRuleBuilder) WithTableID(tableID shareddomain.ID) *permissionRuleBuilder {
	b.actions = append(b.actions, func(r *PermissionRule) error {
		r.TableID = tableID
		return nil
	})
	return b
}

func (b *permissionRuleBuilder) WithAllAccess() *permissionRuleBuilder {
	b.actions = append(b.actions, func(r *PermissionRule) error {
		r.AllAccess = true
		r.FieldID = nil
		r.MatchValue = nil
		return nil
	})
	return b
}

func (b *permissionRuleBuilder) WithMatch(fieldID shareddomain.ID, value string) *permissionRuleBuilder {
	b.actions = append(b.actions, func(r *PermissionRule) error {
		if fieldID == "" || value == "" {
			return fmt.Errorf("%w: a specific rule needs a field and a value", shareddomain.ErrInvalidInput)
		}
		r.AllAccess = false
		r.FieldID = &fieldID
		r.MatchValue = &value
		return nil
	})
	return b
}

func (b *permissionRuleBuilder) Build() (PermissionRule, error) {
	result := PermissionRule{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: utils.Now(),
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return PermissionRule{}, err
		}
	}

	if result.UserID == "" || result.TableID == "" {
		return PermissionRule{}, fmt.Errorf("%w: a rule needs a user and a table", shareddomain.ErrInvalidInput)
	}
	if _, _, ok := result.Matcher(); !ok && !result.AllAccess {
		return PermissionRule{}, fmt.Errorf("%w: a rule is either all access or a field match", shareddomain.ErrInvalidInput)
	}

	return result, nil
}
