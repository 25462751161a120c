package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"scout-server/internal/records/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
	sharedusecases "scout-server/internal/shared_kernel/usecases"
)

func NewPermissionService(
	repository PermissionRepository,
	schema SchemaRepository,
	values ValueStore,
	roles sharedusecases.RoleResolver,
) *SimplePermissionService {
	return &SimplePermissionService{
		repository: repository,
		schema:     schema,
		values:     values,
		roles:      roles,
	}
}

var _ PermissionService = &SimplePermissionService{}

type SimplePermissionService struct {
	repository PermissionRepository
	schema     SchemaRepository
	values     ValueStore
	roles      sharedusecases.RoleResolver
}

// VisibleRecordIDs evaluates the caller's rules on every call. Editors and
// admins see the whole table. A readonly user sees the union of the records
// matched by its rules, or the whole table as soon as one rule is all_access.
func (s *SimplePermissionService) VisibleRecordIDs(ctx context.Context, userID, tableID shareddomain.ID) (domain.Visibility, error) {
	role, err := s.roles.GetRole(ctx, userID)
	if err != nil {
		return domain.Visibility{}, fmt.Errorf("resolving role: %w", err)
	}

	if role.IsEditor() {
		return domain.AllRecords(), nil
	}

	rules, err := s.repository.RulesFor(ctx, userID, tableID)
	if err != nil {
		slog.Error("loading permission rules", slog.String("error", err.Error()))
		return domain.Visibility{}, fmt.Errorf("loading permission rules: %w", err)
	}

	// all_access wins over every specific rule of the same user and table
	for _, rule := range rules {
		if rule.AllAccess {
			return domain.AllRecords(), nil
		}
	}

	visibility := domain.NoRecords()
	for _, rule := range rules {
		fieldID, value, ok := rule.Matcher()
		if !ok {
			continue
		}

		ids, err := s.values.RecordIDsWithText(ctx, tableID, fieldID, value)
		if err != nil {
			return domain.Visibility{}, fmt.Errorf("matching rule %s: %w", rule.ID, err)
		}
		visibility.Add(ids...)
	}

	return visibility, nil
}

func (s *SimplePermissionService) ListRules(ctx context.Context, tableID shareddomain.ID) ([]domain.PermissionRule, error) {
	if _, err := s.schema.GetTable(ctx, tableID); err != nil {
		return nil, err
	}

	rules, err := s.repository.ListRules(ctx, tableID)
	if err != nil {
		slog.Error("listing permission rules", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing permission rules: %w", err)
	}

	return rules, nil
}

// AddRule appends a specific rule. An all_access request replaces the user's
// rules on the table instead.
func (s *SimplePermissionService) AddRule(ctx context.Context, tableID shareddomain.ID, input RuleInput) (domain.PermissionRule, error) {
	if input.AllAccess {
		return s.ReplaceRules(ctx, tableID, input)
	}

	rule, err := s.buildRule(ctx, tableID, input)
	if err != nil {
		return domain.PermissionRule{}, err
	}

	if err := s.repository.AddRule(ctx, rule); err != nil {
		slog.Error("adding permission rule", slog.String("error", err.Error()))
		return domain.PermissionRule{}, fmt.Errorf("adding permission rule: %w", err)
	}

	slog.Info("permission rule added",
		slog.String("user_id", rule.UserID.String()),
		slog.String("table_id", tableID.String()))

	return rule, nil
}

// ReplaceRules swaps every rule the user holds on the table for the given one
// in a single transaction.
func (s *SimplePermissionService) ReplaceRules(ctx context.Context, tableID shareddomain.ID, input RuleInput) (domain.PermissionRule, error) {
	rule, err := s.buildRule(ctx, tableID, input)
	if err != nil {
		return domain.PermissionRule{}, err
	}

	if err := s.repository.ReplaceRules(ctx, []domain.PermissionRule{rule}); err != nil {
		slog.Error("replacing permission rules", slog.String("error", err.Error()))
		return domain.PermissionRule{}, fmt.Errorf("replacing permission rules: %w", err)
	}

	slog.Info("permission rules replaced",
		slog.String("user_id", rule.UserID.String()),
		slog.String("table_id", tableID.String()),
		slog.Bool("all_access", rule.AllAccess))

	return rule, nil
}

func (s *SimplePermissionService) GrantAllAccess(ctx context.Context, tableID, userID shareddomain.ID) (domain.PermissionRule, error) {
	return s.ReplaceRules(ctx, tableID, RuleInput{UserID: userID, AllAccess: true})
}

// BulkGrant gives every listed user all access to the table. Each user is
// checked before anything is written, then all replacements commit together.
func (s *SimplePermissionService) BulkGrant(ctx context.Context, tableID shareddomain.ID, userIDs []shareddomain.ID) ([]domain.PermissionRule, error) {
	seen := make(map[shareddomain.ID]struct{}, len(userIDs))
	rules := make([]domain.PermissionRule, 0, len(userIDs))
	for _, userID := range userIDs {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		rule, err := s.buildRule(ctx, tableID, RuleInput{UserID: userID, AllAccess: true})
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if len(rules) == 0 {
		if _, err := s.schema.GetTable(ctx, tableID); err != nil {
			return nil, err
		}
		return rules, nil
	}

	if err := s.repository.ReplaceRules(ctx, rules); err != nil {
		slog.Error("granting all access", slog.String("error", err.Error()))
		return nil, fmt.Errorf("granting all access: %w", err)
	}

	slog.Info("all access granted",
		slog.String("table_id", tableID.String()),
		slog.Int("users", len(rules)))

	return rules, nil
}

func (s *SimplePermissionService) DeleteRule(ctx context.Context, tableID, ruleID shareddomain.ID) error {
	if err := s.repository.DeleteRule(ctx, tableID, ruleID); err != nil {
		return fmt.Errorf("deleting permission rule: %w", err)
	}

	return nil
}

func (s *SimplePermissionService) buildRule(ctx context.Context, tableID shareddomain.ID, input RuleInput) (domain.PermissionRule, error) {
	if _, err := s.schema.GetTable(ctx, tableID); err != nil {
		return domain.PermissionRule{}, err
	}

	if _, err := s.roles.GetRole(ctx, input.UserID); err != nil {
		return domain.PermissionRule{}, err
	}

	builder := domain.NewPermissionRuleBuilder().
		WithUserID(input.UserID).
		WithTableID(tableID)

	if input.AllAccess {
		return builder.WithAllAccess().Build()
	}

	field, err := s.schema.GetField(ctx, input.FieldID)
	if err != nil {
		return domain.PermissionRule{}, err
	}
	if field.TableID != tableID {
		return domain.PermissionRule{}, ErrFieldNotFound
	}

	return builder.WithMatch(field.ID, input.MatchValue).Build()
}
