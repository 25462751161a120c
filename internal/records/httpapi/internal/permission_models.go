package internal

import (
	"time"

	"scout-server/internal/records/domain"
)

type RuleRequest struct {
	UserID     string `json:"user_id"`
	AllAccess  bool   `json:"all_access"`
	FieldID    string `json:"field_id"`
	MatchValue string `json:"match_value"`
}

type BulkGrantRequest struct {
	UserIDs []string `json:"user_ids"`
}

type RuleResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	TableID    string    `json:"table_id"`
	FieldID    *string   `json:"field_id"`
	MatchValue *string   `json:"match_value"`
	AllAccess  bool      `json:"all_access"`
	CreatedAt  time.Time `json:"created_at"`
}

type RuleListResponse struct {
	Permissions []RuleResponse `json:"permissions"`
}

func ToRuleResponse(rule domain.PermissionRule) RuleResponse {
	response := RuleResponse{
		ID:         rule.ID.String(),
		UserID:     rule.UserID.String(),
		TableID:    rule.TableID.String(),
		MatchValue: rule.MatchValue,
		AllAccess:  rule.AllAccess,
		CreatedAt:  rule.CreatedAt,
	}
	if rule.FieldID != nil {
		fieldID := rule.FieldID.String()
		response.FieldID = &fieldID
	}
	return response
}

func ToRuleListResponse(rules []domain.PermissionRule) RuleListResponse {
	response := RuleListResponse{Permissions: make([]RuleResponse, len(rules))}
	for i, rule := range rules {
		response.Permissions[i] = ToRuleResponse(rule)
	}
	return response
}
