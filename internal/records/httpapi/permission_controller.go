package httpapi

import (
	"net/http"

	"scout-server/internal/infra/httpserver"
	"scout-server/internal/records/httpapi/internal"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
	sharedhttpapi "scout-server/internal/shared_kernel/httpapi"
	sharedusecases "scout-server/internal/shared_kernel/usecases"
)

const (
	listPermissionsErrMessage  = "failed to list permissions"
	addPermissionErrMessage    = "failed to add permission"
	bulkGrantErrMessage        = "failed to grant access"
	deletePermissionErrMessage = "failed to delete permission"
)

func NewPermissionController(service usecases.PermissionService, roles sharedusecases.RoleResolver) *PermissionController {
	return &PermissionController{
		service: service,
		roles:   roles,
	}
}

var _ httpserver.Controller = &PermissionController{}

type PermissionController struct {
	service usecases.PermissionService
	roles   sharedusecases.RoleResolver
}

func (c *PermissionController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/tables/{id}/permissions", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleAdmin, c.listPermissions()))
	router.Handle("POST /v1/tables/{id}/permissions", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleAdmin, c.addPermission()))
	router.Handle("POST /v1/tables/{id}/permissions/bulk-grant", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleAdmin, c.bulkGrant()))
	router.Handle("DELETE /v1/tables/{id}/permissions/{permission_id}", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleAdmin, c.deletePermission()))
}

func (c *PermissionController) listPermissions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rules, err := c.service.ListRules(r.Context(), tableID(r))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listPermissionsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRuleListResponse(rules))
	}
}

func (c *PermissionController) addPermission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.RuleRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		rule, err := c.service.AddRule(r.Context(), tableID(r), usecases.RuleInput{
			UserID:     shareddomain.ID(body.UserID),
			AllAccess:  body.AllAccess,
			FieldID:    shareddomain.ID(body.FieldID),
			MatchValue: body.MatchValue,
		})
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, addPermissionErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToRuleResponse(rule))
	}
}

// bulkGrant gives every listed user all access to the table, replacing
// whatever rules they held on it. Nothing is applied if one user is unknown.
func (c *PermissionController) bulkGrant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.BulkGrantRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		userIDs := make([]shareddomain.ID, len(body.UserIDs))
		for i, userID := range body.UserIDs {
			userIDs[i] = shareddomain.ID(userID)
		}

		rules, err := c.service.BulkGrant(r.Context(), tableID(r), userIDs)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, bulkGrantErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRuleListResponse(rules))
	}
}

func (c *PermissionController) deletePermission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ruleID := shareddomain.ID(r.PathValue("permission_id"))
		if err := c.service.DeleteRule(r.Context(), tableID(r), ruleID); err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, deletePermissionErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
