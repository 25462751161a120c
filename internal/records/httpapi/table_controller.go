package httpapi

import (
	"log/slog"
	"net/http"

	"scout-server/internal/infra/httpserver"
	"scout-server/internal/records/domain"
	"scout-server/internal/records/httpapi/internal"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
	sharedhttpapi "scout-server/internal/shared_kernel/httpapi"
	sharedusecases "scout-server/internal/shared_kernel/usecases"
)

const (
	listTablesErrMessage    = "failed to list tables"
	getTableErrMessage      = "failed to get table"
	createTableErrMessage   = "failed to create table"
	updateTableErrMessage   = "failed to update table"
	deleteTableErrMessage   = "failed to delete table"
	listFieldsErrMessage    = "failed to list fields"
	createFieldErrMessage   = "failed to create field"
	updateFieldErrMessage   = "failed to update field"
	deleteFieldErrMessage   = "failed to delete field"
	reorderFieldsErrMessage = "failed to reorder fields"
	invalidBodyErrMessage   = "invalid request body"
)

func NewTableController(service usecases.SchemaService, roles sharedusecases.RoleResolver) *TableController {
	return &TableController{
		service: service,
		roles:   roles,
	}
}

var _ httpserver.Controller = &TableController{}

type TableController struct {
	service usecases.SchemaService
	roles   sharedusecases.RoleResolver
}

func (c *TableController) AddRoutes(router *http.ServeMux) {
	reader, admin := shareddomain.RoleReadonly, shareddomain.RoleAdmin

	router.Handle("GET /v1/tables", sharedhttpapi.RequireRole(c.roles, reader, c.listTables()))
	router.Handle("POST /v1/tables", sharedhttpapi.RequireRole(c.roles, admin, c.createTable()))
	router.Handle("GET /v1/tables/{id}", sharedhttpapi.RequireRole(c.roles, reader, c.getTable()))
	router.Handle("PUT /v1/tables/{id}", sharedhttpapi.RequireRole(c.roles, admin, c.updateTable()))
	router.Handle("DELETE /v1/tables/{id}", sharedhttpapi.RequireRole(c.roles, admin, c.deleteTable()))

	router.Handle("GET /v1/tables/{id}/fields", sharedhttpapi.RequireRole(c.roles, reader, c.listFields()))
	router.Handle("POST /v1/tables/{id}/fields", sharedhttpapi.RequireRole(c.roles, admin, c.createField()))
	router.Handle("POST /v1/tables/{id}/fields/order", sharedhttpapi.RequireRole(c.roles, admin, c.reorderFields()))
	router.Handle("PUT /v1/tables/{id}/fields/{field_id}", sharedhttpapi.RequireRole(c.roles, admin, c.updateField()))
	router.Handle("DELETE /v1/tables/{id}/fields/{field_id}", sharedhttpapi.RequireRole(c.roles, admin, c.deleteField()))
}

func (c *TableController) listTables() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables, err := c.service.ListTables(r.Context())
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listTablesErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTableListResponse(tables))
	}
}

func (c *TableController) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := c.service.GetTable(r.Context(), tableID(r))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, getTableErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTableResponse(table))
	}
}

func (c *TableController) createTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TableRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Warn("decoding table request", slog.String("error", err.Error()))
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		table, err := c.service.CreateTable(r.Context(), toTableInput(body))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, createTableErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToTableResponse(table))
	}
}

func (c *TableController) updateTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TableRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		table, err := c.service.UpdateTable(r.Context(), tableID(r), toTableInput(body))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, updateTableErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTableResponse(table))
	}
}

func (c *TableController) deleteTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.DeleteTable(r.Context(), tableID(r)); err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, deleteTableErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *TableController) listFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := c.service.ListFields(r.Context(), tableID(r))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listFieldsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldListResponse(fields))
	}
}

func (c *TableController) createField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeFieldRequest(w, r)
		if !ok {
			return
		}

		field, err := c.service.CreateField(r.Context(), tableID(r), input)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, createFieldErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFieldResponse(field))
	}
}

func (c *TableController) updateField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, ok := decodeFieldRequest(w, r)
		if !ok {
			return
		}

		fieldID := shareddomain.ID(r.PathValue("field_id"))
		field, err := c.service.UpdateField(r.Context(), tableID(r), fieldID, input)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, updateFieldErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFieldResponse(field))
	}
}

func (c *TableController) deleteField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fieldID := shareddomain.ID(r.PathValue("field_id"))
		if err := c.service.DeleteField(r.Context(), tableID(r), fieldID); err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, deleteFieldErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *TableController) reorderFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ReorderFieldsRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		orders := make(map[shareddomain.ID]int, len(body.Fields))
		for _, field := range body.Fields {
			orders[shareddomain.ID(field.ID)] = field.Order
		}

		if err := c.service.ReorderFields(r.Context(), tableID(r), orders); err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, reorderFieldsErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func decodeFieldRequest(w http.ResponseWriter, r *http.Request) (usecases.FieldInput, bool) {
	var body internal.FieldRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		slog.Warn("decoding field request", slog.String("error", err.Error()))
		http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
		return usecases.FieldInput{}, false
	}

	// left empty: text on create, unchanged on update
	var fieldType domain.FieldType
	if body.FieldType != "" {
		parsed, err := domain.ParseFieldType(body.FieldType)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return usecases.FieldInput{}, false
		}
		fieldType = parsed
	}

	return usecases.FieldInput{
		Name:        body.Name,
		DisplayName: body.DisplayName,
		Type:        fieldType,
		Required:    body.Required,
		Unique:      body.Unique,
		Options:     body.Options,
	}, true
}

func toTableInput(body internal.TableRequest) usecases.TableInput {
	return usecases.TableInput{
		Name:        body.Name,
		DisplayName: body.DisplayName,
		Description: body.Description,
	}
}

func tableID(r *http.Request) shareddomain.ID {
	return shareddomain.ID(r.PathValue("id"))
}
