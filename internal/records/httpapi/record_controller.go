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
	listRecordsErrMessage  = "failed to list records"
	getRecordErrMessage    = "failed to get record"
	createRecordErrMessage = "failed to create record"
	updateRecordErrMessage = "failed to update record"
	deleteRecordErrMessage = "failed to delete record"
	visibilityErrMessage   = "failed to evaluate visibility"
)

func NewRecordController(
	records usecases.RecordService,
	permissions usecases.PermissionService,
	roles sharedusecases.RoleResolver,
) *RecordController {
	return &RecordController{
		records:     records,
		permissions: permissions,
		roles:       roles,
	}
}

var _ httpserver.Controller = &RecordController{}

type RecordController struct {
	records     usecases.RecordService
	permissions usecases.PermissionService
	roles       sharedusecases.RoleResolver
}

func (c *RecordController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/tables/{id}/records", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.listRecords()))
	router.Handle("GET /v1/tables/{id}/records/visibility", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.visibility()))
	router.Handle("GET /v1/tables/{id}/records/{record_id}", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.getRecord()))
	router.Handle("POST /v1/tables/{id}/records", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleEditor, c.createRecord()))
	router.Handle("PUT /v1/tables/{id}/records/{record_id}", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleAdmin, c.updateRecord()))
	router.Handle("DELETE /v1/tables/{id}/records/{record_id}", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleAdmin, c.deleteRecord()))
}

func (c *RecordController) listRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: params.Offset()}

		views, total, err := c.records.ListRecords(r.Context(), sharedhttpapi.CallerID(r), tableID(r), pagination)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listRecordsErrMessage)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToRecordResponses(views), total, params)
	}
}

func (c *RecordController) visibility() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		visibility, err := c.permissions.VisibleRecordIDs(r.Context(), sharedhttpapi.CallerID(r), tableID(r))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, visibilityErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToVisibilityResponse(visibility))
	}
}

func (c *RecordController) getRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := c.records.GetRecord(r.Context(), sharedhttpapi.CallerID(r), tableID(r), recordID(r))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, getRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordResponse(view))
	}
}

func (c *RecordController) createRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.RecordRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		view, err := c.records.CreateRecord(r.Context(), tableID(r), sharedhttpapi.CallerID(r), body.RawValues())
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, createRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToRecordResponse(view))
	}
}

func (c *RecordController) updateRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.RecordRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		view, err := c.records.UpdateRecord(r.Context(), tableID(r), recordID(r), body.RawValues())
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, updateRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordResponse(view))
	}
}

func (c *RecordController) deleteRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.records.DeleteRecord(r.Context(), tableID(r), recordID(r)); err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, deleteRecordErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func recordID(r *http.Request) shareddomain.ID {
	return shareddomain.ID(r.PathValue("record_id"))
}
