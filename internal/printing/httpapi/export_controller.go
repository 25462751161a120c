package httpapi

import (
	"net/http"

	"scout-server/internal/infra/httpserver"
	"scout-server/internal/printing/httpapi/internal"
	"scout-server/internal/printing/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
	sharedhttpapi "scout-server/internal/shared_kernel/httpapi"
	sharedusecases "scout-server/internal/shared_kernel/usecases"
)

const (
	exportErrMessage      = "failed to export table"
	printTableErrMessage  = "failed to print table"
	printRecordErrMessage = "failed to print record"
)

func NewExportController(service usecases.ExportService, roles sharedusecases.RoleResolver) *ExportController {
	return &ExportController{
		service: service,
		roles:   roles,
	}
}

var _ httpserver.Controller = &ExportController{}

// ExportController serves every caller; the service narrows the output to
// the records the caller may see.
type ExportController struct {
	service usecases.ExportService
	roles   sharedusecases.RoleResolver
}

func (c *ExportController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/tables/{id}/export", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.export()))
	router.Handle("GET /v1/tables/{id}/print", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.printTable()))
	router.Handle("GET /v1/tables/{id}/records/{record_id}/print", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.printRecord()))
}

func (c *ExportController) export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ExportRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		export, err := c.service.Spreadsheet(r.Context(), sharedhttpapi.CallerID(r), tableID(r), body.ToInput())
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, exportErrMessage)
			return
		}

		httpserver.ReplyWithAttachment(w, export.ContentType, export.Filename, export.Body)
	}
}

func (c *ExportController) printTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := c.service.PrintTable(r.Context(), sharedhttpapi.CallerID(r), tableID(r))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, printTableErrMessage)
			return
		}

		httpserver.ReplyHTML(w, http.StatusOK, body)
	}
}

func (c *ExportController) printRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := shareddomain.ID(r.PathValue("record_id"))

		body, err := c.service.PrintRecord(r.Context(), sharedhttpapi.CallerID(r), tableID(r), recordID)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, printRecordErrMessage)
			return
		}

		httpserver.ReplyHTML(w, http.StatusOK, body)
	}
}

func tableID(r *http.Request) shareddomain.ID {
	return shareddomain.ID(r.PathValue("id"))
}
