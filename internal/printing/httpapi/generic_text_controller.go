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
	getTextErrMessage    = "failed to get text"
	updateTextErrMessage = "failed to update text"
	printTextErrMessage  = "failed to print text"
)

func NewGenericTextController(service usecases.GenericTextService, roles sharedusecases.RoleResolver) *GenericTextController {
	return &GenericTextController{
		service: service,
		roles:   roles,
	}
}

var _ httpserver.Controller = &GenericTextController{}

type GenericTextController struct {
	service usecases.GenericTextService
	roles   sharedusecases.RoleResolver
}

func (c *GenericTextController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/generic-texts/{name}", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.getText()))
	router.Handle("PUT /v1/generic-texts/{name}", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleAdmin, c.updateText()))
	router.Handle("GET /v1/generic-texts/{name}/print", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.printText()))
}

func (c *GenericTextController) getText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := c.service.Get(r.Context(), r.PathValue("name"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, getTextErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToGenericTextResponse(text))
	}
}

func (c *GenericTextController) updateText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.GenericTextRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		text, err := c.service.Update(r.Context(), r.PathValue("name"), body.Content)
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, updateTextErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToGenericTextResponse(text))
	}
}

func (c *GenericTextController) printText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := c.service.Print(r.Context(), r.PathValue("name"))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, printTextErrMessage)
			return
		}

		httpserver.ReplyHTML(w, http.StatusOK, body)
	}
}
