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
	invalidBodyErrMessage    = "invalid request body"
	listTemplatesErrMessage  = "failed to list print templates"
	activeTemplateErrMessage = "failed to get the active print template"
	updateTemplateErrMessage = "failed to update print template"
)

func NewTemplateController(service usecases.TemplateService, roles sharedusecases.RoleResolver) *TemplateController {
	return &TemplateController{
		service: service,
		roles:   roles,
	}
}

var _ httpserver.Controller = &TemplateController{}

type TemplateController struct {
	service usecases.TemplateService
	roles   sharedusecases.RoleResolver
}

func (c *TemplateController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/print-templates", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.listTemplates()))
	router.Handle("GET /v1/print-templates/active", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.activeTemplate()))
	router.Handle("PUT /v1/print-templates/{id}", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleAdmin, c.updateTemplate()))
}

func (c *TemplateController) listTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := c.service.List(r.Context())
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, listTemplatesErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTemplateListResponse(templates))
	}
}

func (c *TemplateController) activeTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		template, err := c.service.GetDefault(r.Context())
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, activeTemplateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTemplateResponse(template))
	}
}

func (c *TemplateController) updateTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TemplateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			http.Error(w, invalidBodyErrMessage, http.StatusBadRequest)
			return
		}

		template, err := c.service.Update(r.Context(), shareddomain.ID(r.PathValue("id")), usecases.TemplateInput{
			HeaderHTML: body.HeaderHTML,
			FooterHTML: body.FooterHTML,
			CSS:        body.CSS,
			LogoURL:    body.LogoURL,
		})
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, updateTemplateErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTemplateResponse(template))
	}
}
