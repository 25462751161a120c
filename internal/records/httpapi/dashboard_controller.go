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

const dashboardErrMessage = "failed to build dashboard"

func NewDashboardController(service usecases.DashboardService, roles sharedusecases.RoleResolver) *DashboardController {
	return &DashboardController{
		service: service,
		roles:   roles,
	}
}

var _ httpserver.Controller = &DashboardController{}

type DashboardController struct {
	service usecases.DashboardService
	roles   sharedusecases.RoleResolver
}

func (c *DashboardController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/dashboard", sharedhttpapi.RequireRole(c.roles, shareddomain.RoleReadonly, c.getDashboard()))
}

func (c *DashboardController) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := c.service.Summary(r.Context(), sharedhttpapi.CallerID(r))
		if err != nil {
			sharedhttpapi.ReplyWithDomainError(w, err, dashboardErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDashboardResponse(dashboard))
	}
}
