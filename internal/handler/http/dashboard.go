package http

import (
	"net/http"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/dashboard"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/handler/http/response"
)

type DashboardHandler interface {
	Company(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Company implements DashboardHandler.
func (h *DashboardHandlerImpl) Company(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.Company(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
