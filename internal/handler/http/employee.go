package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/dashboard"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/handler/http/response"
)

type EmployeeHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	MyOverview(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService  employee.EmployeeService
	dashboardService dashboard.DashboardService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, dashboardService dashboard.DashboardService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService:  employeeService,
		dashboardService: dashboardService,
	}
}

// Me implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.Get(r.Context(), "")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// MyOverview implements EmployeeHandler.
func (h *EmployeeHandlerImpl) MyOverview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", resp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := employee.ListEmployeesRequest{IncludeAdmins: boolQuery(r, "include_admins")}

	resp, err := h.employeeService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, resp)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", resp)
}

// Overview implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.Employee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
