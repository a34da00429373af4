package http

import (
	"encoding/json"
	"net/http"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/handler/http/response"
)

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	VacationStats(w http.ResponseWriter, r *http.Request)
	SickDays(w http.ResponseWriter, r *http.Request)

	ListPending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// Create implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.absenceService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Absence request submitted", resp)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := absence.ListAbsencesRequest{
		EmployeeID: q.Get("employee_id"),
		Status:     q.Get("status"),
		Kind:       q.Get("kind"),
	}

	resp, err := h.absenceService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, resp)
}

// Get implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid absence request ID", nil)
		return
	}

	resp, err := h.absenceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// VacationStats implements AbsenceHandler.
func (h *AbsenceHandlerImpl) VacationStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.absenceService.VacationStats(r.Context(), r.URL.Query().Get("employee_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// SickDays implements AbsenceHandler.
func (h *AbsenceHandlerImpl) SickDays(w http.ResponseWriter, r *http.Request) {
	resp, err := h.absenceService.SickDays(r.Context(), r.URL.Query().Get("employee_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListPending implements AbsenceHandler.
func (h *AbsenceHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.absenceService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, resp)
}

// Decide implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid absence request ID", nil)
		return
	}
	var req absence.DecideAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	resp, err := h.absenceService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Absence request "+string(resp.Status), resp)
}

// Delete implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid absence request ID", nil)
		return
	}

	if err := h.absenceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Absence request deleted", nil)
}
