package http

import (
	"encoding/json"
	"net/http"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/handler/http/response"
)

type PunchHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Backfill(w http.ResponseWriter, r *http.Request)
	Correct(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Clock implements PunchHandler.
func (h *PunchHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	var req punch.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.punchService.Clock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Punch recorded", resp)
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := punch.ListPunchesRequest{
		EmployeeID: q.Get("employee_id"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	}

	resp, err := h.punchService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, resp)
}

// Backfill implements PunchHandler.
func (h *PunchHandlerImpl) Backfill(w http.ResponseWriter, r *http.Request) {
	var req punch.BackfillPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.punchService.Backfill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Punch recorded", resp)
}

// Correct implements PunchHandler.
func (h *PunchHandlerImpl) Correct(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid punch ID", nil)
		return
	}
	var req punch.CorrectPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	resp, err := h.punchService.Correct(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punch corrected", resp)
}

// Delete implements PunchHandler.
func (h *PunchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid punch ID", nil)
		return
	}

	if err := h.punchService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punch deleted", nil)
}
