package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TimesheetHandler interface {
	Balances(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

func balanceQuery(r *http.Request) timesheet.BalanceQuery {
	q := r.URL.Query()
	return timesheet.BalanceQuery{
		EmployeeID: q.Get("employee_id"),
		All:        boolQuery(r, "all"),
		From:       q.Get("from"),
		To:         q.Get("to"),
	}
}

// Balances implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	report, err := h.timesheetService.Report(r.Context(), balanceQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// Export implements TimesheetHandler. The workbook is rendered into memory
// first so errors still produce a JSON response.
func (h *TimesheetHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.timesheetService.Export(r.Context(), balanceQuery(r), &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "timesheet.xlsx"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("Timesheet export write failed", "error", err)
	}
}
