package timesheet

import (
	"fmt"
	"io"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Timesheet"

var exportHeader = []interface{}{
	"Employee", "Date", "Start", "End", "Status", "Break (h)", "Worked (h)", "Target (h)", "Balance (h)",
}

// WriteWorkbook renders a balance report as an XLSX workbook with one row per
// day and a closing total row.
func WriteWorkbook(w io.Writer, report timesheet.BalanceReportResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, day := range report.Days {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []interface{}{
			day.EmployeeName,
			day.Date,
			stringOrEmpty(day.Start),
			stringOrEmpty(day.End),
			day.Status,
			day.BreakHours,
			day.WorkedHours,
			day.TargetHours,
			day.BalanceHours,
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	totalCell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	total := []interface{}{"Total", "", "", "", "", "", report.WorkedHours, "", report.AggregateHours}
	if err := f.SetSheetRow(exportSheet, totalCell, &total); err != nil {
		return fmt.Errorf("write total: %w", err)
	}

	if err := f.SetColWidth(exportSheet, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(exportSheet, "B", "E", 14); err != nil {
		return err
	}

	return f.Write(w)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
