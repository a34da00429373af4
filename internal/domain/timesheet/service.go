package timesheet

import (
	"context"
	"io"
	"time"
)

type TimesheetService interface {
	Invalidator

	Shifts(ctx context.Context, query BalanceQuery) ([]DayShift, error)
	DailyBalances(ctx context.Context, query BalanceQuery) ([]DayBalance, error)
	AggregateBalance(ctx context.Context, query BalanceQuery) (time.Duration, error)
	// Report returns daily balances and their sum rounded for display.
	Report(ctx context.Context, query BalanceQuery) (BalanceReportResponse, error)
	// Export writes the report as an XLSX workbook.
	Export(ctx context.Context, query BalanceQuery, w io.Writer) error
}

// Invalidator drops derived views after punches of an employee changed.
type Invalidator interface {
	Invalidate(employeeID string)
}
