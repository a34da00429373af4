package timesheet

import (
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// Balances compares every shift against target. Days that are not completed
// owe the full target.
func Balances(shifts []timesheet.DayShift, target time.Duration) []timesheet.DayBalance {
	balances := make([]timesheet.DayBalance, 0, len(shifts))
	for _, s := range shifts {
		balances = append(balances, timesheet.DayBalance{
			DayShift: s,
			Target:   target,
			Balance:  s.Worked - target,
		})
	}
	return balances
}

// Aggregate sums the signed balances at full precision.
func Aggregate(balances []timesheet.DayBalance) time.Duration {
	var total time.Duration
	for _, b := range balances {
		total += b.Balance
	}
	return total
}

// TotalWorked sums the worked time of all days.
func TotalWorked(balances []timesheet.DayBalance) time.Duration {
	var total time.Duration
	for _, b := range balances {
		total += b.Worked
	}
	return total
}

// Hours converts d to hours rounded half away from zero to places decimals.
func Hours(d time.Duration, places int32) float64 {
	return decimal.NewFromInt(int64(d)).
		Div(decimal.NewFromInt(int64(time.Hour))).
		Round(places).
		InexactFloat64()
}
