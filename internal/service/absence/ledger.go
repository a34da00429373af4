package absence

import (
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/shopspring/decimal"
)

// InclusiveDays counts every calendar day from start to end, weekends
// included. A range whose end precedes its start counts zero.
func InclusiveDays(r absence.AbsenceRequest) int {
	start := r.StartDate.UTC().Truncate(24 * time.Hour)
	end := r.EndDate.UTC().Truncate(24 * time.Hour)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// VacationDaysTaken sums the approved vacation requests.
func VacationDaysTaken(requests []absence.AbsenceRequest) int {
	taken := 0
	for _, r := range requests {
		if r.Kind == absence.KindVacation && r.Status == absence.StatusApproved {
			taken += InclusiveDays(r)
		}
	}
	return taken
}

// ComputeVacationStats derives taken and remaining days against quota.
// Remaining goes negative when more was approved than the quota allows.
func ComputeVacationStats(employeeID string, requests []absence.AbsenceRequest, quota int) absence.VacationStats {
	taken := VacationDaysTaken(requests)
	return absence.VacationStats{
		EmployeeID: employeeID,
		Quota:      quota,
		Taken:      taken,
		Remaining:  quota - taken,
	}
}

// CountSickDays sums sick requests. Unless requireApproval is set, pending
// and rejected sick notes count as well.
func CountSickDays(requests []absence.AbsenceRequest, requireApproval bool) int {
	days := 0
	for _, r := range requests {
		if r.Kind != absence.KindSick {
			continue
		}
		if requireApproval && r.Status != absence.StatusApproved {
			continue
		}
		days += InclusiveDays(r)
	}
	return days
}

// UtilizationRate is taken/quota as a percentage with one decimal. A zero
// quota yields 0.
func UtilizationRate(taken, quota int) float64 {
	if quota <= 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(taken)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(quota))).
		Round(1)
	return rate.InexactFloat64()
}
