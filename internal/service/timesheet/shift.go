package timesheet

import (
	"sort"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
)

type shiftKey struct {
	employeeID string
	year       int
	month      time.Month
	day        int
}

// Reconstruct groups punches by employee and calendar date in loc and derives
// one DayShift per group. Start is the earliest arrive and End the latest leave
// of the day; repeated arrive or leave punches collapse into that interval.
// With deductBreaks, every break punch inside the shift subtracts the time up
// to the next punch of the day.
func Reconstruct(punches []punch.Punch, loc *time.Location, deductBreaks bool) []timesheet.DayShift {
	if len(punches) == 0 {
		return []timesheet.DayShift{}
	}

	groups := make(map[shiftKey][]punch.Punch)
	for _, p := range punches {
		local := p.PunchedAt.In(loc)
		key := shiftKey{employeeID: p.EmployeeID, year: local.Year(), month: local.Month(), day: local.Day()}
		groups[key] = append(groups[key], p)
	}

	shifts := make([]timesheet.DayShift, 0, len(groups))
	for key, group := range groups {
		date := time.Date(key.year, key.month, key.day, 0, 0, 0, 0, loc)
		shifts = append(shifts, buildShift(key.employeeID, date, group, loc, deductBreaks))
	}

	sort.Slice(shifts, func(i, j int) bool {
		if !shifts[i].Date.Equal(shifts[j].Date) {
			return shifts[i].Date.Before(shifts[j].Date)
		}
		return shifts[i].EmployeeID < shifts[j].EmployeeID
	})
	return shifts
}

func buildShift(employeeID string, date time.Time, group []punch.Punch, loc *time.Location, deductBreaks bool) timesheet.DayShift {
	sort.SliceStable(group, func(i, j int) bool {
		if !group[i].PunchedAt.Equal(group[j].PunchedAt) {
			return group[i].PunchedAt.Before(group[j].PunchedAt)
		}
		return group[i].ID < group[j].ID
	})

	var start, end *time.Time
	for _, p := range group {
		at := p.PunchedAt.In(loc)
		switch p.Action {
		case punch.ActionArrive:
			if start == nil || at.Before(*start) {
				start = &at
			}
		case punch.ActionLeave:
			if end == nil || at.After(*end) {
				end = &at
			}
		}
	}

	shift := timesheet.DayShift{
		EmployeeID: employeeID,
		Date:       date,
		Start:      start,
		End:        end,
	}

	switch {
	case start != nil && end != nil && !end.Before(*start):
		shift.Status = timesheet.StatusCompleted
		shift.Worked = end.Sub(*start)
		if deductBreaks {
			shift.BreakTime = breakTime(group, *start, *end)
			shift.Worked -= shift.BreakTime
		}
	case start != nil:
		// Covers a leave recorded before the day's first arrive.
		shift.Status = timesheet.StatusStillWorking
	default:
		shift.Status = timesheet.StatusMissing
	}
	return shift
}

// breakTime sums the intervals from each break punch in [start, end) to the
// next punch of the day, capped at end. group must be sorted by time.
func breakTime(group []punch.Punch, start, end time.Time) time.Duration {
	var total time.Duration
	for i, p := range group {
		if p.Action != punch.ActionBreak {
			continue
		}
		at := p.PunchedAt
		if at.Before(start) || !at.Before(end) {
			continue
		}
		stop := end
		for _, next := range group[i+1:] {
			if next.PunchedAt.After(at) {
				if next.PunchedAt.Before(end) {
					stop = next.PunchedAt
				}
				break
			}
		}
		total += stop.Sub(at)
	}
	if total > end.Sub(start) {
		total = end.Sub(start)
	}
	return total
}
