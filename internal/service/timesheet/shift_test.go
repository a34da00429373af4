package timesheet

import (
	"testing"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var berlin = mustLoad("Europe/Berlin")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func at(day int, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, berlin)
}

func newPunch(id int64, employeeID string, action punch.Action, t time.Time) punch.Punch {
	return punch.Punch{ID: id, EmployeeID: employeeID, Action: action, PunchedAt: t, Activity: "Projekt Alpha"}
}

func TestReconstruct_Empty(t *testing.T) {
	shifts := Reconstruct(nil, berlin, false)

	assert.NotNil(t, shifts)
	assert.Empty(t, shifts)
}

func TestReconstruct_SingleArriveLeave(t *testing.T) {
	punches := []punch.Punch{
		newPunch(1, "max", punch.ActionArrive, at(4, 8, 0)),
		newPunch(2, "max", punch.ActionLeave, at(4, 16, 30)),
	}

	shifts := Reconstruct(punches, berlin, false)

	require.Len(t, shifts, 1)
	assert.Equal(t, timesheet.StatusCompleted, shifts[0].Status)
	assert.Equal(t, 8*time.Hour+30*time.Minute, shifts[0].Worked)
	assert.True(t, shifts[0].Date.Equal(time.Date(2024, time.March, 4, 0, 0, 0, 0, berlin)))
}

func TestReconstruct_DuplicatePunchesCollapseToMinMax(t *testing.T) {
	punches := []punch.Punch{
		newPunch(1, "max", punch.ActionArrive, at(4, 8, 0)),
		newPunch(2, "max", punch.ActionArrive, at(4, 8, 5)),
		newPunch(3, "max", punch.ActionLeave, at(4, 16, 0)),
		newPunch(4, "max", punch.ActionLeave, at(4, 17, 0)),
	}

	shifts := Reconstruct(punches, berlin, false)

	require.Len(t, shifts, 1)
	assert.Equal(t, 9*time.Hour, shifts[0].Worked)
	assert.True(t, shifts[0].Start.Equal(at(4, 8, 0)))
	assert.True(t, shifts[0].End.Equal(at(4, 17, 0)))
}

func TestReconstruct_Status(t *testing.T) {
	cases := []struct {
		name    string
		punches []punch.Punch
		want    timesheet.ShiftStatus
	}{
		{
			name:    "only arrive",
			punches: []punch.Punch{newPunch(1, "max", punch.ActionArrive, at(4, 8, 0))},
			want:    timesheet.StatusStillWorking,
		},
		{
			name:    "only break",
			punches: []punch.Punch{newPunch(1, "max", punch.ActionBreak, at(4, 12, 0))},
			want:    timesheet.StatusMissing,
		},
		{
			name:    "only leave",
			punches: []punch.Punch{newPunch(1, "max", punch.ActionLeave, at(4, 17, 0))},
			want:    timesheet.StatusMissing,
		},
		{
			name: "leave before arrive",
			punches: []punch.Punch{
				newPunch(1, "max", punch.ActionLeave, at(4, 7, 0)),
				newPunch(2, "max", punch.ActionArrive, at(4, 8, 0)),
			},
			want: timesheet.StatusStillWorking,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			shifts := Reconstruct(c.punches, berlin, false)

			require.Len(t, shifts, 1)
			assert.Equal(t, c.want, shifts[0].Status)
			assert.Equal(t, time.Duration(0), shifts[0].Worked)
		})
	}
}

func TestReconstruct_GroupsByEmployeeAndDate(t *testing.T) {
	punches := []punch.Punch{
		newPunch(1, "max", punch.ActionArrive, at(4, 8, 0)),
		newPunch(2, "erika", punch.ActionArrive, at(4, 9, 0)),
		newPunch(3, "max", punch.ActionLeave, at(4, 16, 0)),
		newPunch(4, "erika", punch.ActionLeave, at(4, 18, 0)),
		newPunch(5, "max", punch.ActionArrive, at(5, 8, 0)),
	}

	shifts := Reconstruct(punches, berlin, false)

	require.Len(t, shifts, 3)
	assert.Equal(t, "erika", shifts[0].EmployeeID)
	assert.Equal(t, 9*time.Hour, shifts[0].Worked)
	assert.Equal(t, "max", shifts[1].EmployeeID)
	assert.Equal(t, 8*time.Hour, shifts[1].Worked)
	assert.Equal(t, timesheet.StatusStillWorking, shifts[2].Status)
}

func TestReconstruct_CalendarDateFollowsLocation(t *testing.T) {
	// 23:30 UTC on March 3rd is already March 4th in Berlin.
	punches := []punch.Punch{
		newPunch(1, "max", punch.ActionArrive, time.Date(2024, time.March, 3, 23, 30, 0, 0, time.UTC)),
	}

	shifts := Reconstruct(punches, berlin, false)

	require.Len(t, shifts, 1)
	assert.Equal(t, 4, shifts[0].Date.Day())
}

func TestReconstruct_BreaksIgnoredByDefault(t *testing.T) {
	punches := []punch.Punch{
		newPunch(1, "max", punch.ActionArrive, at(4, 8, 0)),
		newPunch(2, "max", punch.ActionBreak, at(4, 12, 0)),
		newPunch(3, "max", punch.ActionArrive, at(4, 12, 30)),
		newPunch(4, "max", punch.ActionLeave, at(4, 17, 0)),
	}

	shifts := Reconstruct(punches, berlin, false)

	require.Len(t, shifts, 1)
	assert.Equal(t, 9*time.Hour, shifts[0].Worked)
	assert.Equal(t, time.Duration(0), shifts[0].BreakTime)
}

func TestReconstruct_DeductBreaks(t *testing.T) {
	cases := []struct {
		name      string
		punches   []punch.Punch
		wantBreak time.Duration
	}{
		{
			name: "break until next arrive",
			punches: []punch.Punch{
				newPunch(1, "max", punch.ActionArrive, at(4, 8, 0)),
				newPunch(2, "max", punch.ActionBreak, at(4, 12, 0)),
				newPunch(3, "max", punch.ActionArrive, at(4, 12, 30)),
				newPunch(4, "max", punch.ActionLeave, at(4, 17, 0)),
			},
			wantBreak: 30 * time.Minute,
		},
		{
			name: "break without following punch runs to end",
			punches: []punch.Punch{
				newPunch(1, "max", punch.ActionArrive, at(4, 8, 0)),
				newPunch(2, "max", punch.ActionBreak, at(4, 16, 15)),
				newPunch(3, "max", punch.ActionLeave, at(4, 17, 0)),
			},
			wantBreak: 45 * time.Minute,
		},
		{
			name: "break outside shift is ignored",
			punches: []punch.Punch{
				newPunch(1, "max", punch.ActionBreak, at(4, 7, 0)),
				newPunch(2, "max", punch.ActionArrive, at(4, 8, 0)),
				newPunch(3, "max", punch.ActionLeave, at(4, 17, 0)),
			},
			wantBreak: 0,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			shifts := Reconstruct(c.punches, berlin, true)

			require.Len(t, shifts, 1)
			assert.Equal(t, c.wantBreak, shifts[0].BreakTime)
			assert.Equal(t, 9*time.Hour-c.wantBreak, shifts[0].Worked)
		})
	}
}
