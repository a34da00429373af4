package punch

import (
	"time"
)

// Punch is one clock event. Punches are append-only; corrections delete and
// re-insert.
type Punch struct {
	ID         int64
	EmployeeID string
	Activity   string
	Action     Action
	PunchedAt  time.Time
	CreatedAt  time.Time
}

type Action string

const (
	ActionArrive Action = "arrive"
	ActionBreak  Action = "break"
	ActionLeave  Action = "leave"
)

func (a Action) IsValid() bool {
	return a == ActionArrive || a == ActionBreak || a == ActionLeave
}
