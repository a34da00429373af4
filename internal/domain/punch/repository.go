package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, punch Punch) (Punch, error)
	GetByID(ctx context.Context, id int64) (Punch, error)
	// List returns punches ordered by time, then id.
	List(ctx context.Context, filter PunchFilter) ([]Punch, error)
	Delete(ctx context.Context, id int64) error
	// Replace deletes the punch with id and inserts replacement in one transaction.
	Replace(ctx context.Context, id int64, replacement Punch) (Punch, error)
}

// PunchFilter selects punches. From is inclusive, To exclusive; nil bounds are open.
type PunchFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
}
