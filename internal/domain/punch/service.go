package punch

import "context"

type PunchService interface {
	// Clock records a punch for the caller at the current time.
	Clock(ctx context.Context, req ClockRequest) (PunchResponse, error)
	// Backfill records a punch for any employee at an explicit time (admin only).
	Backfill(ctx context.Context, req BackfillPunchRequest) (PunchResponse, error)
	// Correct replaces a punch by delete and insert (admin only).
	Correct(ctx context.Context, req CorrectPunchRequest) (PunchResponse, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, req ListPunchesRequest) ([]PunchResponse, error)
}
