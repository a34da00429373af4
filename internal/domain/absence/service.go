package absence

import "context"

type AbsenceService interface {
	// Request submits a pending absence request for the caller, or for any
	// employee when the caller is an admin.
	Request(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)
	// Decide approves or rejects a pending request (admin only).
	Decide(ctx context.Context, req DecideAbsenceRequest) (AbsenceResponse, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (AbsenceResponse, error)
	List(ctx context.Context, req ListAbsencesRequest) ([]AbsenceResponse, error)
	ListPending(ctx context.Context) ([]AbsenceResponse, error)

	VacationStats(ctx context.Context, employeeID string) (VacationStats, error)
	SickDays(ctx context.Context, employeeID string) (SickDaysResponse, error)
}
