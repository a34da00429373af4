package absence

import "context"

type AbsenceRepository interface {
	Create(ctx context.Context, request AbsenceRequest) (AbsenceRequest, error)
	GetByID(ctx context.Context, id int64) (AbsenceRequest, error)
	// List returns requests newest first.
	List(ctx context.Context, filter AbsenceFilter) ([]AbsenceRequest, error)
	// Decide moves a pending request to status. It fails with
	// ErrAbsenceAlreadyDecided when the request is no longer pending.
	Decide(ctx context.Context, id int64, status Status, note *string, decidedBy string) (AbsenceRequest, error)
	Delete(ctx context.Context, id int64) error
}

type AbsenceFilter struct {
	EmployeeID *string
	Status     *Status
	Kind       *Kind
}
