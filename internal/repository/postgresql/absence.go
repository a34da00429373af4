package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/database"
)

const absenceColumns = `id, employee_id, start_date, end_date, kind, comment, status,
		admin_note, decided_by, decided_at, created_at, updated_at`

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, request absence.AbsenceRequest) (absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	status := request.Status
	if status == "" {
		status = absence.StatusPending
	}

	query := `
		INSERT INTO absence_requests (
			employee_id, start_date, end_date, kind, comment, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + absenceColumns

	return scanAbsence(q.QueryRow(ctx, query,
		request.EmployeeID,
		request.StartDate,
		request.EndDate,
		request.Kind,
		request.Comment,
		status,
	))
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id int64) (absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAbsence(q.QueryRow(ctx, `SELECT `+absenceColumns+` FROM absence_requests WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return absence.AbsenceRequest{}, absence.ErrAbsenceRequestNotFound
	}
	return a, err
}

// List implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) List(ctx context.Context, filter absence.AbsenceFilter) ([]absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Kind != nil {
		args = append(args, *filter.Kind)
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}

	query := `SELECT ` + absenceColumns + ` FROM absence_requests`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []absence.AbsenceRequest{}
	for rows.Next() {
		a, err := scanAbsence(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, a)
	}
	return requests, rows.Err()
}

// Decide implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Decide(ctx context.Context, id int64, status absence.Status, note *string, decidedBy string) (absence.AbsenceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_requests
		SET status = $2, admin_note = $3, decided_by = $4, decided_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + absenceColumns

	decided, err := scanAbsence(q.QueryRow(ctx, query, id, status, note, decidedBy))
	if errors.Is(err, pgx.ErrNoRows) {
		// Either missing or no longer pending.
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return absence.AbsenceRequest{}, getErr
		}
		return absence.AbsenceRequest{}, absence.ErrAbsenceAlreadyDecided
	}
	return decided, err
}

// Delete implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM absence_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absence.ErrAbsenceRequestNotFound
	}
	return nil
}

func scanAbsence(row pgx.Row) (absence.AbsenceRequest, error) {
	var a absence.AbsenceRequest
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.StartDate,
		&a.EndDate,
		&a.Kind,
		&a.Comment,
		&a.Status,
		&a.AdminNote,
		&a.DecidedBy,
		&a.DecidedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}
