package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/database"
)

const punchColumns = `id, employee_id, activity, action, punched_at, created_at`

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (employee_id, activity, action, punched_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + punchColumns

	return scanPunch(q.QueryRow(ctx, query, p.EmployeeID, p.Activity, p.Action, p.PunchedAt.UTC()))
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id int64) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPunch(q.QueryRow(ctx, `SELECT `+punchColumns+` FROM punches WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return punch.Punch{}, punch.ErrPunchNotFound
	}
	return p, err
}

// List implements punch.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter punch.PunchFilter) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, filter.From.UTC())
		conditions = append(conditions, fmt.Sprintf("punched_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, filter.To.UTC())
		conditions = append(conditions, fmt.Sprintf("punched_at < $%d", len(args)))
	}

	query := `SELECT ` + punchColumns + ` FROM punches`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY punched_at ASC, id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	punches := []punch.Punch{}
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}
	return punches, rows.Err()
}

// Delete implements punch.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM punches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return punch.ErrPunchNotFound
	}
	return nil
}

// Replace implements punch.PunchRepository.
func (r *punchRepositoryImpl) Replace(ctx context.Context, id int64, replacement punch.Punch) (punch.Punch, error) {
	var created punch.Punch
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		if err := r.Delete(ctx, id); err != nil {
			return err
		}
		var err error
		created, err = r.Create(ctx, replacement)
		return err
	})
	if err != nil {
		return punch.Punch{}, err
	}
	return created, nil
}

func scanPunch(row pgx.Row) (punch.Punch, error) {
	var p punch.Punch
	err := row.Scan(&p.ID, &p.EmployeeID, &p.Activity, &p.Action, &p.PunchedAt, &p.CreatedAt)
	return p, err
}
