package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/database"
)

const uniqueViolation = "23505"

const employeeColumns = `id, username, password_hash, role, display_name, department, job_title,
		vacation_quota, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, username, password_hash, role, display_name, department, job_title,
			vacation_quota, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		e.ID,
		e.Username,
		e.PasswordHash,
		e.Role,
		e.DisplayName,
		e.Department,
		e.JobTitle,
		e.VacationQuota,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return employee.Employee{}, employee.ErrUsernameExists
		}
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

// GetByUsername implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUsername(ctx context.Context, username string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE username = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, username))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.Role != nil {
		args = append(args, *filter.Role)
		conditions = append(conditions, "role = $1")
	}

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY display_name ASC, id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET display_name = $2, department = $3, job_title = $4, vacation_quota = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query, e.ID, e.DisplayName, e.Department, e.JobTitle, e.VacationQuota))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return updated, err
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	return count, err
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Username,
		&e.PasswordHash,
		&e.Role,
		&e.DisplayName,
		&e.Department,
		&e.JobTitle,
		&e.VacationQuota,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}
