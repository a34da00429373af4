package postgresql

import (
	"context"
	"fmt"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/database"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id             VARCHAR(36) PRIMARY KEY,
		username       VARCHAR(50) NOT NULL UNIQUE,
		password_hash  TEXT NOT NULL,
		role           VARCHAR(20) NOT NULL DEFAULT 'employee',
		display_name   VARCHAR(255) NOT NULL,
		department     VARCHAR(255),
		job_title      VARCHAR(255),
		vacation_quota INTEGER,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS punches (
		id          BIGSERIAL PRIMARY KEY,
		employee_id VARCHAR(36) NOT NULL,
		activity    VARCHAR(255) NOT NULL DEFAULT '',
		action      VARCHAR(10) NOT NULL,
		punched_at  TIMESTAMPTZ NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_punches_employee_time ON punches (employee_id, punched_at)`,
	`CREATE TABLE IF NOT EXISTS absence_requests (
		id          BIGSERIAL PRIMARY KEY,
		employee_id VARCHAR(36) NOT NULL,
		start_date  DATE NOT NULL,
		end_date    DATE NOT NULL,
		kind        VARCHAR(20) NOT NULL,
		comment     TEXT NOT NULL DEFAULT '',
		status      VARCHAR(20) NOT NULL DEFAULT 'pending',
		admin_note  TEXT,
		decided_by  VARCHAR(36),
		decided_at  TIMESTAMPTZ,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_absence_requests_employee ON absence_requests (employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_absence_requests_status ON absence_requests (status)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
