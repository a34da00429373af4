package sqlite

import (
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"gorm.io/gorm"
)

type employeeModel struct {
	ID            string  `gorm:"primaryKey;type:varchar(36)"`
	Username      string  `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash  string  `gorm:"not null"`
	Role          string  `gorm:"type:varchar(20);not null;default:employee"`
	DisplayName   string  `gorm:"type:varchar(255);not null"`
	Department    *string `gorm:"type:varchar(255)"`
	JobTitle      *string `gorm:"type:varchar(255)"`
	VacationQuota *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (employeeModel) TableName() string {
	return "employees"
}

type punchModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID string    `gorm:"type:varchar(36);not null;index:idx_punches_employee_time,priority:1"`
	Activity   string    `gorm:"type:varchar(255);not null;default:''"`
	Action     string    `gorm:"type:varchar(10);not null"`
	PunchedAt  time.Time `gorm:"not null;index:idx_punches_employee_time,priority:2"`
	CreatedAt  time.Time
}

func (punchModel) TableName() string {
	return "punches"
}

type absenceModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID string    `gorm:"type:varchar(36);not null;index"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	Kind       string    `gorm:"type:varchar(20);not null"`
	Comment    string    `gorm:"not null;default:''"`
	Status     string    `gorm:"type:varchar(20);not null;default:pending;index"`
	AdminNote  *string
	DecidedBy  *string `gorm:"type:varchar(36)"`
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (absenceModel) TableName() string {
	return "absence_requests"
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&employeeModel{}, &punchModel{}, &absenceModel{})
}

func toEmployeeModel(e employee.Employee) employeeModel {
	return employeeModel{
		ID:            e.ID,
		Username:      e.Username,
		PasswordHash:  e.PasswordHash,
		Role:          string(e.Role),
		DisplayName:   e.DisplayName,
		Department:    e.Department,
		JobTitle:      e.JobTitle,
		VacationQuota: e.VacationQuota,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (m employeeModel) toEntity() employee.Employee {
	return employee.Employee{
		ID:            m.ID,
		Username:      m.Username,
		PasswordHash:  m.PasswordHash,
		Role:          employee.Role(m.Role),
		DisplayName:   m.DisplayName,
		Department:    m.Department,
		JobTitle:      m.JobTitle,
		VacationQuota: m.VacationQuota,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// Instants are stored in UTC so range filters compare consistently.
func toPunchModel(p punch.Punch) punchModel {
	return punchModel{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Activity:   p.Activity,
		Action:     string(p.Action),
		PunchedAt:  p.PunchedAt.UTC(),
		CreatedAt:  p.CreatedAt,
	}
}

func (m punchModel) toEntity() punch.Punch {
	return punch.Punch{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Activity:   m.Activity,
		Action:     punch.Action(m.Action),
		PunchedAt:  m.PunchedAt,
		CreatedAt:  m.CreatedAt,
	}
}

func toAbsenceModel(a absence.AbsenceRequest) absenceModel {
	return absenceModel{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		StartDate:  dateOnly(a.StartDate),
		EndDate:    dateOnly(a.EndDate),
		Kind:       string(a.Kind),
		Comment:    a.Comment,
		Status:     string(a.Status),
		AdminNote:  a.AdminNote,
		DecidedBy:  a.DecidedBy,
		DecidedAt:  a.DecidedAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (m absenceModel) toEntity() absence.AbsenceRequest {
	return absence.AbsenceRequest{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		StartDate:  dateOnly(m.StartDate),
		EndDate:    dateOnly(m.EndDate),
		Kind:       absence.Kind(m.Kind),
		Comment:    m.Comment,
		Status:     absence.Status(m.Status),
		AdminNote:  m.AdminNote,
		DecidedBy:  m.DecidedBy,
		DecidedAt:  m.DecidedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
