package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"gorm.io/gorm"
)

type employeeRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	model := toEmployeeModel(e)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return employee.Employee{}, employee.ErrUsernameExists
		}
		return employee.Employee{}, err
	}
	return model.toEntity(), nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	var model employeeModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}
	return model.toEntity(), nil
}

// GetByUsername implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUsername(ctx context.Context, username string) (employee.Employee, error) {
	var model employeeModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}
	return model.toEntity(), nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	query := r.db.WithContext(ctx).Model(&employeeModel{})
	if filter.Role != nil {
		query = query.Where("role = ?", string(*filter.Role))
	}

	var models []employeeModel
	if err := query.Order("display_name ASC, id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	employees := make([]employee.Employee, 0, len(models))
	for _, m := range models {
		employees = append(employees, m.toEntity())
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	result := r.db.WithContext(ctx).
		Model(&employeeModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"display_name":   e.DisplayName,
			"department":     e.Department,
			"job_title":      e.JobTitle,
			"vacation_quota": e.VacationQuota,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return employee.Employee{}, result.Error
	}
	if result.RowsAffected == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.GetByID(ctx, e.ID)
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&employeeModel{}).Count(&count).Error
	return count, err
}
