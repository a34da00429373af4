package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"gorm.io/gorm"
)

type absenceRepositoryImpl struct {
	db *gorm.DB
}

func NewAbsenceRepository(db *gorm.DB) absence.AbsenceRepository {
	return &absenceRepositoryImpl{db: db}
}

// Create implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Create(ctx context.Context, request absence.AbsenceRequest) (absence.AbsenceRequest, error) {
	model := toAbsenceModel(request)
	if model.Status == "" {
		model.Status = string(absence.StatusPending)
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return absence.AbsenceRequest{}, err
	}
	return model.toEntity(), nil
}

// GetByID implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id int64) (absence.AbsenceRequest, error) {
	return getAbsence(r.db.WithContext(ctx), id)
}

// List implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) List(ctx context.Context, filter absence.AbsenceFilter) ([]absence.AbsenceRequest, error) {
	query := r.db.WithContext(ctx).Model(&absenceModel{})
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Kind != nil {
		query = query.Where("kind = ?", string(*filter.Kind))
	}

	var models []absenceModel
	if err := query.Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	requests := make([]absence.AbsenceRequest, 0, len(models))
	for _, m := range models {
		requests = append(requests, m.toEntity())
	}
	return requests, nil
}

// Decide implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Decide(ctx context.Context, id int64, status absence.Status, note *string, decidedBy string) (absence.AbsenceRequest, error) {
	var decided absence.AbsenceRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		result := tx.Model(&absenceModel{}).
			Where("id = ? AND status = ?", id, string(absence.StatusPending)).
			Updates(map[string]interface{}{
				"status":     string(status),
				"admin_note": note,
				"decided_by": decidedBy,
				"decided_at": now,
				"updated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}

		current, err := getAbsence(tx, id)
		if err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return absence.ErrAbsenceAlreadyDecided
		}
		decided = current
		return nil
	})
	if err != nil {
		return absence.AbsenceRequest{}, err
	}
	return decided, nil
}

// Delete implements absence.AbsenceRepository.
func (r *absenceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&absenceModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return absence.ErrAbsenceRequestNotFound
	}
	return nil
}

func getAbsence(db *gorm.DB, id int64) (absence.AbsenceRequest, error) {
	var model absenceModel
	err := db.Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return absence.AbsenceRequest{}, absence.ErrAbsenceRequestNotFound
	}
	if err != nil {
		return absence.AbsenceRequest{}, err
	}
	return model.toEntity(), nil
}
