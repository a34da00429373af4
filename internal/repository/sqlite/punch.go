package sqlite

import (
	"context"
	"errors"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"gorm.io/gorm"
)

type punchRepositoryImpl struct {
	db *gorm.DB
}

func NewPunchRepository(db *gorm.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	return createPunch(r.db.WithContext(ctx), p)
}

// GetByID implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id int64) (punch.Punch, error) {
	var model punchModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return punch.Punch{}, punch.ErrPunchNotFound
	}
	if err != nil {
		return punch.Punch{}, err
	}
	return model.toEntity(), nil
}

// List implements punch.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter punch.PunchFilter) ([]punch.Punch, error) {
	query := r.db.WithContext(ctx).Model(&punchModel{})
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.From != nil {
		query = query.Where("punched_at >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("punched_at < ?", filter.To.UTC())
	}

	var models []punchModel
	if err := query.Order("punched_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	punches := make([]punch.Punch, 0, len(models))
	for _, m := range models {
		punches = append(punches, m.toEntity())
	}
	return punches, nil
}

// Delete implements punch.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return deletePunch(r.db.WithContext(ctx), id)
}

// Replace implements punch.PunchRepository.
func (r *punchRepositoryImpl) Replace(ctx context.Context, id int64, replacement punch.Punch) (punch.Punch, error) {
	var created punch.Punch
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deletePunch(tx, id); err != nil {
			return err
		}
		var err error
		replacement.ID = 0
		created, err = createPunch(tx, replacement)
		return err
	})
	if err != nil {
		return punch.Punch{}, err
	}
	return created, nil
}

func createPunch(db *gorm.DB, p punch.Punch) (punch.Punch, error) {
	model := toPunchModel(p)
	if err := db.Create(&model).Error; err != nil {
		return punch.Punch{}, err
	}
	return model.toEntity(), nil
}

func deletePunch(db *gorm.DB, id int64) error {
	result := db.Where("id = ?", id).Delete(&punchModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return punch.ErrPunchNotFound
	}
	return nil
}
