package repository

import (
	"sprint_edu_backend/internal/model"

	"gorm.io/gorm"
)

type SprintRepository struct {
	DB *gorm.DB
}

func NewSprintRepository(db *gorm.DB) *SprintRepository {
	return &SprintRepository{DB: db}
}

func (r *SprintRepository) FindAll() ([]model.Sprint, error) {
	var sprints []model.Sprint
	err := r.DB.Order("id ASC").Find(&sprints).Error
	return sprints, err
}

func (r *SprintRepository) FindByID(id uint) (*model.Sprint, error) {
	var sprint model.Sprint
	err := r.DB.First(&sprint, id).Error
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (r *SprintRepository) FindActive() (*model.Sprint, error) {
	var sprint model.Sprint
	err := r.DB.Where("is_active = ?", true).First(&sprint).Error
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (r *SprintRepository) Create(sprint *model.Sprint) error {
	return r.DB.Create(sprint).Error
}

func (r *SprintRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.Sprint{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Activate enforces the singleton-active invariant: deactivate everything,
// then activate the target, as one transaction.
func (r *SprintRepository) Activate(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Sprint{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		result := tx.Model(&model.Sprint{}).
			Where("id = ?", id).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
