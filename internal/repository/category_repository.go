package repository

import (
	"sprint_edu_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindAll() ([]model.SkillCategory, error) {
	var categories []model.SkillCategory
	err := r.DB.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Create(category *model.SkillCategory) error {
	return r.DB.Create(category).Error
}

// Delete fails with a foreign-key error while lessons still reference the
// category; the caller maps that to 409 rather than 500.
func (r *CategoryRepository) Delete(id uint) error {
	result := r.DB.Delete(&model.SkillCategory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
