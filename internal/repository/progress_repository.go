package repository

import (
	"sprint_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.SprintProgress, error) {
	var rows []model.SprintProgress
	err := r.DB.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

// Upsert writes the row keyed on (user_id, sprint_id): at most one row per
// pair, last write wins. The database's atomic upsert is the only concurrency
// control here.
func (r *ProgressRepository) Upsert(progress *model.SprintProgress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "sprint_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"progress", "completed", "updated_at",
		}),
	}).Create(progress).Error
}
