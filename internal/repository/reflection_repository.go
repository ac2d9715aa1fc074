package repository

import (
	"sprint_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReflectionRepository struct {
	DB *gorm.DB
}

func NewReflectionRepository(db *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{DB: db}
}

func (r *ReflectionRepository) FindByUserAndLesson(userID, lessonID uint) (*model.LessonReflection, error) {
	var reflection model.LessonReflection
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&reflection).Error
	if err != nil {
		return nil, err
	}
	return &reflection, nil
}

func (r *ReflectionRepository) FindByID(id uint) (*model.LessonReflection, error) {
	var reflection model.LessonReflection
	err := r.DB.First(&reflection, id).Error
	if err != nil {
		return nil, err
	}
	return &reflection, nil
}

// Upsert writes the reflection keyed on (user_id, lesson_id), updating only
// the given columns on conflict. Transitions that must not create a row
// (resubmit, mark) go through Update instead.
func (r *ReflectionRepository) Upsert(reflection *model.LessonReflection, columns ...string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}).Create(reflection).Error
}

func (r *ReflectionRepository) Update(id uint, fields map[string]interface{}) error {
	result := r.DB.Model(&model.LessonReflection{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByStatus returns the grading queue joined with user and lesson display
// fields, oldest submission first.
func (r *ReflectionRepository) ListByStatus(status model.ReflectionStatus) ([]model.SubmittedReflection, error) {
	rows := []model.SubmittedReflection{}
	err := r.DB.Model(&model.LessonReflection{}).
		Select("lesson_reflections.id, lesson_reflections.user_id, lesson_reflections.lesson_id, "+
			"lesson_reflections.reflection_text, lesson_reflections.status, lesson_reflections.submitted_at, "+
			"users.name AS user_name, users.email AS user_email, lessons.title AS lesson_title").
		Joins("JOIN users ON users.id = lesson_reflections.user_id").
		Joins("JOIN lessons ON lessons.id = lesson_reflections.lesson_id").
		Where("lesson_reflections.status = ?", status).
		Order("lesson_reflections.submitted_at ASC").
		Scan(&rows).Error
	return rows, err
}
