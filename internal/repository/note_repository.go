package repository

import (
	"sprint_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Find(userID uint, contentType string, contentID uint) (*model.UserNote, error) {
	var note model.UserNote
	err := r.DB.Where("user_id = ? AND content_type = ? AND content_id = ?",
		userID, contentType, contentID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Upsert keys on (user_id, content_type, content_id); last write wins, no
// versioning.
func (r *NoteRepository) Upsert(note *model.UserNote) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "content_type"}, {Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"note_text", "updated_at",
		}),
	}).Create(note).Error
}
