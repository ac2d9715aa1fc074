package service

import (
	"errors"

	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/repository"

	"gorm.io/gorm"
)

type NoteService struct {
	repo *repository.NoteRepository
}

func NewNoteService(repo *repository.NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// GetNote returns the stored text, or an empty note when none was ever saved.
// "No note yet" is a normal state, never a 404.
func (s *NoteService) GetNote(userID uint, contentType string, contentID uint) (*model.UserNote, error) {
	note, err := s.repo.Find(userID, contentType, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.UserNote{
				UserID:      userID,
				ContentType: contentType,
				ContentID:   contentID,
				NoteText:    "",
			}, nil
		}
		return nil, err
	}
	return note, nil
}

// SaveNote upserts the text verbatim. The server never looks inside it; the
// code-vault content type stores a JSON-encoded snippet list here.
func (s *NoteService) SaveNote(userID uint, contentType string, contentID uint, text string) (*model.UserNote, error) {
	note := &model.UserNote{
		UserID:      userID,
		ContentType: contentType,
		ContentID:   contentID,
		NoteText:    text,
	}
	if err := s.repo.Upsert(note); err != nil {
		return nil, err
	}
	return note, nil
}
