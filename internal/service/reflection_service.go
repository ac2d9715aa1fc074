package service

import (
	"errors"
	"strings"
	"time"

	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrEmptyReflection   = errors.New("reflection_text is required")
	ErrFeedbackRequired  = errors.New("admin_feedback is required")
	ErrScoreOutOfRange   = errors.New("score must be between 0 and 10")
	ErrInvalidMarkStatus = errors.New(`status must be "marked" or "rejected"`)
)

// ReflectionService implements the reflection lifecycle:
//
//	draft -> submitted -> marked|rejected -> submitted (resubmit) -> ...
//
// Save and Submit upsert (first write creates the row), Resubmit and Mark
// require an existing row. A reflection can be resubmitted indefinitely.
type ReflectionService struct {
	repo *repository.ReflectionRepository
}

func NewReflectionService(repo *repository.ReflectionRepository) *ReflectionService {
	return &ReflectionService{repo: repo}
}

// Get returns the stored reflection, or a zero-value draft when the (user,
// lesson) pair has no row yet; a missing reflection is not an error.
func (s *ReflectionService) Get(userID, lessonID uint) (*model.LessonReflection, error) {
	reflection, err := s.repo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.LessonReflection{
				UserID:   userID,
				LessonID: lessonID,
				Status:   model.ReflectionDraft,
			}, nil
		}
		return nil, err
	}
	return reflection, nil
}

// SaveDraft upserts the text and forces status back to draft regardless of
// the prior state.
func (s *ReflectionService) SaveDraft(userID, lessonID uint, text string) (*model.LessonReflection, error) {
	if text == "" {
		return nil, ErrEmptyReflection
	}

	reflection := &model.LessonReflection{
		UserID:         userID,
		LessonID:       lessonID,
		ReflectionText: text,
		Status:         model.ReflectionDraft,
	}
	if err := s.repo.Upsert(reflection, "reflection_text", "status"); err != nil {
		return nil, err
	}
	return s.repo.FindByUserAndLesson(userID, lessonID)
}

// Submit upserts the text, sets status to submitted and stamps submitted_at.
// Allowed from any prior state, including submitted (idempotently).
func (s *ReflectionService) Submit(userID, lessonID uint, text string) (*model.LessonReflection, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReflection
	}

	now := time.Now()
	reflection := &model.LessonReflection{
		UserID:         userID,
		LessonID:       lessonID,
		ReflectionText: text,
		Status:         model.ReflectionSubmitted,
		SubmittedAt:    &now,
	}
	if err := s.repo.Upsert(reflection, "reflection_text", "status", "submitted_at"); err != nil {
		return nil, err
	}
	return s.repo.FindByUserAndLesson(userID, lessonID)
}

// Resubmit is Submit minus row creation: without an existing row it fails
// with not-found. The asymmetry is part of the contract.
func (s *ReflectionService) Resubmit(userID, lessonID uint, text string) (*model.LessonReflection, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReflection
	}

	existing, err := s.repo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.repo.Update(existing.ID, map[string]interface{}{
		"reflection_text": text,
		"status":          model.ReflectionSubmitted,
		"submitted_at":    &now,
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByUserAndLesson(userID, lessonID)
}

// Mark records the admin verdict. Score and feedback are both mandatory;
// status must be marked or rejected.
func (s *ReflectionService) Mark(reflectionID uint, score int, feedback string, status model.ReflectionStatus) (*model.LessonReflection, error) {
	if status != model.ReflectionMarked && status != model.ReflectionRejected {
		return nil, ErrInvalidMarkStatus
	}
	if score < 0 || score > 10 {
		return nil, ErrScoreOutOfRange
	}
	if strings.TrimSpace(feedback) == "" {
		return nil, ErrFeedbackRequired
	}

	now := time.Now()
	err := s.repo.Update(reflectionID, map[string]interface{}{
		"score":          score,
		"admin_feedback": feedback,
		"status":         status,
		"marked_at":      &now,
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(reflectionID)
}

// ListSubmitted returns the FIFO grading queue: submitted reflections only,
// oldest first.
func (s *ReflectionService) ListSubmitted() ([]model.SubmittedReflection, error) {
	return s.repo.ListByStatus(model.ReflectionSubmitted)
}
