package service

import (
	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/repository"
)

type LessonService struct {
	repo *repository.LessonRepository
}

func NewLessonService(repo *repository.LessonRepository) *LessonService {
	return &LessonService{repo: repo}
}

func (s *LessonService) GetLessons() ([]model.Lesson, error) {
	return s.repo.FindAll()
}

func (s *LessonService) GetLesson(id uint) (*model.Lesson, error) {
	return s.repo.FindByID(id)
}

func (s *LessonService) CreateLesson(lesson *model.Lesson) error {
	if lesson.Level == "" {
		lesson.Level = model.LevelBeginner
	}
	return s.repo.Create(lesson)
}

func (s *LessonService) UpdateLesson(lesson *model.Lesson) error {
	return s.repo.Update(lesson)
}

func (s *LessonService) DeleteLesson(id uint) error {
	return s.repo.Delete(id)
}
