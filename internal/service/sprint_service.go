package service

import (
	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/repository"
	"sprint_edu_backend/internal/util"
)

type SprintService struct {
	repo *repository.SprintRepository
}

func NewSprintService(repo *repository.SprintRepository) *SprintService {
	return &SprintService{repo: repo}
}

func (s *SprintService) GetSprints() ([]model.Sprint, error) {
	return s.repo.FindAll()
}

func (s *SprintService) GetActive() (*model.Sprint, error) {
	return s.repo.FindActive()
}

func (s *SprintService) CreateSprint(sprint *model.Sprint) error {
	if sprint.MaxDuration <= 0 || sprint.MaxDuration > model.MaxSprintDuration {
		return util.ErrDurationOutOfRange
	}
	return s.repo.Create(sprint)
}

func (s *SprintService) DeleteSprint(id uint) error {
	return s.repo.Delete(id)
}

// Activate makes the target the only active sprint.
func (s *SprintService) Activate(id uint) (*model.Sprint, error) {
	if err := s.repo.Activate(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}
