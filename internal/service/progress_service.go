package service

import (
	"fmt"

	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/repository"
)

type ProgressService struct {
	repo *repository.ProgressRepository
}

func NewProgressService(repo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{repo: repo}
}

// GetProgressMap returns the caller's progress keyed "sprint_<id>". A sprint
// without a row is simply absent from the map; the client reads that as 0%,
// not completed. Percentages clamp to [0,100] on this read path only.
func (s *ProgressService) GetProgressMap(userID uint) (map[string]model.ProgressEntry, error) {
	rows, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	result := make(map[string]model.ProgressEntry, len(rows))
	for _, row := range rows {
		result[fmt.Sprintf("sprint_%d", row.SprintID)] = model.ProgressEntry{
			Progress:  clampPercent(row.Progress),
			Completed: row.Completed,
		}
	}
	return result, nil
}

// SaveProgress stores percentage and completed flag exactly as sent. The
// write contract puts clamping on the caller, and completed is NOT recomputed
// from the percentage. The two can disagree, and correcting that server-side
// would change observable behavior.
func (s *ProgressService) SaveProgress(userID, sprintID uint, percentage int, completed bool) (*model.SprintProgress, error) {
	progress := &model.SprintProgress{
		UserID:    userID,
		SprintID:  sprintID,
		Progress:  percentage,
		Completed: completed,
	}
	if err := s.repo.Upsert(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
