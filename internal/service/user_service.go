package service

import (
	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/repository"
	"sprint_edu_backend/internal/util"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetUsers() ([]model.User, error) {
	return s.repo.FindAll()
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	return s.repo.FindByID(id)
}

func (s *UserService) UpdateRole(id uint, role string) error {
	if role != string(model.RoleUser) && role != string(model.RoleAdmin) {
		return util.ErrInvalidRole
	}
	return s.repo.UpdateRole(id, model.UserRole(role))
}

// DeleteUser removes the row; owned progress/notes/reflections go with it via
// the schema's cascading foreign keys, not application code.
func (s *UserService) DeleteUser(id uint) error {
	return s.repo.Delete(id)
}
