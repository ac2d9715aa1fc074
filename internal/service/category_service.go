package service

import (
	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/repository"
)

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetCategories() ([]model.SkillCategory, error) {
	return s.repo.FindAll()
}

func (s *CategoryService) CreateCategory(category *model.SkillCategory) error {
	return s.repo.Create(category)
}

func (s *CategoryService) DeleteCategory(id uint) error {
	return s.repo.Delete(id)
}
