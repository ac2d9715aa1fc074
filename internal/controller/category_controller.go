package controller

import (
	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/service"
	"sprint_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetCategories godoc
// @Summary List skill categories
// @Tags categories
// @Produce json
// @Success 200 {array} model.SkillCategory
// @Router /categories [get]
func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categories, err := c.CategoryService.GetCategories()
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// CreateCategory godoc
// @Summary Create a skill category (admin)
// @Tags categories
// @Accept json
// @Produce json
// @Param body body CreateCategoryRequest true "category payload"
// @Success 201 {object} model.SkillCategory
// @Failure 409 {object} util.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category := &model.SkillCategory{Name: req.Name}
	if err := c.CategoryService.CreateCategory(category); err != nil {
		util.HandleDBError(ctx, err)
		return
	}

	util.Created(ctx, category)
}

// DeleteCategory godoc
// @Summary Delete a skill category (admin)
// @Description Fails with 409 while lessons still reference the category.
// @Tags categories
// @Produce json
// @Param id path int true "category id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid category id")
		return
	}

	if err := c.CategoryService.DeleteCategory(id); err != nil {
		code, _ := util.ClassifyDBError(err)
		if code == 400 {
			// foreign key violation: lessons still point at this category
			util.Conflict(ctx, "category is still referenced by lessons")
			return
		}
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
