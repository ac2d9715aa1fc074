package controller

import (
	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/service"
	"sprint_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

type LessonRequest struct {
	Title            string `json:"title" binding:"required"`
	CodeSnippet      string `json:"code_snippet"`
	Description      string `json:"description"`
	Challenge        string `json:"challenge"`
	ReflectionPrompt string `json:"reflection_prompt" binding:"required"`
	SkillCategoryID  uint   `json:"skill_category_id" binding:"required"`
	Level            string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
}

// GetLessons godoc
// @Summary List all lessons
// @Tags lessons
// @Produce json
// @Success 200 {array} model.Lesson
// @Router /lessons [get]
func (c *LessonController) GetLessons(ctx *gin.Context) {
	lessons, err := c.LessonService.GetLessons()
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// GetLesson godoc
// @Summary Fetch one lesson
// @Tags lessons
// @Produce json
// @Param id path int true "lesson id"
// @Success 200 {object} model.Lesson
// @Failure 404 {object} util.ErrorResponse
// @Router /lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	lesson, err := c.LessonService.GetLesson(id)
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// CreateLesson godoc
// @Summary Create a lesson (admin)
// @Tags lessons
// @Accept json
// @Produce json
// @Param body body LessonRequest true "lesson payload"
// @Success 201 {object} model.Lesson
// @Failure 400 {object} util.ErrorResponse
// @Router /lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson := &model.Lesson{
		Title:            req.Title,
		CodeSnippet:      req.CodeSnippet,
		Description:      req.Description,
		Challenge:        req.Challenge,
		ReflectionPrompt: req.ReflectionPrompt,
		SkillCategoryID:  req.SkillCategoryID,
		Level:            model.LessonLevel(req.Level),
	}
	if err := c.LessonService.CreateLesson(lesson); err != nil {
		util.HandleDBError(ctx, err)
		return
	}

	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Update a lesson (admin)
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "lesson id"
// @Param body body LessonRequest true "lesson payload"
// @Success 200 {object} model.Lesson
// @Failure 404 {object} util.ErrorResponse
// @Router /lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.GetLesson(id)
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}

	lesson.Title = req.Title
	lesson.CodeSnippet = req.CodeSnippet
	lesson.Description = req.Description
	lesson.Challenge = req.Challenge
	lesson.ReflectionPrompt = req.ReflectionPrompt
	lesson.SkillCategoryID = req.SkillCategoryID
	if req.Level != "" {
		lesson.Level = model.LessonLevel(req.Level)
	}
	lesson.SkillCategory = nil

	if err := c.LessonService.UpdateLesson(lesson); err != nil {
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson (admin)
// @Tags lessons
// @Produce json
// @Param id path int true "lesson id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	if err := c.LessonService.DeleteLesson(id); err != nil {
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
