package controller

import (
	"errors"

	"sprint_edu_backend/internal/middleware"
	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/service"
	"sprint_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReflectionController struct {
	ReflectionService *service.ReflectionService
}

func NewReflectionController(reflectionService *service.ReflectionService) *ReflectionController {
	return &ReflectionController{ReflectionService: reflectionService}
}

type ReflectionTextRequest struct {
	ReflectionText string `json:"reflection_text"`
}

type MarkReflectionRequest struct {
	ReflectionID  uint   `json:"reflection_id" binding:"required"`
	Score         *int   `json:"score" binding:"required"`
	AdminFeedback string `json:"admin_feedback"`
	Status        string `json:"status" binding:"required"`
}

// GetReflection godoc
// @Summary Fetch the caller's reflection for a lesson
// @Description Never 404s for the owner: a lesson with no reflection yet comes
// @Description back as an empty draft.
// @Tags reflections
// @Produce json
// @Param id path int true "lesson id"
// @Success 200 {object} model.LessonReflection
// @Failure 401 {object} util.ErrorResponse
// @Router /lessons/{id}/reflection [get]
func (c *ReflectionController) GetReflection(ctx *gin.Context) {
	userID := middleware.CallerID(ctx)
	lessonID := util.MustParseUint(ctx.Param("id"))
	if lessonID == 0 {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	reflection, err := c.ReflectionService.Get(userID, lessonID)
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}
	util.Success(ctx, reflection)
}

// SaveReflection godoc
// @Summary Save or overwrite the caller's draft for a lesson
// @Description Always forces the row back to draft, even if it was previously
// @Description submitted or marked.
// @Tags reflections
// @Accept json
// @Produce json
// @Param id path int true "lesson id"
// @Param body body ReflectionTextRequest true "draft text"
// @Success 200 {object} model.LessonReflection
// @Failure 400 {object} util.ErrorResponse
// @Router /lessons/{id}/reflection [post]
func (c *ReflectionController) SaveReflection(ctx *gin.Context) {
	userID := middleware.CallerID(ctx)
	lessonID := util.MustParseUint(ctx.Param("id"))
	if lessonID == 0 {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req ReflectionTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reflection, err := c.ReflectionService.SaveDraft(userID, lessonID, req.ReflectionText)
	if err != nil {
		if errors.Is(err, service.ErrEmptyReflection) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, reflection)
}

// SubmitReflection godoc
// @Summary Submit the caller's reflection for marking
// @Tags reflections
// @Accept json
// @Produce json
// @Param id path int true "lesson id"
// @Param body body ReflectionTextRequest true "reflection text"
// @Success 200 {object} model.LessonReflection
// @Failure 400 {object} util.ErrorResponse
// @Router /lessons/{id}/reflection/submit [post]
func (c *ReflectionController) SubmitReflection(ctx *gin.Context) {
	userID := middleware.CallerID(ctx)
	lessonID := util.MustParseUint(ctx.Param("id"))
	if lessonID == 0 {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req ReflectionTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reflection, err := c.ReflectionService.Submit(userID, lessonID, req.ReflectionText)
	if err != nil {
		if errors.Is(err, service.ErrEmptyReflection) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, reflection)
}

// ResubmitReflection godoc
// @Summary Resubmit a reflection after rejection
// @Description Unlike submit, resubmit only touches an existing row; with no
// @Description prior reflection it 404s instead of creating one.
// @Tags reflections
// @Accept json
// @Produce json
// @Param id path int true "lesson id"
// @Param body body ReflectionTextRequest true "revised text"
// @Success 200 {object} model.LessonReflection
// @Failure 404 {object} util.ErrorResponse
// @Router /lessons/{id}/reflection/resubmit [post]
func (c *ReflectionController) ResubmitReflection(ctx *gin.Context) {
	userID := middleware.CallerID(ctx)
	lessonID := util.MustParseUint(ctx.Param("id"))
	if lessonID == 0 {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req ReflectionTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reflection, err := c.ReflectionService.Resubmit(userID, lessonID, req.ReflectionText)
	if err != nil {
		if errors.Is(err, service.ErrEmptyReflection) {
			util.BadRequest(ctx, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "no reflection to resubmit")
			return
		}
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, reflection)
}

// ListSubmitted godoc
// @Summary List submitted reflections awaiting marking (admin)
// @Description Oldest submissions first, joined with the author and lesson.
// @Tags reflections
// @Produce json
// @Success 200 {array} model.SubmittedReflection
// @Failure 403 {object} util.ErrorResponse
// @Router /reflections/submitted [get]
func (c *ReflectionController) ListSubmitted(ctx *gin.Context) {
	reflections, err := c.ReflectionService.ListSubmitted()
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}
	util.Success(ctx, reflections)
}

// MarkReflection godoc
// @Summary Score a submitted reflection (admin)
// @Description Status must be "marked" or "rejected", score 0..10, feedback
// @Description non-empty. Rejected reflections can be resubmitted by their owner.
// @Tags reflections
// @Accept json
// @Produce json
// @Param body body MarkReflectionRequest true "marking payload"
// @Success 200 {object} model.LessonReflection
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /reflections/mark [post]
func (c *ReflectionController) MarkReflection(ctx *gin.Context) {
	var req MarkReflectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reflection, err := c.ReflectionService.Mark(req.ReflectionID, *req.Score, req.AdminFeedback, model.ReflectionStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMarkStatus),
			errors.Is(err, service.ErrScoreOutOfRange),
			errors.Is(err, service.ErrFeedbackRequired):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx, "reflection not found")
		default:
			util.HandleDBError(ctx, err)
		}
		return
	}

	util.Success(ctx, reflection)
}
