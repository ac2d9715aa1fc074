package controller

import (
	"sprint_edu_backend/internal/middleware"
	"sprint_edu_backend/internal/service"
	"sprint_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type SaveProgressRequest struct {
	SprintID    uint `json:"sprint_id" binding:"required"`
	Progress    *int `json:"progress_percentage" binding:"required"`
	IsCompleted bool `json:"is_completed"`
}

// GetProgress godoc
// @Summary Fetch the caller's progress across all sprints
// @Description Returns a map keyed by "sprint_<id>". Percentages are clamped
// @Description to 0..100 on the way out.
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]model.ProgressEntry
// @Failure 401 {object} util.ErrorResponse
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID := middleware.CallerID(ctx)

	entries, err := c.ProgressService.GetProgressMap(userID)
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// SaveProgress godoc
// @Summary Upsert the caller's progress for one sprint
// @Description Stores the payload verbatim; progress and is_completed are
// @Description independent fields and neither is derived from the other.
// @Tags progress
// @Accept json
// @Produce json
// @Param body body SaveProgressRequest true "progress payload"
// @Success 200 {object} model.SprintProgress
// @Failure 400 {object} util.ErrorResponse
// @Router /progress [post]
func (c *ProgressController) SaveProgress(ctx *gin.Context) {
	userID := middleware.CallerID(ctx)

	var req SaveProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.SaveProgress(userID, req.SprintID, *req.Progress, req.IsCompleted)
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
