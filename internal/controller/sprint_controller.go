package controller

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/service"
	"sprint_edu_backend/internal/util"
	"sprint_edu_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SprintController struct {
	SprintService *service.SprintService
	Storage       *service.StorageService
}

func NewSprintController(sprintService *service.SprintService, storage *service.StorageService) *SprintController {
	return &SprintController{
		SprintService: sprintService,
		Storage:       storage,
	}
}

type CreateSprintRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url" binding:"required"`
	MaxDuration  int    `json:"max_duration" binding:"required"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// GetSprints godoc
// @Summary List all sprints
// @Tags sprints
// @Produce json
// @Success 200 {array} model.Sprint
// @Router /sprints [get]
func (c *SprintController) GetSprints(ctx *gin.Context) {
	sprints, err := c.SprintService.GetSprints()
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}
	util.Success(ctx, sprints)
}

// GetActive godoc
// @Summary Fetch the currently active sprint
// @Tags sprints
// @Produce json
// @Success 200 {object} model.Sprint
// @Failure 404 {object} util.ErrorResponse
// @Router /sprints/active [get]
func (c *SprintController) GetActive(ctx *gin.Context) {
	sprint, err := c.SprintService.GetActive()
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}
	util.Success(ctx, sprint)
}

// CreateSprint godoc
// @Summary Create a sprint (admin)
// @Tags sprints
// @Accept json
// @Produce json
// @Param body body CreateSprintRequest true "sprint payload"
// @Success 201 {object} model.Sprint
// @Failure 400 {object} util.ErrorResponse
// @Router /sprints [post]
func (c *SprintController) CreateSprint(ctx *gin.Context) {
	var req CreateSprintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sprint := &model.Sprint{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		MaxDuration:  req.MaxDuration,
		ThumbnailURL: req.ThumbnailURL,
	}
	if err := c.SprintService.CreateSprint(sprint); err != nil {
		if errors.Is(err, util.ErrDurationOutOfRange) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.HandleDBError(ctx, err)
		return
	}

	util.Created(ctx, sprint)
}

// DeleteSprint godoc
// @Summary Delete a sprint (admin)
// @Tags sprints
// @Produce json
// @Param id path int true "sprint id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.ErrorResponse
// @Router /sprints/{id} [delete]
func (c *SprintController) DeleteSprint(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid sprint id")
		return
	}

	if err := c.SprintService.DeleteSprint(id); err != nil {
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// ActivateSprint godoc
// @Summary Make a sprint the only active one (admin)
// @Description Deactivates every other sprint and activates the target as one
// @Description transactional unit.
// @Tags sprints
// @Produce json
// @Param id path int true "sprint id"
// @Success 200 {object} model.Sprint
// @Failure 404 {object} util.ErrorResponse
// @Router /sprints/{id}/activate [post]
func (c *SprintController) ActivateSprint(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid sprint id")
		return
	}

	sprint, err := c.SprintService.Activate(id)
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, sprint)
}

// UploadVideo godoc
// @Summary Upload a sprint video (admin)
// @Description Sniffs the MIME type, probes duration with ffprobe (rejecting
// @Description anything over an hour) and generates a thumbnail frame.
// @Tags sprints
// @Accept mpfd
// @Produce json
// @Param video formData file true "video file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /sprints/upload [post]
func (c *SprintController) UploadVideo(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	allowed := false
	for _, e := range util.AllowedVideoExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, "unsupported video extension: "+ext)
		return
	}

	tmp, err := os.CreateTemp("", "sprint-upload-*"+ext)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := ctx.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	mimeType, err := util.ValidateMimeType(f, []string{util.MimeVideo, util.MimeOctetStream})
	f.Close()
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	duration := 0.0
	if info, err := util.GetVideoInfo(tmpPath); err != nil {
		// ffprobe missing or unreadable container; the duration bound is
		// still enforced against max_duration at sprint creation
		logger.Log.Warn("video probe failed", zap.Error(err))
	} else {
		duration = info.Duration
		if int(duration) > model.MaxSprintDuration {
			util.BadRequest(ctx, "video exceeds the one hour sprint limit")
			return
		}
	}

	name := uuid.New().String()
	videoURL, err := c.Storage.UploadFile(ctx.Request.Context(), name+ext, tmpPath, mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	thumbnailURL := ""
	if util.IsVideo(mimeType) {
		thumbPath := tmpPath + ".jpg"
		if err := util.GenerateThumbnail(tmpPath, thumbPath, "00:00:01"); err != nil {
			logger.Log.Warn("thumbnail generation failed", zap.Error(err))
		} else {
			defer os.Remove(thumbPath)
			thumbnailURL, err = c.Storage.UploadFile(ctx.Request.Context(), name+".jpg", thumbPath, "image/jpeg")
			if err != nil {
				logger.Log.Warn("thumbnail upload failed", zap.Error(err))
				thumbnailURL = ""
			}
		}
	}

	util.Success(ctx, gin.H{
		"video_url":     videoURL,
		"thumbnail_url": thumbnailURL,
		"duration":      duration,
	})
}
