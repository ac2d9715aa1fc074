package controller

import (
	"sprint_edu_backend/internal/middleware"
	"sprint_edu_backend/internal/service"
	"sprint_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

type SaveNoteRequest struct {
	ContentType string `json:"content_type" binding:"required"`
	ContentID   uint   `json:"content_id" binding:"required"`
	NoteText    string `json:"note_text"`
}

// GetNote godoc
// @Summary Fetch the caller's note for one piece of content
// @Description A missing note is not an error; the response carries an empty
// @Description note_text so the client can always render an editor.
// @Tags notes
// @Produce json
// @Param contentType path string true "content type"
// @Param contentId path int true "content id"
// @Success 200 {object} model.UserNote
// @Failure 401 {object} util.ErrorResponse
// @Router /notes/{contentType}/{contentId} [get]
func (c *NoteController) GetNote(ctx *gin.Context) {
	userID := middleware.CallerID(ctx)
	contentType := ctx.Param("contentType")
	contentID := util.MustParseUint(ctx.Param("contentId"))
	if contentID == 0 {
		util.BadRequest(ctx, "invalid content id")
		return
	}

	note, err := c.NoteService.GetNote(userID, contentType, contentID)
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}
	util.Success(ctx, note)
}

// SaveNote godoc
// @Summary Upsert the caller's note for one piece of content
// @Tags notes
// @Accept json
// @Produce json
// @Param body body SaveNoteRequest true "note payload"
// @Success 200 {object} model.UserNote
// @Failure 400 {object} util.ErrorResponse
// @Router /notes [post]
func (c *NoteController) SaveNote(ctx *gin.Context) {
	userID := middleware.CallerID(ctx)

	var req SaveNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.SaveNote(userID, req.ContentType, req.ContentID, req.NoteText)
	if err != nil {
		util.HandleDBError(ctx, err)
		return
	}

	util.Success(ctx, note)
}
