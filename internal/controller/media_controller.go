package controller

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"sprint_edu_backend/internal/config"
	"sprint_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// MediaController serves uploaded video files with byte-range support and
// provides the SPA fallback for non-API routes.
type MediaController struct {
	UploadRoot string
	Web        config.WebConfig
}

func NewMediaController(cfg *config.Config) *MediaController {
	return &MediaController{
		UploadRoot: cfg.Storage.LocalPath,
		Web:        cfg.Web,
	}
}

// ServeUpload godoc
// @Summary Stream an uploaded file
// @Description Honors single-span Range requests with 206 and Content-Range.
// @Description A syntactically valid but unsatisfiable or malformed Range gets
// @Description 416; no Range header streams the whole file with 200.
// @Tags media
// @Produce octet-stream
// @Param filepath path string true "file path under the upload root"
// @Success 200 {file} binary
// @Success 206 {file} binary
// @Failure 404 {object} util.ErrorResponse
// @Failure 416 {object} util.ErrorResponse
// @Router /uploads/{filepath} [get]
func (c *MediaController) ServeUpload(ctx *gin.Context) {
	rel := strings.TrimPrefix(ctx.Param("filepath"), "/")
	// Clean with a leading slash pins the path under the upload root
	full := filepath.Join(c.UploadRoot, filepath.Clean("/"+rel))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		util.NotFound(ctx, "file not found")
		return
	}
	size := info.Size()

	contentType := util.MimeOctetStream
	if strings.EqualFold(filepath.Ext(full), ".mp4") {
		contentType = util.MimeMP4
	}

	f, err := os.Open(full)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer f.Close()

	rangeHeader := ctx.GetHeader("Range")
	if rangeHeader == "" {
		ctx.DataFromReader(http.StatusOK, size, contentType, f, map[string]string{
			"Accept-Ranges": "bytes",
		})
		return
	}

	br, err := util.ParseRange(rangeHeader, size)
	if err != nil {
		ctx.Header("Content-Range", fmt.Sprintf("bytes */%d", size))
		util.Error(ctx, http.StatusRequestedRangeNotSatisfiable, err.Error())
		return
	}

	if _, err := f.Seek(br.Start, 0); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// DataFromReader copies until EOF regardless of the declared length, so
	// the reader itself must stop at the end of the span.
	body := io.LimitReader(f, br.Length())
	ctx.DataFromReader(http.StatusPartialContent, br.Length(), contentType, body, map[string]string{
		"Accept-Ranges": "bytes",
		"Content-Range": br.ContentRange(size),
	})
}

// SPAFallback hands every unmatched GET outside /api to the frontend bundle:
// a real file under dist is served as-is, anything else gets index.html so
// client-side routing can take over. API misses stay JSON 404s.
func (c *MediaController) SPAFallback(ctx *gin.Context) {
	path := ctx.Request.URL.Path
	if ctx.Request.Method != http.MethodGet || strings.HasPrefix(path, "/api") {
		util.NotFound(ctx, "route not found")
		return
	}

	candidate := filepath.Join(c.Web.DistPath, filepath.Clean("/"+path))
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		ctx.File(candidate)
		return
	}

	index := filepath.Join(c.Web.DistPath, c.Web.Index)
	if _, err := os.Stat(index); err != nil {
		util.NotFound(ctx, "route not found")
		return
	}
	ctx.File(index)
}
