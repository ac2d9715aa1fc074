package util

import (
	"net/http"

	"sprint_edu_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the envelope for every non-2xx response.
// swagger:model
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success writes the resource-specific payload as-is.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "admin access required")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}

// LogInternalError logs full detail server-side and returns the generic 500
// envelope; the client never sees driver-level messages.
func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("internal server error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	InternalServerError(c)
}

// HandleDBError maps a database error onto the error taxonomy and writes the
// matching envelope. Unmapped errors fall through to a logged 500.
func HandleDBError(c *gin.Context, err error) {
	code, message := ClassifyDBError(err)
	if code == http.StatusInternalServerError {
		LogInternalError(c, err)
		return
	}
	Error(c, code, message)
}
