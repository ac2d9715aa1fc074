package app

import (
	"net/http"
	"testing"

	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Unexpected database failures must reach the server log, not just the
// generic 500 envelope.
func TestDeleteCategoryUnexpectedErrorLogged(t *testing.T) {
	a, db := newTestApp(t)
	admin := createUser(t, db, "admin", model.RoleAdmin)

	core, logs := observer.New(zap.ErrorLevel)
	old := logger.Log
	logger.Log = zap.New(core)
	defer func() { logger.Log = old }()

	require.NoError(t, db.Migrator().DropTable(&model.SkillCategory{}))

	w := doRequest(t, a, http.MethodDelete, "/api/categories/1", admin.ID, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.Equal(t, 1, logs.FilterMessage("internal server error").Len())
}
