package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"sprint_edu_backend/internal/config"
	"sprint_edu_backend/internal/model"
	"sprint_edu_backend/internal/util"
	"sprint_edu_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestApp wires the full route table against an in-memory sqlite database
// so tests exercise the same middleware and handlers production runs.
func newTestApp(t *testing.T) (*App, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.SkillCategory{},
		&model.Sprint{},
		&model.Lesson{},
		&model.SprintProgress{},
		&model.UserNote{},
		&model.LessonReflection{},
	))

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080", Mode: "test"},
		Auth: config.AuthConfig{
			Mode:                "header",
			AdminFallbackUserID: 1,
		},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
		Web: config.WebConfig{
			DistPath: t.TempDir(),
			Index:    "index.html",
		},
	}

	a := &App{Config: cfg, DB: db}
	repos := a.initRepositories(db)
	services := a.initServices(repos, cfg)
	controllers := a.initControllers(services, db)

	router := gin.New()
	a.Router = router
	a.registerRoutes(router, controllers, repos, cfg)

	return a, db
}

func doRequest(t *testing.T, a *App, method, path string, userID uint, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		req.Header.Set(util.HeaderUserID, strconv.FormatUint(uint64(userID), 10))
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

// doRawHeaderRequest sends a GET /api/sprints with a verbatim X-User-Id value,
// bypassing the numeric formatting doRequest applies.
func doRawHeaderRequest(t *testing.T, a *App, headerValue string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/sprints", nil)
	req.Header.Set(util.HeaderUserID, headerValue)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createUser(t *testing.T, db *gorm.DB, name string, role model.UserRole) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) *model.SkillCategory {
	t.Helper()
	category := &model.SkillCategory{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createLesson(t *testing.T, db *gorm.DB, title string, categoryID uint) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{
		Title:            title,
		ReflectionPrompt: "What did you learn?",
		SkillCategoryID:  categoryID,
		Level:            model.LevelBeginner,
	}
	require.NoError(t, db.Create(lesson).Error)
	return lesson
}

func createSprint(t *testing.T, db *gorm.DB, title string, active bool) *model.Sprint {
	t.Helper()
	sprint := &model.Sprint{
		Title:       title,
		VideoURL:    "/uploads/" + title + ".mp4",
		MaxDuration: 600,
		IsActive:    active,
	}
	require.NoError(t, db.Create(sprint).Error)
	return sprint
}
