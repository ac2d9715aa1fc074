package app

import (
	"fmt"
	"net/http"
	"testing"

	"sprint_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reflectionPath(lessonID uint, suffix string) string {
	return fmt.Sprintf("/api/lessons/%d/reflection%s", lessonID, suffix)
}

func TestReflectionFreshLessonReturnsEmptyDraft(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)
	category := createCategory(t, db, "Fundamentals")
	lesson := createLesson(t, db, "Pointers", category.ID)

	w := doRequest(t, a, http.MethodGet, reflectionPath(lesson.ID, ""), user.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reflection model.LessonReflection
	decodeBody(t, w, &reflection)
	assert.Equal(t, model.ReflectionDraft, reflection.Status)
	assert.Empty(t, reflection.ReflectionText)
	assert.Zero(t, reflection.ID)
}

func TestReflectionLifecycle(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)
	admin := createUser(t, db, "grader", model.RoleAdmin)
	category := createCategory(t, db, "Fundamentals")
	lesson := createLesson(t, db, "Slices", category.ID)

	// draft
	w := doRequest(t, a, http.MethodPost, reflectionPath(lesson.ID, ""), user.ID, map[string]string{
		"reflection_text": "first thoughts",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reflection model.LessonReflection
	decodeBody(t, w, &reflection)
	assert.Equal(t, model.ReflectionDraft, reflection.Status)
	assert.Equal(t, "first thoughts", reflection.ReflectionText)
	assert.Nil(t, reflection.SubmittedAt)

	// submit
	w = doRequest(t, a, http.MethodPost, reflectionPath(lesson.ID, "/submit"), user.ID, map[string]string{
		"reflection_text": "final thoughts",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &reflection)
	assert.Equal(t, model.ReflectionSubmitted, reflection.Status)
	require.NotNil(t, reflection.SubmittedAt)

	// admin sees it in the FIFO queue
	w = doRequest(t, a, http.MethodGet, "/api/reflections/submitted", admin.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var queue []model.SubmittedReflection
	decodeBody(t, w, &queue)
	require.Len(t, queue, 1)
	assert.Equal(t, reflection.ID, queue[0].ID)
	assert.Equal(t, "student", queue[0].UserName)
	assert.Equal(t, "Slices", queue[0].LessonTitle)

	// reject with feedback
	score := 4
	w = doRequest(t, a, http.MethodPost, "/api/reflections/mark", admin.ID, map[string]interface{}{
		"reflection_id":  reflection.ID,
		"score":          score,
		"admin_feedback": "needs more depth",
		"status":         "rejected",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &reflection)
	assert.Equal(t, model.ReflectionRejected, reflection.Status)
	require.NotNil(t, reflection.Score)
	assert.Equal(t, score, *reflection.Score)
	require.NotNil(t, reflection.AdminFeedback)
	assert.Equal(t, "needs more depth", *reflection.AdminFeedback)
	require.NotNil(t, reflection.MarkedAt)

	// rejected reflections leave the queue
	w = doRequest(t, a, http.MethodGet, "/api/reflections/submitted", admin.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &queue)
	assert.Empty(t, queue)

	// resubmit after rejection
	w = doRequest(t, a, http.MethodPost, reflectionPath(lesson.ID, "/resubmit"), user.ID, map[string]string{
		"reflection_text": "revised thoughts",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &reflection)
	assert.Equal(t, model.ReflectionSubmitted, reflection.Status)
	assert.Equal(t, "revised thoughts", reflection.ReflectionText)

	// mark as passed
	w = doRequest(t, a, http.MethodPost, "/api/reflections/mark", admin.ID, map[string]interface{}{
		"reflection_id":  reflection.ID,
		"score":          9,
		"admin_feedback": "much better",
		"status":         "marked",
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &reflection)
	assert.Equal(t, model.ReflectionMarked, reflection.Status)
}

func TestReflectionSubmitWhitespaceRejected(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)
	category := createCategory(t, db, "Fundamentals")
	lesson := createLesson(t, db, "Maps", category.ID)

	w := doRequest(t, a, http.MethodPost, reflectionPath(lesson.ID, "/submit"), user.ID, map[string]string{
		"reflection_text": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "reflection_text")
}

func TestReflectionResubmitWithoutPriorRow(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)
	category := createCategory(t, db, "Fundamentals")
	lesson := createLesson(t, db, "Channels", category.ID)

	w := doRequest(t, a, http.MethodPost, reflectionPath(lesson.ID, "/resubmit"), user.ID, map[string]string{
		"reflection_text": "out of nowhere",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReflectionMarkValidation(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)
	admin := createUser(t, db, "grader", model.RoleAdmin)
	category := createCategory(t, db, "Fundamentals")
	lesson := createLesson(t, db, "Interfaces", category.ID)

	w := doRequest(t, a, http.MethodPost, reflectionPath(lesson.ID, "/submit"), user.ID, map[string]string{
		"reflection_text": "thoughts",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var reflection model.LessonReflection
	decodeBody(t, w, &reflection)

	cases := []struct {
		name string
		body map[string]interface{}
		want int
	}{
		{"invalid status", map[string]interface{}{
			"reflection_id": reflection.ID, "score": 5, "admin_feedback": "ok", "status": "approved",
		}, http.StatusBadRequest},
		{"score too high", map[string]interface{}{
			"reflection_id": reflection.ID, "score": 11, "admin_feedback": "ok", "status": "marked",
		}, http.StatusBadRequest},
		{"feedback missing", map[string]interface{}{
			"reflection_id": reflection.ID, "score": 5, "admin_feedback": "  ", "status": "marked",
		}, http.StatusBadRequest},
		{"unknown reflection", map[string]interface{}{
			"reflection_id": 9999, "score": 5, "admin_feedback": "ok", "status": "marked",
		}, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, a, http.MethodPost, "/api/reflections/mark", admin.ID, tc.body)
			assert.Equal(t, tc.want, w.Code)
		})
	}

	// score zero is a valid mark
	w = doRequest(t, a, http.MethodPost, "/api/reflections/mark", admin.ID, map[string]interface{}{
		"reflection_id": reflection.ID, "score": 0, "admin_feedback": "start over", "status": "rejected",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReflectionQueueIsOldestFirst(t *testing.T) {
	a, db := newTestApp(t)
	admin := createUser(t, db, "grader", model.RoleAdmin)
	first := createUser(t, db, "first", model.RoleUser)
	second := createUser(t, db, "second", model.RoleUser)
	category := createCategory(t, db, "Fundamentals")
	lesson := createLesson(t, db, "Goroutines", category.ID)

	w := doRequest(t, a, http.MethodPost, reflectionPath(lesson.ID, "/submit"), first.ID, map[string]string{
		"reflection_text": "earlier",
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(t, a, http.MethodPost, reflectionPath(lesson.ID, "/submit"), second.ID, map[string]string{
		"reflection_text": "later",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, a, http.MethodGet, "/api/reflections/submitted", admin.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var queue []model.SubmittedReflection
	decodeBody(t, w, &queue)
	require.Len(t, queue, 2)
	assert.Equal(t, "first", queue[0].UserName)
	assert.Equal(t, "second", queue[1].UserName)
}
