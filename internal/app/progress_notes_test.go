package app

import (
	"fmt"
	"net/http"
	"testing"

	"sprint_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressUpsertLastWriteWins(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)
	sprint := createSprint(t, db, "week1", true)

	w := doRequest(t, a, http.MethodPost, "/api/progress", user.ID, map[string]interface{}{
		"sprint_id":           sprint.ID,
		"progress_percentage": 40,
		"is_completed":        false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, a, http.MethodPut, "/api/progress", user.ID, map[string]interface{}{
		"sprint_id":           sprint.ID,
		"progress_percentage": 80,
		"is_completed":        false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.SprintProgress{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = doRequest(t, a, http.MethodGet, "/api/progress", user.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var progressMap map[string]model.ProgressEntry
	decodeBody(t, w, &progressMap)
	entry, ok := progressMap[fmt.Sprintf("sprint_%d", sprint.ID)]
	require.True(t, ok)
	assert.Equal(t, 80, entry.Progress)
	assert.False(t, entry.Completed)
}

func TestProgressEmptyMapForNewUser(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)
	createSprint(t, db, "week1", true)

	w := doRequest(t, a, http.MethodGet, "/api/progress", user.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var progressMap map[string]model.ProgressEntry
	decodeBody(t, w, &progressMap)
	assert.Empty(t, progressMap)
}

// Percentage and completed are stored as sent and may disagree; the server
// does not derive one from the other.
func TestProgressFieldsStoredIndependently(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)
	sprint := createSprint(t, db, "week1", true)

	w := doRequest(t, a, http.MethodPost, "/api/progress", user.ID, map[string]interface{}{
		"sprint_id":           sprint.ID,
		"progress_percentage": 50,
		"is_completed":        true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored model.SprintProgress
	require.NoError(t, db.First(&stored, "user_id = ? AND sprint_id = ?", user.ID, sprint.ID).Error)
	assert.Equal(t, 50, stored.Progress)
	assert.True(t, stored.Completed)
}

func TestProgressClampsOnRead(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)
	sprint := createSprint(t, db, "week1", true)

	w := doRequest(t, a, http.MethodPost, "/api/progress", user.ID, map[string]interface{}{
		"sprint_id":           sprint.ID,
		"progress_percentage": 250,
		"is_completed":        true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// stored verbatim
	var stored model.SprintProgress
	require.NoError(t, db.First(&stored, "user_id = ? AND sprint_id = ?", user.ID, sprint.ID).Error)
	assert.Equal(t, 250, stored.Progress)

	// clamped on the way out
	w = doRequest(t, a, http.MethodGet, "/api/progress", user.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var progressMap map[string]model.ProgressEntry
	decodeBody(t, w, &progressMap)
	assert.Equal(t, 100, progressMap[fmt.Sprintf("sprint_%d", sprint.ID)].Progress)
}

func TestNoteMissingReturnsEmptyText(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)

	w := doRequest(t, a, http.MethodGet, "/api/notes/lesson/42", user.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var note model.UserNote
	decodeBody(t, w, &note)
	assert.Empty(t, note.NoteText)
	assert.Equal(t, "lesson", note.ContentType)
	assert.Equal(t, uint(42), note.ContentID)
}

func TestNoteUpsertOverwrites(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)

	w := doRequest(t, a, http.MethodPost, "/api/notes", user.ID, map[string]interface{}{
		"content_type": "lesson",
		"content_id":   7,
		"note_text":    "v1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, a, http.MethodPost, "/api/notes", user.ID, map[string]interface{}{
		"content_type": "lesson",
		"content_id":   7,
		"note_text":    "v2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.UserNote{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = doRequest(t, a, http.MethodGet, "/api/notes/lesson/7", user.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var note model.UserNote
	decodeBody(t, w, &note)
	assert.Equal(t, "v2", note.NoteText)
}

func TestNoteStoresOpaquePayloadVerbatim(t *testing.T) {
	a, db := newTestApp(t)
	user := createUser(t, db, "student", model.RoleUser)

	payload := `[{"title":"swap","code":"a, b = b, a"}]`
	w := doRequest(t, a, http.MethodPost, "/api/notes", user.ID, map[string]interface{}{
		"content_type": "code_vault",
		"content_id":   1,
		"note_text":    payload,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var note model.UserNote
	require.NoError(t, db.First(&note, "user_id = ? AND content_type = ?", user.ID, "code_vault").Error)
	assert.Equal(t, payload, note.NoteText)
}

func TestNotesAreScopedPerUser(t *testing.T) {
	a, db := newTestApp(t)
	alice := createUser(t, db, "alice", model.RoleUser)
	bob := createUser(t, db, "bob", model.RoleUser)

	w := doRequest(t, a, http.MethodPost, "/api/notes", alice.ID, map[string]interface{}{
		"content_type": "lesson",
		"content_id":   3,
		"note_text":    "alice's note",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, a, http.MethodGet, "/api/notes/lesson/3", bob.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var note model.UserNote
	decodeBody(t, w, &note)
	assert.Empty(t, note.NoteText)
}
