package app

import (
	"net/http"
	"testing"

	"sprint_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	a, _ := newTestApp(t)

	w := doRequest(t, a, http.MethodPost, "/api/signup", 0, map[string]string{
		"name":     "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.User
	decodeBody(t, w, &created)
	assert.Equal(t, "alice", created.Name)
	assert.Equal(t, model.RoleUser, created.Role)
	assert.NotContains(t, w.Body.String(), "password123")

	w = doRequest(t, a, http.MethodPost, "/api/login", 0, map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		User model.User `json:"user"`
	}
	decodeBody(t, w, &result)
	assert.Equal(t, created.ID, result.User.ID)
	assert.Equal(t, 1, result.User.StreakDays)
	assert.False(t, result.User.LastLogin.IsZero())
}

func TestSignupDuplicateEmail(t *testing.T) {
	a, _ := newTestApp(t)

	payload := map[string]string{
		"name":     "bob",
		"email":    "bob@example.com",
		"password": "password123",
	}
	w := doRequest(t, a, http.MethodPost, "/api/signup", 0, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, a, http.MethodPost, "/api/signup", 0, payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestSignupMissingFields(t *testing.T) {
	a, _ := newTestApp(t)

	w := doRequest(t, a, http.MethodPost, "/api/signup", 0, map[string]string{
		"name":     "carol",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email")
}

func TestLoginWrongPassword(t *testing.T) {
	a, db := newTestApp(t)
	createUser(t, db, "dave", model.RoleUser)

	w := doRequest(t, a, http.MethodPost, "/api/login", 0, map[string]string{
		"email":    "dave@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, a, http.MethodPost, "/api/login", 0, map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHeaderRequired(t *testing.T) {
	a, _ := newTestApp(t)

	w := doRequest(t, a, http.MethodGet, "/api/sprints", 0, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHeaderMalformed(t *testing.T) {
	a, _ := newTestApp(t)

	for _, raw := range []string{"abc", "-3", "0", "1.5"} {
		req := doRawHeaderRequest(t, a, raw)
		assert.Equal(t, http.StatusUnauthorized, req.Code, "header %q", raw)
	}
}
