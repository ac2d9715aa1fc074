package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyDBError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"unique violation", errors.New("UNIQUE constraint failed: users.email"), http.StatusConflict},
		{"fk violation", errors.New("FOREIGN KEY constraint failed"), http.StatusBadRequest},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, message := ClassifyDBError(tc.err)
			assert.Equal(t, tc.wantCode, code)
			assert.NotEmpty(t, message)
		})
	}
}
