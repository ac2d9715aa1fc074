package util

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrDurationOutOfRange = errors.New("max_duration must be between 1 and 3600 seconds")
	ErrInvalidRole        = errors.New("role must be one of: user, admin")
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

// ClassifyDBError maps a database error into the HTTP error taxonomy.
// Foreign-key violations indicate caller error, so they surface as 400
// rather than 500; duplicate unique keys surface as 409.
func ClassifyDBError(err error) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "resource not found"
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return http.StatusConflict, "duplicate entry"
		case mysqlErrRowIsReferenced, mysqlErrNoReferencedRow:
			return http.StatusBadRequest, "validation failed: referenced record is missing or still in use"
		}
	}

	// sqlite reports constraint violations as plain strings instead of
	// error numbers.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return http.StatusConflict, "duplicate entry"
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return http.StatusBadRequest, "validation failed: referenced record is missing or still in use"
	}

	return http.StatusInternalServerError, "internal server error"
}
