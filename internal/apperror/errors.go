package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// Kind classifies an error for HTTP translation.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
	KindGeneration
	KindUnavailable
	KindRateLimited
)

// Error carries a user-facing message, an HTTP status and optional
// field-level details. Wrapped causes stay available via errors.Unwrap.
type Error struct {
	Kind    Kind
	Message string
	Details []string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Status maps the kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func Validation(message string, details ...string) *Error {
	e := newError(KindValidation, message, nil)
	e.Details = details
	return e
}

func Auth(message string) *Error { return newError(KindAuth, message, nil) }

func NotFound(message string) *Error { return newError(KindNotFound, message, nil) }

func Conflict(message string) *Error { return newError(KindConflict, message, nil) }

func Generation(message string, cause error) *Error { return newError(KindGeneration, message, cause) }

func Internal(message string, cause error) *Error { return newError(KindInternal, message, cause) }

// ErrDatabaseUnavailable is returned by repositories when the process is
// running in degraded (DB-less) mode.
var ErrDatabaseUnavailable = newError(KindUnavailable, "Database is currently unavailable", nil)

// From translates arbitrary errors (gorm sentinels, duplicate keys) into the
// taxonomy. Already-classified errors pass through unchanged.
func From(err error, notFoundMessage string) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFoundMessage)
	}
	if isDuplicateKey(err) {
		return Conflict("Resource already exists")
	}
	return Internal("Internal server error", err)
}

// isDuplicateKey matches unique-constraint violations from both the Postgres
// driver (SQLSTATE 23505) and sqlite used in tests.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
