package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Conflict("email already exists"), http.StatusBadRequest},
		{Auth("Invalid email or password"), http.StatusUnauthorized},
		{NotFound("Interview not found"), http.StatusNotFound},
		{Generation("AI failed", nil), http.StatusInternalServerError},
		{Internal("boom", nil), http.StatusInternalServerError},
		{ErrDatabaseUnavailable, http.StatusInternalServerError},
		{newError(KindRateLimited, "slow down", nil), http.StatusTooManyRequests},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Status(), tc.err.Message)
	}
}

func TestFromTranslation(t *testing.T) {
	e := From(gorm.ErrRecordNotFound, "Interview not found")
	assert.Equal(t, KindNotFound, e.Kind)
	assert.Equal(t, "Interview not found", e.Message)

	e = From(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`), "")
	assert.Equal(t, KindConflict, e.Kind)

	e = From(errors.New("UNIQUE constraint failed: users.email"), "")
	assert.Equal(t, KindConflict, e.Kind)

	e = From(errors.New("connection refused"), "")
	assert.Equal(t, KindInternal, e.Kind)
	assert.Equal(t, "Internal server error", e.Message)
}

func TestFromPassesThroughClassifiedErrors(t *testing.T) {
	original := Auth("Invalid email or password")
	wrapped := fmt.Errorf("login: %w", original)

	e := From(wrapped, "")
	assert.Same(t, original, e)
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	e := Internal("Internal server error", cause)
	assert.True(t, errors.Is(e, cause))
	assert.Contains(t, e.Error(), "connection refused")
}
