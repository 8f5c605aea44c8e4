package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "User name is required.")
	assert.Equal(t, "User name is required.", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())

	empty := NewValidationError("email", "")
	assert.Equal(t, "email is invalid", empty.Error())
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("user", "")
	assert.Equal(t, "user not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError("failed to save user", cause)

	assert.Equal(t, "failed to save user: disk full", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatuser(t *testing.T) {
	for _, err := range []error{
		NewValidationError("name", "bad"),
		NewNotFoundError("user", ""),
		NewInternalError("boom", nil),
	} {
		var hs HTTPStatuser
		assert.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &hs)
	}
}
