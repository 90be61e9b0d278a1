package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"null object", ErrNullObject, http.StatusBadRequest},
		{"not found", NotFound("No records found for this ID!"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("find person: %w", NotFound("gone")), http.StatusNotFound},
		{"unauthorized", Unauthorized("Invalid username/password supplied!"), http.StatusForbidden},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrNullObject, ErrInvalidInput)
	assert.NotErrorIs(t, ErrNullObject, ErrNotFound)
	assert.Equal(t, "It's not allowed to persist a null object!", ErrNullObject.Error())
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "gone", PublicMessage(fmt.Errorf("wrap: %w", NotFound("gone"))))
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("pq: relation does not exist")))
	assert.Equal(t, "FORBIDDEN", Code(Unauthorized("x")))
}

func TestValidationKeepsCause(t *testing.T) {
	cause := errors.New("title: cannot be blank")
	err := Validation(cause)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
	assert.Equal(t, "Validation failed", PublicMessage(err))
}
