package errs

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusRequestEntityTooLarge)))
}

func TestNewMissingParameterError(t *testing.T) {
	err := NewMissingParameterError("username", "string")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeMissingParameter, err.Code)
	assert.Equal(t, []FieldError{{Field: "username", Error: "is required"}}, err.Errors)
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.NotErrorIs(t, err, ErrTypeMismatch)
}

func TestNewTypeMismatchError(t *testing.T) {
	_, cause := strconv.Atoi("abc")
	err := NewTypeMismatchError("age", "abc", "int", cause)

	assert.Equal(t, "Failed to convert value 'abc' of parameter 'age' to int", err.Message)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestNewBodyReadError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewBodyReadError(cause)

	assert.Equal(t, CodeBodyReadFailure, err.Code)
	assert.ErrorIs(t, err, ErrBodyRead)
	assert.ErrorIs(t, err, cause)
}

func TestNewBindError(t *testing.T) {
	single := NewMissingParameterError("age", "int")
	assert.Same(t, single, NewBindError([]*HTTPError{single}))

	err := NewBindError([]*HTTPError{
		NewMissingParameterError("username", "string"),
		NewTypeMismatchError("age", "x", "int", strconv.ErrSyntax),
	})

	assert.Equal(t, CodeBindFailure, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	require.Len(t, err.Errors, 2)
	assert.Equal(t, "username", err.Errors[0].Field)
	assert.Equal(t, "age", err.Errors[1].Field)
	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestHTTPError_Is(t *testing.T) {
	var err error = NewNotFoundError("Route not found", false, nil)

	assert.ErrorIs(t, err, &HTTPError{})
	assert.NotErrorIs(t, errors.New("plain"), &HTTPError{})
}

func TestHTTPError_WithMessage(t *testing.T) {
	orig := NewMissingParameterError("age", "int")
	copied := orig.WithMessage("age please")

	assert.Equal(t, "age please", copied.Error())
	assert.NotEqual(t, orig.Message, copied.Message)
	assert.ErrorIs(t, copied, ErrMissingParameter)
}

func TestNewBadRequestError_CustomCode(t *testing.T) {
	code := "CUSTOM"
	err := NewBadRequestError("nope", true, &code, nil, nil)

	assert.Equal(t, "CUSTOM", err.Code)
	assert.True(t, err.Override)

	assert.Equal(t, "BAD_REQUEST", NewBadRequestError("nope", false, nil, nil, nil).Code)
}
