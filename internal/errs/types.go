package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds for request resolution failures. The *HTTPError values
// built below wrap them, so callers can branch with errors.Is.
var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrTypeMismatch     = errors.New("type conversion failure")
	ErrBodyRead         = errors.New("body read failure")
)

// Codes used for request resolution failures.
const (
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeTypeMismatch     = "TYPE_MISMATCH"
	CodeBodyReadFailure  = "BODY_READ_FAILURE"
	CodeBindFailure      = "BIND_FAILURE"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code defaults to "BAD_REQUEST" when nil; errors and action are optional.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 HTTPError for the rate limiter.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a generic 500. The message is the status
// text; the real cause belongs in the logs, not in the response.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewMissingParameterError reports a required parameter that is absent and
// has no default. kind is the declared type name ("string", "int").
func NewMissingParameterError(name, kind string) *HTTPError {
	return &HTTPError{
		Code:    CodeMissingParameter,
		Message: fmt.Sprintf("Required request parameter '%s' for method parameter type %s is not present", name, kind),
		Status:  http.StatusBadRequest,
		Errors:  []FieldError{{Field: name, Error: "is required"}},
		cause:   ErrMissingParameter,
	}
}

// NewTypeMismatchError reports a raw value that could not be converted to
// the declared kind of the named parameter.
func NewTypeMismatchError(name, raw, kind string, err error) *HTTPError {
	return &HTTPError{
		Code:    CodeTypeMismatch,
		Message: fmt.Sprintf("Failed to convert value '%s' of parameter '%s' to %s", raw, name, kind),
		Status:  http.StatusBadRequest,
		Errors:  []FieldError{{Field: name, Error: fmt.Sprintf("must be a valid %s", kind)}},
		cause:   fmt.Errorf("%w: %w", ErrTypeMismatch, err),
	}
}

// NewBodyReadError reports a request body that could not be read or
// decoded in full.
func NewBodyReadError(err error) *HTTPError {
	return &HTTPError{
		Code:    CodeBodyReadFailure,
		Message: "Failed to read request body",
		Status:  http.StatusBadRequest,
		cause:   fmt.Errorf("%w: %w", ErrBodyRead, err),
	}
}

// NewBindError folds several resolution failures into a single 400 whose
// Errors list every offending parameter. A single failure is returned as is.
func NewBindError(failures []*HTTPError) *HTTPError {
	if len(failures) == 1 {
		return failures[0]
	}

	fields := make([]FieldError, 0, len(failures))
	causes := make([]error, 0, len(failures))
	for _, f := range failures {
		fields = append(fields, f.Errors...)
		causes = append(causes, f)
	}

	return &HTTPError{
		Code:    CodeBindFailure,
		Message: fmt.Sprintf("Failed to bind %d request parameters", len(failures)),
		Status:  http.StatusBadRequest,
		Errors:  fields,
		cause:   errors.Join(causes...),
	}
}

// ValidationError converts a validation failure into a 400.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}
