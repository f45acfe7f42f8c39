package errs

import "strings"

// FieldError points at the request parameter (or body field) that caused a
// failure.
//
// Example:
//
//	{ "field": "age", "error": "must be a valid int" }
type FieldError struct {
	// Field is the parameter name exactly as the client sent it (e.g. "age").
	Field string `json:"field"`

	// Error is a short human-readable explanation.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect asks the client to navigate to Action.Value.
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional follow-up instruction attached to an error.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type returned by handlers, binders and middleware.
//
// It serializes directly to the JSON error body:
//   - Code: machine-friendly code (e.g. "MISSING_PARAMETER").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: whether the error handler may replace Message.
//   - Errors: per-parameter details.
//   - Action: optional client instruction.
//
// The optional cause is never serialized; it keeps errors.Is working
// against the binding sentinels (ErrMissingParameter and friends).
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`

	cause error
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// Only the type is compared, so errors.Is(err, &HTTPError{}) answers
// "is this one of ours?" regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// Unwrap exposes the cause, if any.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// WithMessage returns a copy of e carrying a different message.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
		cause:    e.cause,
	}
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
