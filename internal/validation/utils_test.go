package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/hello-mvc/internal/binding"
	"github.com/deppfellow/hello-mvc/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,min=3"`
	Age      int    `json:"age" validate:"min=0"`
}

func (s *signup) Fields() []binding.Field {
	return []binding.Field{
		binding.StringField(binding.Optional("username", binding.KindString), &s.Username),
		binding.IntField(binding.Optional("age", binding.KindInt), &s.Age),
	}
}

func (s *signup) Validate() error { return Struct(s) }

type note struct {
	Text string
}

func (n *note) BindBody(c echo.Context) error {
	text, err := binding.ReadBody(c.Request())
	n.Text = text
	return err
}

func (n *note) Validate() error {
	if strings.TrimSpace(n.Text) == "" {
		return CustomValidationErrors{{Field: "body", Message: "must not be blank"}}
	}
	return nil
}

func contextFor(method, target, body string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate_Params(t *testing.T) {
	var s signup
	err := BindAndValidate(contextFor(http.MethodGet, "/?username=kim&age=20", ""), &s)

	require.NoError(t, err)
	assert.Equal(t, signup{Username: "kim", Age: 20}, s)
}

func TestBindAndValidate_TagFailure(t *testing.T) {
	var s signup
	err := BindAndValidate(contextFor(http.MethodGet, "/?username=ab&age=-1", ""), &s)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 2)
	assert.Equal(t, errs.FieldError{Field: "username", Error: "must be at least 3 characters"}, httpErr.Errors[0])
	assert.Equal(t, errs.FieldError{Field: "age", Error: "must be at least 0"}, httpErr.Errors[1])
}

func TestBindAndValidate_BindingFailureReturnedAsIs(t *testing.T) {
	var s signup
	err := BindAndValidate(contextFor(http.MethodGet, "/?age=old", ""), &s)

	assert.True(t, errors.Is(err, errs.ErrTypeMismatch))
}

func TestBindAndValidate_Body(t *testing.T) {
	var n note
	require.NoError(t, BindAndValidate(contextFor(http.MethodPost, "/", "hello"), &n))
	assert.Equal(t, "hello", n.Text)
}

func TestBindAndValidate_CustomFailure(t *testing.T) {
	var n note
	err := BindAndValidate(contextFor(http.MethodPost, "/", "   "), &n)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, []errs.FieldError{{Field: "body", Error: "must not be blank"}}, httpErr.Errors)
}

func TestBindAndValidate_NoParams(t *testing.T) {
	assert.NoError(t, BindAndValidate(contextFor(http.MethodGet, "/?x=1", ""), &NoParams{}))
}
