package binding

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/hello-mvc/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestReadBody(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		contentType string
		want        string
	}{
		{name: "plain", body: []byte("abc"), contentType: "text/plain", want: "abc"},
		{name: "empty", body: nil, contentType: "", want: ""},
		{name: "utf-8 multibyte", body: []byte("안녕 hello"), contentType: "text/plain;charset=UTF-8", want: "안녕 hello"},
		{name: "latin-1 transcoded", body: []byte{'c', 'a', 'f', 0xE9}, contentType: "text/plain; charset=ISO-8859-1", want: "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			got, err := ReadBody(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadBody_UnknownCharset(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abc"))
	req.Header.Set("Content-Type", "text/plain; charset=x-not-a-charset")

	_, err := ReadBody(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrBodyRead))
}

func TestReadBodyUTF8_IgnoresDeclaredCharset(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte{'c', 'a', 'f', 0xE9}))
	req.Header.Set("Content-Type", "text/plain; charset=ISO-8859-1")

	got, err := ReadBodyUTF8(req)
	require.NoError(t, err)
	assert.Equal(t, "caf\uFFFD", got)
}

func TestReadBodyUTF8_ReplacesEachInvalidByte(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte{'a', 0xFF, 0xFE, 'b', 0xC3}))

	got, err := ReadBodyUTF8(req)
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFD\uFFFDb\uFFFD", got)
}

func TestReadBodyUTF8_ReadFailure(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", failingReader{})

	_, err := ReadBodyUTF8(req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrBodyRead))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestReadBodyUTF8_MaxBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789"))
	req.Body = http.MaxBytesReader(rec, req.Body, 4)

	_, err := ReadBodyUTF8(req)
	require.Error(t, err)

	var echoErr *echo.HTTPError
	require.True(t, errors.As(err, &echoErr))
	assert.Equal(t, http.StatusRequestEntityTooLarge, echoErr.Code)
}

func TestBindJSON(t *testing.T) {
	type payload struct {
		Username string `json:"username"`
		Age      int    `json:"age"`
	}

	e := echo.New()

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"kim","age":3}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())

		var p payload
		require.NoError(t, BindJSON(c, &p))
		assert.Equal(t, payload{Username: "kim", Age: 3}, p)
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":`))
		c := e.NewContext(req, httptest.NewRecorder())

		var p payload
		err := BindJSON(c, &p)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrBodyRead))
	})
}
