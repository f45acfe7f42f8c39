package binding

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/deppfellow/hello-mvc/internal/errs"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// ReadBody reads the whole body of r as text.
//
// A charset parameter on Content-Type other than UTF-8 is honored: the
// bytes are transcoded to UTF-8 first. Unknown charsets are rejected.
func ReadBody(r *http.Request) (string, error) {
	charset := requestCharset(r)
	if charset == "" || strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8") {
		return ReadBodyUTF8(r)
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", errs.NewBodyReadError(fmt.Errorf("unsupported charset %q: %w", charset, err))
	}

	if r.Body == nil {
		return "", nil
	}

	b, err := io.ReadAll(enc.NewDecoder().Reader(r.Body))
	if err != nil {
		return "", readError(err)
	}

	return string(b), nil
}

// ReadBodyUTF8 reads the whole body of r as UTF-8 regardless of any
// declared charset. Every invalid byte becomes one U+FFFD.
func ReadBodyUTF8(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", nil
	}

	b, err := io.ReadAll(unicode.UTF8.NewDecoder().Reader(r.Body))
	if err != nil {
		return "", readError(err)
	}

	return string(b), nil
}

// BindJSON decodes a JSON body into target using the Echo instance's
// serializer.
func BindJSON(c echo.Context, target any) error {
	if err := c.Echo().JSONSerializer.Deserialize(c, target); err != nil {
		return readError(err)
	}
	return nil
}

// readError keeps the body limit's 413 intact and classifies everything
// else as a body read failure.
func readError(err error) error {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Code == http.StatusRequestEntityTooLarge {
		return echoErr
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return echo.ErrStatusRequestEntityTooLarge
	}

	return errs.NewBodyReadError(err)
}

func requestCharset(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}

	return params["charset"]
}
