// Package respond writes handler results to the HTTP response.
//
// Each writer sets an explicit UTF-8 content type and refuses to write to a
// response that has already been committed: a response is written once.
package respond

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	MIMETextPlainUTF8       = "text/plain;charset=utf-8"
	MIMETextHTMLUTF8        = "text/html;charset=utf-8"
	MIMEApplicationJSONUTF8 = "application/json;charset=utf-8"
)

// ErrAlreadyWritten is returned when a second write is attempted.
var ErrAlreadyWritten = errors.New("response already written")

// Text writes body as text/plain.
func Text(c echo.Context, status int, body string) error {
	if c.Response().Committed {
		return ErrAlreadyWritten
	}
	return c.Blob(status, MIMETextPlainUTF8, []byte(body))
}

// JSON serializes v with the Echo instance's JSON serializer. A "pretty"
// query parameter indents the output.
func JSON(c echo.Context, status int, v any) error {
	if c.Response().Committed {
		return ErrAlreadyWritten
	}

	indent := ""
	if _, pretty := c.QueryParams()["pretty"]; pretty {
		indent = "  "
	}

	c.Response().Header().Set(echo.HeaderContentType, MIMEApplicationJSONUTF8)
	c.Response().WriteHeader(status)

	return c.Echo().JSONSerializer.Serialize(c, v, indent)
}

// View renders the named view with model through the registered renderer.
// Rendering happens into a buffer so a failing template never leaves a
// half-written response behind.
func View(c echo.Context, status int, name string, model map[string]any) error {
	if c.Response().Committed {
		return ErrAlreadyWritten
	}

	renderer := c.Echo().Renderer
	if renderer == nil {
		return echo.ErrRendererNotRegistered
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, name, model, c); err != nil {
		return err
	}

	return c.Blob(status, MIMETextHTMLUTF8, buf.Bytes())
}

// NoContent writes only the status line.
func NoContent(c echo.Context, status int) error {
	if c.Response().Committed {
		return ErrAlreadyWritten
	}
	if status == 0 {
		status = http.StatusNoContent
	}
	return c.NoContent(status)
}
