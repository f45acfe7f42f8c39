package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/hello-mvc/internal/binding"
	"github.com/deppfellow/hello-mvc/internal/middleware"
	"github.com/deppfellow/hello-mvc/internal/model"
	"github.com/deppfellow/hello-mvc/internal/respond"
	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/deppfellow/hello-mvc/internal/validation"
	"github.com/labstack/echo/v4"
)

// RequestBodyHandler reads the message body: as raw UTF-8 text, as an
// entity with its headers, or decoded from JSON.
type RequestBodyHandler struct {
	Handler
}

func NewRequestBodyHandler(s *server.Server) *RequestBodyHandler {
	return &RequestBodyHandler{
		Handler: NewHandler(s),
	}
}

// utf8Body holds the body read as UTF-8 regardless of the declared charset.
type utf8Body struct {
	Message string
}

func newUTF8Body() *utf8Body {
	return &utf8Body{}
}

func (b *utf8Body) BindBody(c echo.Context) (err error) {
	b.Message, err = binding.ReadBodyUTF8(c.Request())
	return err
}

func (b *utf8Body) Validate() error { return nil }

// entityBody holds the request headers with the body decoded per its
// charset.
type entityBody struct {
	Header http.Header
	Body   string
}

func newEntityBody() *entityBody {
	return &entityBody{}
}

func (b *entityBody) BindBody(c echo.Context) (err error) {
	b.Header = c.Request().Header
	b.Body, err = binding.ReadBody(c.Request())
	return err
}

func (b *entityBody) Validate() error { return nil }

// textBody is the body decoded per its charset.
type textBody struct {
	Message string
}

func newTextBody() *textBody {
	return &textBody{}
}

func (b *textBody) BindBody(c echo.Context) (err error) {
	b.Message, err = binding.ReadBody(c.Request())
	return err
}

func (b *textBody) Validate() error { return nil }

// helloJSON is a HelloData decoded from a JSON body.
type helloJSON struct {
	Data model.HelloData
}

func newHelloJSON() *helloJSON {
	return &helloJSON{}
}

func (b *helloJSON) BindBody(c echo.Context) error {
	return binding.BindJSON(c, &b.Data)
}

func (b *helloJSON) Validate() error {
	return b.Data.Validate()
}

// RequestBodyStringV1 reads the body by hand.
func (h *RequestBodyHandler) RequestBodyStringV1() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, _ *validation.NoParams) (string, error) {
		messageBody, err := binding.ReadBodyUTF8(c.Request())
		if err != nil {
			return "", err
		}

		middleware.GetLogger(c).Info().
			Str("message_body", messageBody).
			Msg("request-body-string-v1")

		return "Ok", nil
	}, http.StatusOK, noParams)
}

// RequestBodyStringV2 receives the body already read and writes through
// the response writer.
func (h *RequestBodyHandler) RequestBodyStringV2() echo.HandlerFunc {
	return HandleRaw(h.Handler, func(c echo.Context, req *utf8Body) error {
		middleware.GetLogger(c).Info().
			Str("message_body", req.Message).
			Msg("request-body-string-v2")

		w := c.Response()
		w.Header().Set(echo.HeaderContentType, respond.MIMETextPlainUTF8)
		w.WriteHeader(http.StatusOK)

		_, err := fmt.Fprint(w, "Ok")
		return err
	}, newUTF8Body)
}

// RequestBodyStringV3 receives headers and body together.
func (h *RequestBodyHandler) RequestBodyStringV3() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *entityBody) (string, error) {
		middleware.GetLogger(c).Info().
			Str("content_type", req.Header.Get(echo.HeaderContentType)).
			Str("message_body", req.Body).
			Msg("request-body-string-v3")

		return "Ok", nil
	}, http.StatusOK, newEntityBody)
}

// RequestBodyStringV4 receives the body as a string.
func (h *RequestBodyHandler) RequestBodyStringV4() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *textBody) (string, error) {
		middleware.GetLogger(c).Info().
			Str("message_body", req.Message).
			Msg("request-body-string-v4")

		return "Ok", nil
	}, http.StatusOK, newTextBody)
}

// RequestBodyJSONV1 decodes a HelloData from the body.
func (h *RequestBodyHandler) RequestBodyJSONV1() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *helloJSON) (string, error) {
		middleware.GetLogger(c).Info().
			Str("username", req.Data.Username).
			Int("age", req.Data.Age).
			Msg("request-body-json-v1")

		return "Ok", nil
	}, http.StatusOK, newHelloJSON)
}

// RequestBodyJSONV2 decodes a HelloData and echoes it back as JSON.
func (h *RequestBodyHandler) RequestBodyJSONV2() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *helloJSON) (model.HelloData, error) {
		middleware.GetLogger(c).Info().
			Object("hello_data", req.Data).
			Msg("request-body-json-v2")

		return req.Data, nil
	}, http.StatusOK, newHelloJSON)
}
