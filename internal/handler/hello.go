package handler

import (
	"net/http"

	"github.com/deppfellow/hello-mvc/internal/binding"
	"github.com/deppfellow/hello-mvc/internal/middleware"
	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/labstack/echo/v4"
)

// HelloHandler serves /hello.
type HelloHandler struct {
	Handler
}

func NewHelloHandler(s *server.Server) *HelloHandler {
	return &HelloHandler{
		Handler: NewHandler(s),
	}
}

type helloRequest struct {
	Username string
}

func newHelloRequest() *helloRequest {
	return &helloRequest{}
}

func (r *helloRequest) Fields() []binding.Field {
	return []binding.Field{
		binding.StringField(binding.Optional("username", binding.KindString), &r.Username),
	}
}

func (r *helloRequest) Validate() error { return nil }

// Hello writes "hello <username>". A missing username leaves the greeting
// empty.
func (h *HelloHandler) Hello() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *helloRequest) (string, error) {
		middleware.GetLogger(c).Info().
			Str("username", req.Username).
			Msg("hello")

		return "hello " + req.Username, nil
	}, http.StatusOK, newHelloRequest)
}
