package handler

import (
	"net/http"
	"strings"

	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/deppfellow/hello-mvc/internal/validation"
	"github.com/labstack/echo/v4"
)

// helloView is the view every endpoint here renders, directly or through
// an alias.
const helloView = "response/hello"

// ResponseViewHandler renders views instead of writing a body.
type ResponseViewHandler struct {
	Handler
}

func NewResponseViewHandler(s *server.Server) *ResponseViewHandler {
	return &ResponseViewHandler{
		Handler: NewHandler(s),
	}
}

func helloModel() map[string]any {
	return map[string]any{"data": "hello!"}
}

// ResponseViewV1 returns the view name and model together.
func (h *ResponseViewHandler) ResponseViewV1() echo.HandlerFunc {
	return HandleView(h.Handler, func(c echo.Context, _ *validation.NoParams) (ModelAndView, error) {
		return ModelAndView{View: helloView, Model: helloModel()}, nil
	}, http.StatusOK, noParams)
}

// ResponseViewV2 fills the model first and then picks the view by name.
func (h *ResponseViewHandler) ResponseViewV2() echo.HandlerFunc {
	return HandleView(h.Handler, func(c echo.Context, _ *validation.NoParams) (ModelAndView, error) {
		model := make(map[string]any)
		model["data"] = "hello!"

		return ModelAndView{View: helloView, Model: model}, nil
	}, http.StatusOK, noParams)
}

// ResponseViewByPath names no view; the route path without its leading
// slash is used, so /response/hello renders "response/hello".
func (h *ResponseViewHandler) ResponseViewByPath() echo.HandlerFunc {
	return HandleView(h.Handler, func(c echo.Context, _ *validation.NoParams) (ModelAndView, error) {
		return ModelAndView{View: viewNameFromPath(c.Path()), Model: helloModel()}, nil
	}, http.StatusOK, noParams)
}

func viewNameFromPath(path string) string {
	return strings.Trim(path, "/")
}
