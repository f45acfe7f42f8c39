package handler

import (
	"net/http"

	"github.com/deppfellow/hello-mvc/internal/middleware"
	"github.com/deppfellow/hello-mvc/internal/model"
	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/deppfellow/hello-mvc/internal/validation"
	"github.com/labstack/echo/v4"
)

// ResponseBodyHandler returns structured data as the message body.
type ResponseBodyHandler struct {
	Handler
}

func NewResponseBodyHandler(s *server.Server) *ResponseBodyHandler {
	return &ResponseBodyHandler{
		Handler: NewHandler(s),
	}
}

// ResponseBodyJSONV1 returns a fixed HelloData.
func (h *ResponseBodyHandler) ResponseBodyJSONV1() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *validation.NoParams) (model.HelloData, error) {
		data := model.HelloData{Username: "userA", Age: 20}

		middleware.GetLogger(c).Debug().
			Object("hello_data", data).
			Msg("response-body-json-v1")

		return data, nil
	}, http.StatusOK, noParams)
}
