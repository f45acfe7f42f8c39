package router

import (
	"github.com/deppfellow/hello-mvc/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerBasicRoutes(r *echo.Echo, h *handler.Handlers) {
	r.Any("/hello", h.Hello.Hello())
	r.Any("/log-test", h.LogLevel.LogTest())
}

// registerRequestRoutes registers the parameter and body endpoints.
// Parameter endpoints accept any method so form posts bind too.
func registerRequestRoutes(r *echo.Echo, h *handler.Handlers) {
	p := h.RequestParam
	r.Any("/request-param-v1", p.RequestParamV1())
	r.Any("/request-param-v2", p.RequestParamV2())
	r.Any("/request-param-v3", p.RequestParamV3())
	r.Any("/request-param-v4", p.RequestParamV4())
	r.Any("/request-param-required", p.RequestParamRequired())
	r.Any("/request-param-default", p.RequestParamDefault())
	r.Any("/request-param-map", p.RequestParamMap())
	r.Any("/model-attribute-v1", p.ModelAttributeV1())
	r.Any("/model-attribute-v2", p.ModelAttributeV2())

	b := h.RequestBody
	r.POST("/request-body-string-v1", b.RequestBodyStringV1())
	r.POST("/request-body-string-v2", b.RequestBodyStringV2())
	r.POST("/request-body-string-v3", b.RequestBodyStringV3())
	r.POST("/request-body-string-v4", b.RequestBodyStringV4())
	r.POST("/request-body-json-v1", b.RequestBodyJSONV1())
	r.POST("/request-body-json-v2", b.RequestBodyJSONV2())
}

func registerResponseRoutes(r *echo.Echo, h *handler.Handlers) {
	v := h.ResponseView
	r.Any("/response-view-v1", v.ResponseViewV1())
	r.Any("/response-view-v2", v.ResponseViewV2())
	r.Any("/response-view-v3", v.ResponseViewByPath())
	r.Any("/response/hello", v.ResponseViewByPath())

	r.GET("/response-body-json-v1", h.ResponseBody.ResponseBodyJSONV1())
}
