// Package router builds the Echo instance: renderer, error handler,
// middleware order and routes.
package router

import (
	"github.com/deppfellow/hello-mvc/internal/handler"
	"github.com/deppfellow/hello-mvc/internal/middleware"
	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter returns the configured Echo instance. renderer resolves view
// names for the view endpoints.
func NewRouter(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares, renderer echo.Renderer) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.Renderer = renderer
	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.Global.Secure(),
		mw.Global.CORS(),
		mw.RateLimit.Limit(),
		mw.Global.BodyLimit(),
	)

	registerSystemRoutes(r, h)
	registerBasicRoutes(r, h)
	registerRequestRoutes(r, h)
	registerResponseRoutes(r, h)

	return r
}
