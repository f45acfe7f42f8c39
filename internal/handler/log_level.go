package handler

import (
	"net/http"

	"github.com/deppfellow/hello-mvc/internal/config"
	"github.com/deppfellow/hello-mvc/internal/middleware"
	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/deppfellow/hello-mvc/internal/validation"
	"github.com/labstack/echo/v4"
)

// LogLevelHandler emits one event per log level so the configured level
// can be checked from the output.
type LogLevelHandler struct {
	Handler
}

func NewLogLevelHandler(s *server.Server) *LogLevelHandler {
	return &LogLevelHandler{
		Handler: NewHandler(s),
	}
}

// LogTest logs at trace, debug, info, warn and error and returns "ok".
func (h *LogLevelHandler) LogTest() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, _ *validation.NoParams) (string, error) {
		name := config.ServiceName
		logger := middleware.GetLogger(c)

		logger.Trace().Str("name", name).Msg("trace log")
		logger.Debug().Str("name", name).Msg("debug log")
		logger.Info().Str("name", name).Msg("info log")
		logger.Warn().Str("name", name).Msg("warn log")
		logger.Error().Str("name", name).Msg("error log")

		return "ok", nil
	}, http.StatusOK, noParams)
}
