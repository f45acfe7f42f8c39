package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/hello-mvc/internal/middleware"
	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/labstack/echo/v4"
)

// ViewChecker reports whether a view can be rendered. The view renderer
// satisfies it.
type ViewChecker interface {
	Has(name string) bool
}

// HealthHandler serves /status for monitors and load balancers.
type HealthHandler struct {
	Handler
	views ViewChecker
}

func NewHealthHandler(s *server.Server, views ViewChecker) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		views:   views,
	}
}

// CheckHealth returns the service status with an uptime and a check that
// the views used by the view endpoints are loaded.
//
// It returns 200 when every check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      time.Since(h.server.StartedAt).Round(time.Second).String(),
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	if h.views != nil && h.views.Has(helloView) {
		checks["views"] = map[string]interface{}{
			"status": "healthy",
		}
	} else {
		checks["views"] = map[string]interface{}{
			"status": "unhealthy",
			"error":  fmt.Sprintf("view %q not loaded", helloView),
		}

		isHealthy = false

		logger.Error().Str("view", helloView).Msg("views health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type": "views",
				"operation":  "health_check",
				"error_type": "views_unhealthy",
			})
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
