package middleware

import (
	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middlewares groups every middleware component so router setup receives
// one value.
type Middlewares struct {
	// Global: CORS, access log, recovery, secure headers, body limit and
	// the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer stores the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic transactions and request attributes.
	Tracing *TracingMiddleware

	// RateLimit throttles clients by IP when configured.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares builds all middleware from the application container.
// Without New Relic the tracing middleware degrades to pass-through.
func NewMiddlewares(s *server.Server) *Middlewares {
	var nrApp *newrelic.Application
	if s.LoggerService != nil {
		nrApp = s.LoggerService.GetApplication()
	}

	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, nrApp),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
