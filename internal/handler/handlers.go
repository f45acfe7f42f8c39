// Package handler is the HTTP layer: each endpoint declares what it reads
// from the request, and the shared pipeline in base.go binds, validates,
// logs and writes the result.
package handler

import (
	"github.com/deppfellow/hello-mvc/internal/server"
)

// Handlers groups every HTTP handler so router setup receives one value.
type Handlers struct {
	Health       *HealthHandler
	Hello        *HelloHandler
	RequestParam *RequestParamHandler
	RequestBody  *RequestBodyHandler
	ResponseView *ResponseViewHandler
	ResponseBody *ResponseBodyHandler
	LogLevel     *LogLevelHandler
}

// NewHandlers constructs the handler container. views backs the status
// endpoint's view check.
func NewHandlers(s *server.Server, views ViewChecker) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s, views),
		Hello:        NewHelloHandler(s),
		RequestParam: NewRequestParamHandler(s),
		RequestBody:  NewRequestBodyHandler(s),
		ResponseView: NewResponseViewHandler(s),
		ResponseBody: NewResponseBodyHandler(s),
		LogLevel:     NewLogLevelHandler(s),
	}
}
