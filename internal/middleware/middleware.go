// Package middleware holds the cross-cutting request handling: request
// ids, the request-scoped logger, access logging, New Relic tracing, rate
// limiting, panic recovery, CORS, body limits and the global error
// handler.
package middleware
