// Package errs defines the error shapes the HTTP layer sends to clients.
//
// Every failure a handler can produce (a missing request parameter, a value
// that cannot be converted, a body that cannot be read, an unknown route)
// ends up as an *HTTPError so the global error handler can render one
// consistent JSON document.
package errs
