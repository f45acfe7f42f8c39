package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/hello-mvc/internal/middleware"
	"github.com/deppfellow/hello-mvc/internal/respond"
	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/deppfellow/hello-mvc/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler holds the shared application dependencies. Concrete handlers
// embed it.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint: it receives a bound and validated
// payload and returns a result or an error.
//
// Req is a pointer type so binding can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// HandlerFuncNoContent is a typed endpoint without a result.
type HandlerFuncNoContent[Req validation.Validatable] func(c echo.Context, req Req) error

// ModelAndView is the result of a view endpoint: a logical view name and
// the model it is rendered with.
type ModelAndView struct {
	View  string
	Model map[string]any
}

// ResponseHandler writes a successful result and describes it to logs and
// New Relic.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// TextResponseHandler writes a string result as text/plain.
type TextResponseHandler struct {
	status int
}

func (h TextResponseHandler) Handle(c echo.Context, result interface{}) error {
	body, _ := result.(string)
	return respond.Text(c, h.status, body)
}

func (h TextResponseHandler) GetOperation() string {
	return "handler_text"
}

func (h TextResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if body, ok := result.(string); ok && txn != nil {
		txn.AddAttribute("response.size_bytes", len(body))
	}
}

// JSONResponseHandler writes a structured result as JSON.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return respond.JSON(c, h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by EnhanceTracing.
}

// ViewResponseHandler renders a ModelAndView result.
type ViewResponseHandler struct {
	status int
}

func (h ViewResponseHandler) Handle(c echo.Context, result interface{}) error {
	mav, _ := result.(ModelAndView)
	return respond.View(c, h.status, mav.View, mav.Model)
}

func (h ViewResponseHandler) GetOperation() string {
	return "handler_view"
}

func (h ViewResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if mav, ok := result.(ModelAndView); ok && txn != nil {
		txn.AddAttribute("view.name", mav.View)
	}
}

// RawResponseHandler is used by endpoints that write to c.Response()
// themselves. If the endpoint wrote nothing, an empty 200 is sent.
type RawResponseHandler struct{}

func (h RawResponseHandler) Handle(c echo.Context, result interface{}) error {
	if c.Response().Committed {
		return nil
	}
	return respond.NoContent(c, http.StatusOK)
}

func (h RawResponseHandler) GetOperation() string {
	return "handler_raw"
}

func (h RawResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn != nil {
		txn.AddAttribute("response.raw", true)
	}
}

// handleRequest is the pipeline shared by every endpoint: bind and
// validate, run the handler, then write the result, with logging, timing
// and New Relic attributes around each phase.
//
// newReq builds a fresh payload per request; payloads are never shared
// between concurrent requests.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	newReq func() Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	req := newReq()

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a handler whose result is written as JSON.
//
//	r.POST("/x", handler.Handle(h, fn, http.StatusOK, newMyRequest))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleText wraps a handler whose string result is the response body.
func HandleText[Req validation.Validatable](
	h Handler,
	handler HandlerFunc[Req, string],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, TextResponseHandler{status: status})
	}
}

// HandleView wraps a handler that selects a view and its model.
func HandleView[Req validation.Validatable](
	h Handler,
	handler HandlerFunc[Req, ModelAndView],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, ViewResponseHandler{status: status})
	}
}

// HandleRaw wraps a handler that writes the response itself.
func HandleRaw[Req validation.Validatable](
	h Handler,
	handler HandlerFuncNoContent[Req],
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq, func(c echo.Context, req Req) (interface{}, error) {
			return nil, handler(c, req)
		}, RawResponseHandler{})
	}
}

// noParams is the constructor for endpoints that bind nothing.
func noParams() *validation.NoParams {
	return &validation.NoParams{}
}
