package handler

import (
	"net/http"
	"strconv"

	"github.com/deppfellow/hello-mvc/internal/binding"
	"github.com/deppfellow/hello-mvc/internal/errs"
	"github.com/deppfellow/hello-mvc/internal/middleware"
	"github.com/deppfellow/hello-mvc/internal/model"
	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/deppfellow/hello-mvc/internal/validation"
	"github.com/labstack/echo/v4"
)

// RequestParamHandler shows the ways a query or form parameter reaches a
// handler: raw lookup, explicit tables, defaults, the whole map and a
// model object.
type RequestParamHandler struct {
	Handler
}

func NewRequestParamHandler(s *server.Server) *RequestParamHandler {
	return &RequestParamHandler{
		Handler: NewHandler(s),
	}
}

// memberRequest binds the parameters under names that differ from its
// fields.
type memberRequest struct {
	MemberName string
	MemberAge  int
}

func newMemberRequest() *memberRequest {
	return &memberRequest{}
}

func (r *memberRequest) Fields() []binding.Field {
	return []binding.Field{
		binding.StringField(binding.Required("username", binding.KindString), &r.MemberName),
		binding.IntField(binding.Required("age", binding.KindInt), &r.MemberAge),
	}
}

func (r *memberRequest) Validate() error { return nil }

type requiredParamsRequest struct {
	Username string
	Age      int
}

func newRequiredParamsRequest() *requiredParamsRequest {
	return &requiredParamsRequest{}
}

func (r *requiredParamsRequest) Fields() []binding.Field {
	return []binding.Field{
		binding.StringField(binding.Required("username", binding.KindString), &r.Username),
		binding.IntField(binding.Required("age", binding.KindInt), &r.Age),
	}
}

func (r *requiredParamsRequest) Validate() error { return nil }

type optionalParamsRequest struct {
	Username string
	Age      int
}

func newOptionalParamsRequest() *optionalParamsRequest {
	return &optionalParamsRequest{}
}

func (r *optionalParamsRequest) Fields() []binding.Field {
	return []binding.Field{
		binding.StringField(binding.Optional("username", binding.KindString), &r.Username),
		binding.IntField(binding.Optional("age", binding.KindInt), &r.Age),
	}
}

func (r *optionalParamsRequest) Validate() error { return nil }

// nullableAgeRequest requires username; age may be absent and stays nil.
type nullableAgeRequest struct {
	Username string
	Age      *int
}

func newNullableAgeRequest() *nullableAgeRequest {
	return &nullableAgeRequest{}
}

func (r *nullableAgeRequest) Fields() []binding.Field {
	return []binding.Field{
		binding.StringField(binding.Required("username", binding.KindString), &r.Username),
		binding.NullableIntField(binding.Optional("age", binding.KindInt), &r.Age),
	}
}

func (r *nullableAgeRequest) Validate() error { return nil }

type defaultParamsRequest struct {
	Username string
	Age      int
}

func newDefaultParamsRequest() *defaultParamsRequest {
	return &defaultParamsRequest{}
}

func (r *defaultParamsRequest) Fields() []binding.Field {
	return []binding.Field{
		binding.StringField(binding.Required("username", binding.KindString).WithDefault("guest"), &r.Username),
		binding.IntField(binding.Optional("age", binding.KindInt).WithDefault("-1"), &r.Age),
	}
}

func (r *defaultParamsRequest) Validate() error { return nil }

// RequestParamV1 reads the parameters off the request by hand.
func (h *RequestParamHandler) RequestParamV1() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, _ *validation.NoParams) (string, error) {
		values, err := binding.Params(c.Request())
		if err != nil {
			return "", err
		}

		username := values.Get("username")
		rawAge := values.Get("age")

		age, err := strconv.ParseInt(rawAge, 10, 32)
		if err != nil {
			return "", errs.NewTypeMismatchError("age", rawAge, binding.KindInt.String(), err)
		}

		middleware.GetLogger(c).Info().
			Str("username", username).
			Int64("age", age).
			Msg("request-param-v1")

		return "Ok", nil
	}, http.StatusOK, noParams)
}

// RequestParamV2 binds username and age into differently named fields.
func (h *RequestParamHandler) RequestParamV2() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *memberRequest) (string, error) {
		middleware.GetLogger(c).Info().
			Str("username", req.MemberName).
			Int("age", req.MemberAge).
			Msg("request-param-v2")

		return "Ok", nil
	}, http.StatusOK, newMemberRequest)
}

// RequestParamV3 binds username and age by their own names.
func (h *RequestParamHandler) RequestParamV3() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *requiredParamsRequest) (string, error) {
		middleware.GetLogger(c).Info().
			Str("username", req.Username).
			Int("age", req.Age).
			Msg("request-param-v3")

		return "Ok", nil
	}, http.StatusOK, newRequiredParamsRequest)
}

// RequestParamV4 binds both parameters as optional.
func (h *RequestParamHandler) RequestParamV4() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *optionalParamsRequest) (string, error) {
		middleware.GetLogger(c).Info().
			Str("username", req.Username).
			Int("age", req.Age).
			Msg("request-param-v4")

		return "Ok", nil
	}, http.StatusOK, newOptionalParamsRequest)
}

// RequestParamRequired requires username only. "?username=" passes with
// an empty string.
func (h *RequestParamHandler) RequestParamRequired() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *nullableAgeRequest) (string, error) {
		e := middleware.GetLogger(c).Info().Str("username", req.Username)
		if req.Age != nil {
			e = e.Int("age", *req.Age)
		} else {
			e = e.Interface("age", nil)
		}
		e.Msg("request-param-required")

		return "Ok", nil
	}, http.StatusOK, newNullableAgeRequest)
}

// RequestParamDefault falls back to "guest" and -1, also for empty values.
func (h *RequestParamHandler) RequestParamDefault() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *defaultParamsRequest) (string, error) {
		middleware.GetLogger(c).Info().
			Str("username", req.Username).
			Int("age", req.Age).
			Msg("request-param-default")

		return "Ok", nil
	}, http.StatusOK, newDefaultParamsRequest)
}

// RequestParamMap receives every parameter as a map of raw strings.
func (h *RequestParamHandler) RequestParamMap() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, _ *validation.NoParams) (string, error) {
		values, err := binding.Params(c.Request())
		if err != nil {
			return "", err
		}

		params := binding.ToMap(values)
		logger := middleware.GetLogger(c)

		logger.Info().
			Str("username", params["username"]).
			Str("age", params["age"]).
			Msg("request-param-map")

		logger.Debug().
			Interface("params", binding.ToMultiMap(values)).
			Msg("request-param-map all values")

		return "Ok", nil
	}, http.StatusOK, noParams)
}

// ModelAttributeV1 populates a HelloData from the parameters.
func (h *RequestParamHandler) ModelAttributeV1() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *model.HelloData) (string, error) {
		logger := middleware.GetLogger(c)

		logger.Info().
			Str("username", req.Username).
			Int("age", req.Age).
			Msg("model-attribute-v1")

		logger.Info().
			Object("hello_data", req).
			Msg("model-attribute-v1")

		return "Ok", nil
	}, http.StatusOK, model.NewHelloData)
}

// ModelAttributeV2 is ModelAttributeV1 without the separate field log.
func (h *RequestParamHandler) ModelAttributeV2() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, req *model.HelloData) (string, error) {
		middleware.GetLogger(c).Info().
			Object("hello_data", req).
			Msg("model-attribute-v2")

		return "Ok", nil
	}, http.StatusOK, model.NewHelloData)
}
