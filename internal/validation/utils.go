// Package validation binds request payloads and validates them.
//
// A payload declares how it is populated by implementing ParamBinder
// (a table of request parameters) and/or BodyBinder (reads the body).
// After binding, Validate() runs; struct-tag rules go through
// go-playground/validator and failures become a 400 with field errors
// named after the request parameters.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/hello-mvc/internal/binding"
	"github.com/deppfellow/hello-mvc/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by every request payload.
type Validatable interface {
	Validate() error
}

// ParamBinder payloads are populated from query and form parameters.
type ParamBinder interface {
	Fields() []binding.Field
}

// BodyBinder payloads are populated from the request body.
type BodyBinder interface {
	BindBody(c echo.Context) error
}

// CustomValidationError is a rule that struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors satisfies error so Validate() can return it.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

// newValidator reports fields by their json name, which is also the
// request parameter name, so field errors point at what the client sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Struct validates the struct-tag rules of v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate populates payload from the request and validates it.
//
// Parameter tables are bound first, then the body, then Validate() runs.
// Binding failures are returned untouched (they already carry their
// MISSING_PARAMETER / TYPE_MISMATCH / BODY_READ_FAILURE shape).
func BindAndValidate(c echo.Context, payload Validatable) error {
	if pb, ok := payload.(ParamBinder); ok {
		values, err := binding.Params(c.Request())
		if err != nil {
			return err
		}
		if err := binding.BindFields(values, pb.Fields()); err != nil {
			return err
		}
	}

	if bb, ok := payload.(BodyBinder); ok {
		if err := bb.BindBody(c); err != nil {
			return err
		}
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		for _, e := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: e.Field, Error: e.Message})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, fe := range validationErrors {
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}
		case "max":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}
		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())
		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{Field: fe.Field(), Error: msg})
	}

	return "Validation failed", fieldErrors
}

// NoParams is the payload of endpoints that read nothing from the request.
type NoParams struct{}

func (*NoParams) Validate() error { return nil }
