package binding

import (
	"errors"

	"github.com/deppfellow/hello-mvc/internal/errs"
)

// Field ties a Param to the structure field it populates.
type Field struct {
	Param Param
	Set   func(Value)
}

// StringField binds p into dst.
func StringField(p Param, dst *string) Field {
	return Field{Param: p, Set: func(v Value) { *dst = v.Text }}
}

// IntField binds p into dst; an unset value leaves dst at zero.
func IntField(p Param, dst *int) Field {
	return Field{Param: p, Set: func(v Value) { *dst = v.Int }}
}

// NullableIntField binds p into dst, leaving it nil when unset.
func NullableIntField(p Param, dst **int) Field {
	return Field{Param: p, Set: func(v Value) { *dst = v.IntPtr() }}
}

// BindFields resolves every field independently and reports all failures
// together. Parameters without a matching field are ignored.
func BindFields(values map[string][]string, fields []Field) error {
	var failures []*errs.HTTPError

	for _, f := range fields {
		v, err := Resolve(values, f.Param)
		if err != nil {
			var httpErr *errs.HTTPError
			if !errors.As(err, &httpErr) {
				return err
			}
			failures = append(failures, httpErr)
			continue
		}
		f.Set(v)
	}

	if len(failures) == 0 {
		return nil
	}

	return errs.NewBindError(failures)
}
