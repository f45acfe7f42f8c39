package binding

import (
	"strconv"

	"github.com/deppfellow/hello-mvc/internal/errs"
)

// Kind is the declared type of a parameter.
type Kind int

const (
	KindString Kind = iota
	// KindInt is a signed 32-bit integer in base 10.
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	default:
		return "unknown"
	}
}

// Param describes one expected request parameter.
//
// Name is matched case-sensitively. Default, when set, is used both for an
// absent parameter and for one sent with an empty value.
type Param struct {
	Name     string
	Kind     Kind
	Required bool
	Default  *string
}

// Required declares a parameter that must be present.
func Required(name string, kind Kind) Param {
	return Param{Name: name, Kind: kind, Required: true}
}

// Optional declares a parameter that resolves to its zero value when absent.
func Optional(name string, kind Kind) Param {
	return Param{Name: name, Kind: kind}
}

// WithDefault returns a copy of p that falls back to value.
func (p Param) WithDefault(value string) Param {
	p.Default = &value
	return p
}

// Value is a resolved parameter. Set is false when nothing was produced:
// the parameter was absent (or empty, for numbers), optional and had no
// default.
type Value struct {
	Name string
	Kind Kind
	Set  bool
	Text string
	Int  int
}

// IntPtr returns nil for an unset value, the integer otherwise.
func (v Value) IntPtr() *int {
	if !v.Set {
		return nil
	}
	i := v.Int
	return &i
}

// Resolve looks p up in values and converts it to p.Kind.
//
// Resolution order:
//  1. present and non-empty: convert the first value.
//  2. a default is configured: convert the default, even if the parameter
//     was sent with an empty value.
//  3. present but empty text: pass the empty string through.
//  4. optional: zero value.
//  5. otherwise: missing required parameter.
func Resolve(values map[string][]string, p Param) (Value, error) {
	raw, present := first(values, p.Name)

	switch {
	case present && raw != "":
		return convert(p, raw)
	case p.Default != nil:
		return convert(p, *p.Default)
	case present && p.Kind == KindString:
		return Value{Name: p.Name, Kind: p.Kind, Set: true}, nil
	case !p.Required:
		return Value{Name: p.Name, Kind: p.Kind}, nil
	default:
		return Value{Name: p.Name, Kind: p.Kind}, errs.NewMissingParameterError(p.Name, p.Kind.String())
	}
}

func convert(p Param, raw string) (Value, error) {
	v := Value{Name: p.Name, Kind: p.Kind, Set: true, Text: raw}

	if p.Kind == KindInt {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return Value{Name: p.Name, Kind: p.Kind}, errs.NewTypeMismatchError(p.Name, raw, p.Kind.String(), err)
		}
		v.Int = int(n)
	}

	return v, nil
}

func first(values map[string][]string, name string) (string, bool) {
	vs, ok := values[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
