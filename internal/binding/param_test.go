package binding

import (
	"errors"
	"net/url"
	"strconv"
	"testing"

	"github.com/deppfellow/hello-mvc/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		param    Param
		wantSet  bool
		wantText string
		wantInt  int
		wantErr  error
	}{
		{
			name:     "present string",
			query:    "username=kim",
			param:    Required("username", KindString),
			wantSet:  true,
			wantText: "kim",
		},
		{
			name:     "present int",
			query:    "age=42",
			param:    Required("age", KindInt),
			wantSet:  true,
			wantText: "42",
			wantInt:  42,
		},
		{
			name:     "negative int",
			query:    "age=-7",
			param:    Required("age", KindInt),
			wantSet:  true,
			wantText: "-7",
			wantInt:  -7,
		},
		{
			name:    "int conversion failure",
			query:   "age=abc",
			param:   Required("age", KindInt),
			wantErr: errs.ErrTypeMismatch,
		},
		{
			name:    "missing required",
			query:   "",
			param:   Required("username", KindString),
			wantErr: errs.ErrMissingParameter,
		},
		{
			name:    "missing optional int is zero",
			query:   "",
			param:   Optional("age", KindInt),
			wantSet: false,
		},
		{
			name:    "missing optional string is empty",
			query:   "",
			param:   Optional("username", KindString),
			wantSet: false,
		},
		{
			name:    "empty required string passes through",
			query:   "username=",
			param:   Required("username", KindString),
			wantSet: true,
		},
		{
			name:    "empty required int is missing",
			query:   "age=",
			param:   Required("age", KindInt),
			wantErr: errs.ErrMissingParameter,
		},
		{
			name:    "empty optional int is unset",
			query:   "age=",
			param:   Optional("age", KindInt),
			wantSet: false,
		},
		{
			name:     "default used when absent",
			query:    "",
			param:    Required("username", KindString).WithDefault("guest"),
			wantSet:  true,
			wantText: "guest",
		},
		{
			name:     "default overrides empty string",
			query:    "username=",
			param:    Required("username", KindString).WithDefault("guest"),
			wantSet:  true,
			wantText: "guest",
		},
		{
			name:     "int default overrides empty",
			query:    "age=",
			param:    Optional("age", KindInt).WithDefault("-1"),
			wantSet:  true,
			wantText: "-1",
			wantInt:  -1,
		},
		{
			name:     "value wins over default",
			query:    "username=lee",
			param:    Required("username", KindString).WithDefault("guest"),
			wantSet:  true,
			wantText: "lee",
		},
		{
			name:    "names are case sensitive",
			query:   "Username=kim",
			param:   Required("username", KindString),
			wantErr: errs.ErrMissingParameter,
		},
		{
			name:     "first of repeated values",
			query:    "username=a&username=b",
			param:    Required("username", KindString),
			wantSet:  true,
			wantText: "a",
		},
		{
			name:    "bad default is a conversion failure",
			query:   "",
			param:   Optional("age", KindInt).WithDefault("none"),
			wantErr: errs.ErrTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			v, err := Resolve(values, tt.param)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				var httpErr *errs.HTTPError
				require.True(t, errors.As(err, &httpErr))
				assert.Equal(t, 400, httpErr.Status)
				require.Len(t, httpErr.Errors, 1)
				assert.Equal(t, tt.param.Name, httpErr.Errors[0].Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.param.Name, v.Name)
			assert.Equal(t, tt.wantSet, v.Set)
			assert.Equal(t, tt.wantText, v.Text)
			assert.Equal(t, tt.wantInt, v.Int)
		})
	}
}

func TestResolve_TypeMismatchNamesParameterAndValue(t *testing.T) {
	_, err := Resolve(url.Values{"age": {"12x"}}, Required("age", KindInt))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "'age'")
	assert.Contains(t, err.Error(), "'12x'")
}

func TestResolve_AnyIntegerRoundTrips(t *testing.T) {
	for _, n := range []int{0, 1, -1, 5, 99, 1 << 20, -(1 << 30), 2147483647, -2147483648} {
		v, err := Resolve(url.Values{"age": {strconv.Itoa(n)}}, Required("age", KindInt))
		require.NoError(t, err)
		assert.Equal(t, n, v.Int)
	}
}

func TestResolve_IntOutOfRange(t *testing.T) {
	for _, raw := range []string{"3000000000", "2147483648", "-2147483649", "99999999999999999999"} {
		_, err := Resolve(url.Values{"age": {raw}}, Required("age", KindInt))

		require.Error(t, err, raw)
		assert.ErrorIs(t, err, errs.ErrTypeMismatch, raw)
		assert.ErrorIs(t, err, strconv.ErrRange, raw)
		assert.Contains(t, err.Error(), "'age'", raw)
	}
}

func TestValue_IntPtr(t *testing.T) {
	assert.Nil(t, Value{}.IntPtr())

	p := Value{Set: true, Int: 9}.IntPtr()
	require.NotNil(t, p)
	assert.Equal(t, 9, *p)
}
