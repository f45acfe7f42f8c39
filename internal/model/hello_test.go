package model

import (
	"bytes"
	"testing"

	"github.com/deppfellow/hello-mvc/internal/binding"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloData_Fields(t *testing.T) {
	tests := []struct {
		name   string
		values map[string][]string
		want   HelloData
	}{
		{
			name:   "both present",
			values: map[string][]string{"username": {"bob"}, "age": {"5"}},
			want:   HelloData{Username: "bob", Age: 5},
		},
		{
			name:   "missing age stays zero",
			values: map[string][]string{"username": {"bob"}},
			want:   HelloData{Username: "bob"},
		},
		{
			name:   "unknown parameters ignored",
			values: map[string][]string{"username": {"kim"}, "nickname": {"k"}},
			want:   HelloData{Username: "kim"},
		},
		{
			name:   "names are case sensitive",
			values: map[string][]string{"Username": {"kim"}, "AGE": {"3"}},
			want:   HelloData{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHelloData()
			require.NoError(t, binding.BindFields(tt.values, h.Fields()))
			assert.Equal(t, tt.want, *h)
			assert.NoError(t, h.Validate())
		})
	}
}

func TestHelloData_BadAge(t *testing.T) {
	h := NewHelloData()
	err := binding.BindFields(map[string][]string{"age": {"old"}}, h.Fields())
	assert.Error(t, err)
}

func TestHelloData_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().Object("hello_data", HelloData{Username: "bob", Age: 5}).Msg("")

	assert.JSONEq(t, `{"level":"info","hello_data":{"username":"bob","age":5}}`, buf.String())
}
