// Package model holds the data carried by the demonstration endpoints.
package model

import (
	"github.com/deppfellow/hello-mvc/internal/binding"
	"github.com/deppfellow/hello-mvc/internal/validation"
	"github.com/rs/zerolog"
)

// HelloData is populated from the "username" and "age" request parameters,
// or from a JSON body with the same keys.
type HelloData struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
}

// NewHelloData returns an empty HelloData ready to be bound.
func NewHelloData() *HelloData {
	return &HelloData{}
}

// Fields lists the parameters HelloData binds from. Both are optional:
// a missing parameter leaves its field at the zero value.
func (h *HelloData) Fields() []binding.Field {
	return []binding.Field{
		binding.StringField(binding.Optional("username", binding.KindString), &h.Username),
		binding.IntField(binding.Optional("age", binding.KindInt), &h.Age),
	}
}

// Validate runs the struct-tag rules of HelloData.
func (h *HelloData) Validate() error {
	return validation.Struct(h)
}

func (h HelloData) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", h.Username).Int("age", h.Age)
}
