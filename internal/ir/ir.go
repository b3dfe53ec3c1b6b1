// Package ir is the intermediate form used by the code generator: a Go struct
// reduced to the facts a Description needs. It is internal and not part of
// the public API.
package ir

import "github.com/reoring/argskema"

// Struct is one struct type.
type Struct struct {
	Name   string
	Fields []Field
}

// Field is one exported, non-skipped struct field.
type Field struct {
	GoName      string
	Name        string // resolved key
	Kind        argskema.Kind
	Cardinality argskema.Cardinality
	Positional  bool
	Help        string
}

// Description converts s.
func (s Struct) Description() argskema.Description {
	fields := make([]argskema.FieldSpec, 0, len(s.Fields))
	for _, f := range s.Fields {
		fields = append(fields, argskema.FieldSpec{
			Name:        f.Name,
			Kind:        f.Kind,
			Cardinality: f.Cardinality,
			Positional:  f.Positional,
			Help:        f.Help,
		})
	}
	return argskema.Product(s.Name, fields...)
}
