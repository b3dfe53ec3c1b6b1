package dsl

import (
	argskema "github.com/reoring/argskema"
	"github.com/reoring/argskema/codec"
)

type objectBuilder struct {
	name   string
	fields []argskema.FieldSpec
	opts   []argskema.Option
}

type fieldStep struct {
	b *objectBuilder
	i int
}

// Object creates a new builder for a named, flag-addressed structure.
func Object(name string) *objectBuilder {
	return &objectBuilder{name: name}
}

// Int returns the kind of integer fields.
func Int() argskema.Kind { return argskema.KindInt }

// String returns the kind of string fields.
func String() argskema.Kind { return argskema.KindString }

// Bool returns the kind of boolean fields. A required named bool is a flag.
func Bool() argskema.Kind { return argskema.KindBool }

// Float returns the kind of floating point fields.
func Float() argskema.Kind { return argskema.KindFloat }

// Time returns the kind of RFC3339 timestamp fields.
func Time() argskema.Kind { return codec.KindTime }

// Duration returns the kind of time.Duration fields.
func Duration() argskema.Kind { return codec.KindDuration }

// Field registers a required field of the given kind.
func (b *objectBuilder) Field(name string, kind argskema.Kind) *fieldStep {
	b.fields = append(b.fields, argskema.FieldSpec{Name: name, Kind: kind})
	return &fieldStep{b: b, i: len(b.fields) - 1}
}

// With appends schema options applied by Build.
func (b *objectBuilder) With(opts ...argskema.Option) *objectBuilder {
	b.opts = append(b.opts, opts...)
	return b
}

// Describe returns the Description declared so far.
func (b *objectBuilder) Describe() argskema.Description {
	return argskema.Product(b.name, append([]argskema.FieldSpec(nil), b.fields...)...)
}

// Build validates the declaration and returns its Schema.
func (b *objectBuilder) Build() (*argskema.Schema, error) {
	return argskema.BuildSchema(b.Describe(), withCodecs(b.opts)...)
}

// withCodecs puts a registry that knows the codec kinds ahead of opts, so an
// explicit WithRegistry still wins.
func withCodecs(opts []argskema.Option) []argskema.Option {
	return append([]argskema.Option{argskema.WithRegistry(codec.Register(nil))}, opts...)
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() *argskema.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Required marks the field as required (default) and returns the builder.
func (f *fieldStep) Required() *objectBuilder { return f.card(argskema.Required) }

// Optional marks the field as optional and returns the builder.
func (f *fieldStep) Optional() *objectBuilder { return f.card(argskema.Optional) }

// Multiple lets the field repeat and returns the builder.
func (f *fieldStep) Multiple() *objectBuilder { return f.card(argskema.Multiple) }

func (f *fieldStep) card(c argskema.Cardinality) *objectBuilder {
	f.b.fields[f.i].Cardinality = c
	return f.b
}

// Positional fills the field by order instead of by flag.
func (f *fieldStep) Positional() *fieldStep {
	f.b.fields[f.i].Positional = true
	return f
}

// Help sets the help text of the field.
func (f *fieldStep) Help(text string) *fieldStep {
	f.b.fields[f.i].Help = text
	return f
}

func (f *fieldStep) Field(name string, kind argskema.Kind) *fieldStep { return f.b.Field(name, kind) }
func (f *fieldStep) With(opts ...argskema.Option) *objectBuilder      { return f.b.With(opts...) }
func (f *fieldStep) Describe() argskema.Description                   { return f.b.Describe() }
func (f *fieldStep) Build() (*argskema.Schema, error)                 { return f.b.Build() }
func (f *fieldStep) MustBuild() *argskema.Schema                      { return f.b.MustBuild() }
