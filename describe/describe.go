// Package describe loads argskema descriptions from YAML or JSON documents and
// exports option tables and parsed values for tooling.
//
// A document looks like
//
//	name: Copy
//	version: 1.0.0
//	fields:
//	  - name: recursive
//	    kind: bool
//	  - name: depth
//	    kind: int
//	    cardinality: optional
//	    help: max depth
//	  - name: src
//	    kind: string
//	    positional: true
//
// Alternatives are declared under variants instead of fields; they load but
// never build.
package describe

import (
	"fmt"

	"github.com/reoring/argskema"
)

// Document is the serialized form of a Description plus the schema options a
// document can carry.
type Document struct {
	Name     string     `json:"name" yaml:"name"`
	Version  string     `json:"version,omitempty" yaml:"version,omitempty"`
	Fields   []Field    `json:"fields,omitempty" yaml:"fields,omitempty"`
	Variants []VariantD `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// VariantD is one alternative of a Document.
type VariantD struct {
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field is the serialized form of argskema.FieldSpec. Flag renames the
// generated flag.
type Field struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Kind        string `json:"kind" yaml:"kind"`
	Cardinality string `json:"cardinality,omitempty" yaml:"cardinality,omitempty"`
	Positional  bool   `json:"positional,omitempty" yaml:"positional,omitempty"`
	Flag        string `json:"flag,omitempty" yaml:"flag,omitempty"`
	Help        string `json:"help,omitempty" yaml:"help,omitempty"`
}

// ParseCardinality is the inverse of argskema.Cardinality.String. The empty
// string means Required.
func ParseCardinality(s string) (argskema.Cardinality, error) {
	switch s {
	case "", "required":
		return argskema.Required, nil
	case "optional":
		return argskema.Optional, nil
	case "multiple":
		return argskema.Multiple, nil
	case "flag":
		return argskema.Flag, nil
	}
	return 0, fmt.Errorf("describe: unknown cardinality %q", s)
}

// Description converts d. It fails only on a malformed cardinality; shape
// errors are reported when the Description is built.
func (d *Document) Description() (argskema.Description, error) {
	if len(d.Variants) == 0 {
		fs, err := fieldSpecs(d.Fields)
		if err != nil {
			return argskema.Description{}, err
		}
		return argskema.Product(d.Name, fs...), nil
	}
	if len(d.Fields) > 0 {
		return argskema.Description{}, fmt.Errorf("describe: %s declares both fields and variants", d.Name)
	}
	out := argskema.Description{Name: d.Name}
	for _, v := range d.Variants {
		fs, err := fieldSpecs(v.Fields)
		if err != nil {
			return argskema.Description{}, err
		}
		out.Variants = append(out.Variants, argskema.Variant{Name: v.Name, Fields: fs})
	}
	return out, nil
}

// Options returns the schema options carried by d.
func (d *Document) Options() []argskema.Option {
	var opts []argskema.Option
	if d.Version != "" {
		opts = append(opts, argskema.WithVersion(d.Version))
	}
	for _, f := range d.Fields {
		if f.Flag != "" {
			opts = append(opts, argskema.WithRename(f.Name, f.Flag))
		}
	}
	return opts
}

// Build converts d and builds its Schema. opts are applied after the
// document's own options.
func (d *Document) Build(opts ...argskema.Option) (*argskema.Schema, error) {
	desc, err := d.Description()
	if err != nil {
		return nil, err
	}
	return argskema.BuildSchema(desc, append(d.Options(), opts...)...)
}

// FromDescription is the inverse of Document.Description.
func FromDescription(desc argskema.Description) *Document {
	d := &Document{Name: desc.Name}
	if len(desc.Variants) == 1 {
		d.Fields = fieldDocs(desc.Variants[0].Fields)
		return d
	}
	for _, v := range desc.Variants {
		d.Variants = append(d.Variants, VariantD{Name: v.Name, Fields: fieldDocs(v.Fields)})
	}
	return d
}

func fieldSpecs(in []Field) ([]argskema.FieldSpec, error) {
	out := make([]argskema.FieldSpec, 0, len(in))
	for _, f := range in {
		c, err := ParseCardinality(f.Cardinality)
		if err != nil {
			return nil, fmt.Errorf("%w (field %s)", err, f.Name)
		}
		out = append(out, argskema.FieldSpec{
			Name:        f.Name,
			Kind:        argskema.Kind(f.Kind),
			Cardinality: c,
			Positional:  f.Positional,
			Help:        f.Help,
		})
	}
	return out, nil
}

func fieldDocs(in []argskema.FieldSpec) []Field {
	out := make([]Field, 0, len(in))
	for _, f := range in {
		fd := Field{Name: f.Name, Kind: string(f.Kind), Positional: f.Positional, Help: f.Help}
		if f.Cardinality != argskema.Required {
			fd.Cardinality = f.Cardinality.String()
		}
		out = append(out, fd)
	}
	return out
}
