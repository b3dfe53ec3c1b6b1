package dsl

import (
	argskema "github.com/reoring/argskema"
)

// Describer is implemented by every builder in this package.
type Describer interface {
	Describe() argskema.Description
}

// UnionVariant is one named alternative of a union.
type UnionVariant struct {
	name string
	desc Describer
}

// Variant constructs a UnionVariant.
func Variant(name string, d Describer) UnionVariant {
	return UnionVariant{name: name, desc: d}
}

// Union describes a choice between alternative shapes. Such a description can
// be declared and exported, but building a Schema from it always fails: a
// command line has exactly one shape.
func Union(name string, vars ...UnionVariant) argskema.Description {
	out := argskema.Description{Name: name}
	for _, v := range vars {
		if v.desc == nil {
			continue
		}
		d := v.desc.Describe()
		for _, dv := range d.Variants {
			out.Variants = append(out.Variants, argskema.Variant{Name: v.name, Fields: dv.Fields})
		}
	}
	return out
}

// tuple is a positional-only declaration.
type tuple struct {
	name  string
	kinds []argskema.Kind
}

// Tuple describes a shape without field names; every component is a required
// positional argument, in order.
func Tuple(name string, kinds ...argskema.Kind) Describer {
	return tuple{name: name, kinds: kinds}
}

func (t tuple) Describe() argskema.Description {
	fields := make([]argskema.FieldSpec, len(t.kinds))
	for i, k := range t.kinds {
		fields[i] = argskema.FieldSpec{Kind: k}
	}
	return argskema.Product(t.name, fields...)
}
