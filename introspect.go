package argskema

import (
	"maps"
	"slices"
	"strconv"
)

// Description is the static, host-supplied shape of a target structure. It is
// written by hand, produced by the dsl package, loaded by the describe package,
// or generated from Go source by cmd/argskema.
//
// A product type has exactly one Variant. More than one Variant describes a
// choice of alternatives and is rejected.
type Description struct {
	Name     string
	Variants []Variant
}

// Variant is one alternative shape of a Description.
type Variant struct {
	Name   string
	Fields []FieldSpec
}

// FieldSpec declares one field. Name is empty for the components of a
// tuple-like shape.
type FieldSpec struct {
	Name        string
	Kind        Kind
	Cardinality Cardinality
	Positional  bool // Fill a named field by order instead of by flag.
	Help        string
}

// Product is shorthand for a single-variant Description.
func Product(name string, fields ...FieldSpec) Description {
	return Description{Name: name, Variants: []Variant{{Name: name, Fields: fields}}}
}

// Introspect validates desc and returns its field descriptors in declaration
// order.
func Introspect(desc Description, opts ...Option) ([]FieldDescriptor, error) {
	cfg := newConfig(opts)
	return introspect(desc, cfg)
}

func introspect(desc Description, cfg *config) ([]FieldDescriptor, error) {
	fail := func(code string, field string, data map[string]string) error {
		if data == nil {
			data = map[string]string{}
		}
		data["name"] = desc.Name
		return &SchemaError{Name: desc.Name, Issues: Issues{issueFor(cfg.translator, code, field, "", data)}}
	}
	unsupported := func(reason string) error {
		return fail(CodeUnsupportedSchema, "", map[string]string{"reason": reason})
	}

	switch n := len(desc.Variants); {
	case n == 0:
		return nil, unsupported("no fields or alternatives declared")
	case n > 1:
		return nil, fail(CodeSumType, "", map[string]string{"count": strconv.Itoa(n)})
	}
	specs := desc.Variants[0].Fields

	named, unnamed := 0, 0
	for _, fs := range specs {
		if fs.Name == "" {
			unnamed++
		} else {
			named++
		}
	}
	if named > 0 && unnamed > 0 {
		return nil, unsupported("mixes named and unnamed fields")
	}
	for _, name := range slices.Sorted(maps.Keys(cfg.positional)) {
		if !hasField(specs, name) {
			return nil, unsupported("option refers to unknown field " + name)
		}
	}

	out := make([]FieldDescriptor, 0, len(specs))
	order := 0
	trailing := Required // strongest positional cardinality seen so far
	for i, fs := range specs {
		tag, ok := cfg.registry.Lookup(fs.Kind)
		if !ok {
			return nil, fail(CodeUnknownType, fs.Name, map[string]string{"field": fieldLabel(fs.Name, i), "kind": string(fs.Kind)})
		}
		card := fs.Cardinality
		if card == Flag && fs.Kind != KindBool {
			return nil, unsupported("field " + fieldLabel(fs.Name, i) + " is a flag but not of kind bool")
		}
		_, marked := cfg.positional[fs.Name]
		positional := unnamed > 0 || fs.Positional || marked

		fd := FieldDescriptor{SourceName: fs.Name, Kind: fs.Kind, Tag: tag, Cardinality: card}
		if positional {
			if card == Flag {
				// a positional boolean is read from text
				fd.Cardinality = Required
			}
			if trailing == Multiple || (trailing == Optional && fd.Cardinality == Required) {
				return nil, unsupported("positional field " + fieldLabel(fs.Name, i) + " follows an optional or repeated positional field")
			}
			if fd.Cardinality != Required {
				trailing = fd.Cardinality
			}
			fd.Position = PositionalAt(order)
			order++
		} else if fs.Kind == KindBool && card == Required {
			fd.Cardinality = Flag
		}
		out = append(out, fd)
	}
	return out, nil
}

func hasField(specs []FieldSpec, name string) bool {
	for _, fs := range specs {
		if fs.Name == name {
			return true
		}
	}
	return false
}

// fieldLabel names a field in diagnostics; tuple components use their index.
func fieldLabel(name string, i int) string {
	if name != "" {
		return name
	}
	return "#" + strconv.Itoa(i)
}
