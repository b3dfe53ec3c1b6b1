package argskema

import (
	"maps"
	"slices"
	"strings"

	"github.com/reoring/argskema/i18n"
)

const (
	helpFlag    = "help"
	helpShort   = "-h"
	versionFlag = "version"
)

// Schema is the immutable option table derived from one Description. It is
// safe for concurrent use by any number of Parse calls.
type Schema struct {
	name       string
	fields     []FieldDescriptor
	options    []OptionSpec
	byFlag     map[string]int // flag name -> index into options
	positional []int          // field indices in positional order
	version    string
	tr         i18n.Translator
}

// BuildSchema introspects desc and builds its option table. The returned error
// is a *SchemaError.
func BuildSchema(desc Description, opts ...Option) (*Schema, error) {
	cfg := newConfig(opts)
	fields, err := introspect(desc, cfg)
	if err != nil {
		return nil, err
	}
	s := &Schema{
		name:    desc.Name,
		fields:  fields,
		byFlag:  make(map[string]int, len(fields)+2),
		version: cfg.version,
		tr:      cfg.translator,
	}
	help := make([]string, len(fields))
	for i, fs := range desc.Variants[0].Fields {
		help[i] = fs.Help
	}
	for _, name := range slices.Sorted(maps.Keys(cfg.help)) {
		text := cfg.help[name]
		i := s.fieldIndex(name)
		if i < 0 {
			return nil, s.unsupported("option refers to unknown field " + name)
		}
		help[i] = text
	}
	for _, name := range slices.Sorted(maps.Keys(cfg.rename)) {
		flag := cfg.rename[name]
		i := s.fieldIndex(name)
		if i < 0 {
			return nil, s.unsupported("option refers to unknown field " + name)
		}
		if fields[i].Position.Positional {
			return nil, s.unsupported("field " + name + " is positional and has no flag")
		}
		if flag == "" || strings.HasPrefix(flag, "-") || strings.ContainsAny(flag, "= \t") {
			return nil, s.unsupported("invalid flag name " + flag + " for field " + name)
		}
	}

	for i, fd := range fields {
		opt := buildOption(fd, help[i])
		opt.Field = i
		if fd.Position.Positional {
			s.positional = append(s.positional, i)
		} else if flag, ok := cfg.rename[fd.SourceName]; ok {
			opt.FlagName = flag
		}
		if err := s.add(opt, fd.SourceName); err != nil {
			return nil, err
		}
	}
	if s.version != "" {
		if err := s.add(OptionSpec{FlagName: versionFlag, HelpText: "show version and exit", Cardinality: Flag, Field: -1}, "--"+versionFlag); err != nil {
			return nil, err
		}
	}
	if err := s.add(OptionSpec{FlagName: helpFlag, HelpText: "show help and exit", Cardinality: Flag, Field: -1}, "--"+helpFlag); err != nil {
		return nil, err
	}
	return s, nil
}

// MustBuildSchema is like BuildSchema but panics on error.
func MustBuildSchema(desc Description, opts ...Option) *Schema {
	s, err := BuildSchema(desc, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// buildOption derives the option table row of one field.
func buildOption(fd FieldDescriptor, help string) OptionSpec {
	opt := OptionSpec{Cardinality: fd.Cardinality, HelpText: help}
	switch {
	case fd.Position.Positional:
		opt.Placeholder = fd.Tag.Label
	case fd.Cardinality == Flag:
		opt.FlagName = ToFlagName(fd.SourceName)
	default:
		opt.FlagName = ToFlagName(fd.SourceName)
		opt.Placeholder = "=" + fd.Tag.Label
		if fd.Cardinality == Optional {
			if help == "" {
				opt.HelpText = "optional"
			} else {
				opt.HelpText = help + " (optional)"
			}
		}
	}
	return opt
}

// add appends opt and indexes its flag, rejecting duplicate flag names.
func (s *Schema) add(opt OptionSpec, owner string) error {
	if opt.FlagName != "" {
		if prev, dup := s.byFlag[opt.FlagName]; dup {
			other := "--" + s.options[prev].FlagName
			if f := s.options[prev].Field; f >= 0 {
				other = s.fields[f].SourceName
			}
			return &SchemaError{Name: s.name, Issues: Issues{issueFor(s.tr, CodeFlagCollision, owner, "", map[string]string{
				"field": other,
				"other": owner,
				"flag":  opt.FlagName,
			})}}
		}
		s.byFlag[opt.FlagName] = len(s.options)
	}
	s.options = append(s.options, opt)
	return nil
}

func (s *Schema) unsupported(reason string) error {
	return &SchemaError{Name: s.name, Issues: Issues{issueFor(s.tr, CodeUnsupportedSchema, "", "", map[string]string{
		"name":   s.name,
		"reason": reason,
	})}}
}

func (s *Schema) fieldIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, fd := range s.fields {
		if fd.SourceName == name {
			return i
		}
	}
	return -1
}

// Name returns the Description name the schema was built from.
func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the field descriptors in declaration order.
func (s *Schema) Fields() []FieldDescriptor { return append([]FieldDescriptor(nil), s.fields...) }

// Options returns a copy of the option table, synthetic options last.
func (s *Schema) Options() []OptionSpec { return append([]OptionSpec(nil), s.options...) }

// Issue renders an issue with the schema's translator. Hosts use it to report
// failures that happen after a successful parse in the same language.
func (s *Schema) Issue(code, field, token string, data map[string]string) Issue {
	return issueFor(s.tr, code, field, token, data)
}
