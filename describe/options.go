package describe

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/argskema"
)

// Option is one row of an exported option table.
type Option struct {
	Flag        string `json:"flag,omitempty" yaml:"flag,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Help        string `json:"help,omitempty" yaml:"help,omitempty"`
	Cardinality string `json:"cardinality" yaml:"cardinality"`
	Field       string `json:"field,omitempty" yaml:"field,omitempty"`
	Positional  bool   `json:"positional,omitempty" yaml:"positional,omitempty"`
}

// OptionTable flattens the options of s in table order. Field is the source
// name of the owning field; it is empty for help, version and tuple
// components.
func OptionTable(s *argskema.Schema) []Option {
	fields := s.Fields()
	opts := s.Options()
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		row := Option{
			Flag:        o.FlagName,
			Placeholder: o.Placeholder,
			Help:        o.HelpText,
			Cardinality: o.Cardinality.String(),
			Positional:  o.Positional(),
		}
		if o.Field >= 0 {
			row.Field = fields[o.Field].SourceName
		}
		out = append(out, row)
	}
	return out
}

// Load reads a description file. Files ending in .json are JSON; everything
// else is YAML.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FromJSON(data)
	}
	return FromYAML(data)
}
