package argskema

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrParse is returned by built-in value parsers on malformed text.
var ErrParse = errors.New("argskema: cannot parse value")

// TypeTag identifies a parseable element type: its textual parser and the
// label used verbatim in help and error text.
type TypeTag struct {
	Label string
	Parse func(text string) (any, error)
}

// Registry maps a Kind to its TypeTag. A Registry is never mutated after
// construction; With returns an extended copy.
type Registry struct {
	tags map[Kind]TypeTag
}

// Integer parses an optional leading '-' followed by decimal digits.
var Integer = TypeTag{Label: "INTEGER", Parse: parseInteger}

// String accepts any text verbatim.
var String = TypeTag{Label: "STRING", Parse: func(s string) (any, error) { return s, nil }}

// Boolean parses "true" or "false" (any case). As a named field it is a Flag
// and its parser is never consulted.
var Boolean = TypeTag{Label: "BOOL", Parse: parseBoolean}

// Float parses a finite decimal floating point number.
var Float = TypeTag{Label: "NUMBER", Parse: parseFloat}

// DefaultRegistry returns a Registry holding the built-in kinds.
func DefaultRegistry() *Registry {
	return &Registry{tags: map[Kind]TypeTag{
		KindInt:    Integer,
		KindString: String,
		KindBool:   Boolean,
		KindFloat:  Float,
	}}
}

// With returns a copy of r with k bound to t.
func (r *Registry) With(k Kind, t TypeTag) *Registry {
	out := &Registry{tags: make(map[Kind]TypeTag, len(r.tags)+1)}
	for kk, tt := range r.tags {
		out.tags[kk] = tt
	}
	out.tags[k] = t
	return out
}

// Lookup returns the TypeTag registered for k.
func (r *Registry) Lookup(k Kind) (TypeTag, bool) {
	if r == nil {
		return TypeTag{}, false
	}
	t, ok := r.tags[k]
	if ok && t.Parse == nil {
		return TypeTag{}, false
	}
	return t, ok
}

func parseInteger(s string) (any, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return nil, ErrParse
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, ErrParse
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// out of range for int
		return nil, ErrParse
	}
	return n, nil
}

func parseBoolean(s string) (any, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return nil, ErrParse
}

// parseFloat accepts finite decimal notation only: an optional leading '-',
// digits with an optional fraction, and an optional exponent. Inf, NaN, hex
// floats and a leading '+' are rejected.
func parseFloat(s string) (any, error) {
	digits := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' || c == 'e' || c == 'E':
		case c == '-' && i == 0:
		case (c == '-' || c == '+') && (s[i-1] == 'e' || s[i-1] == 'E'):
		default:
			return nil, ErrParse
		}
	}
	if !digits {
		return nil, ErrParse
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, ErrParse
	}
	return f, nil
}
