package argskema

// Values is the materialized record of one successful parse, in declaration
// order. Element values are:
//
//   - Required: the parsed element (int, string, bool, float64, ...)
//   - Optional: nil when absent, otherwise the parsed element
//   - Multiple: []any, never nil, in arrival order
//   - Flag: bool
type Values struct {
	names []string
	vals  []any
}

// Len returns the number of fields.
func (v Values) Len() int { return len(v.vals) }

// At returns the value of the i-th field.
func (v Values) At(i int) any { return v.vals[i] }

// Name returns the source name of the i-th field; empty for tuple components.
func (v Values) Name(i int) string { return v.names[i] }

// Get returns the value of the field with the given source name.
func (v Values) Get(name string) (any, bool) {
	for i, n := range v.names {
		if n == name && n != "" {
			return v.vals[i], true
		}
	}
	return nil, false
}

// Slice returns a copy of all values in declaration order.
func (v Values) Slice() []any { return append([]any(nil), v.vals...) }

// Tuple reports whether the record has no field names.
func (v Values) Tuple() bool {
	for _, n := range v.names {
		if n != "" {
			return false
		}
	}
	return true
}
