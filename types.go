package argskema

import "strconv"

// Kind names an element type understood by a Registry.
type Kind string

const (
	KindInt    Kind = "int"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindFloat  Kind = "float"
)

// Cardinality controls how many values an option accepts.
type Cardinality int

const (
	Required Cardinality = iota // Exactly one value.
	Optional                    // Zero or one value; absence yields nil.
	Multiple                    // Zero or more values, kept in arrival order.
	Flag                        // Boolean presence switch; never consumes a value.
)

func (c Cardinality) String() string {
	switch c {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Multiple:
		return "multiple"
	case Flag:
		return "flag"
	}
	return "cardinality(" + strconv.Itoa(int(c)) + ")"
}

// Position tells whether a field is matched by flag name or by order.
type Position struct {
	Positional bool
	Order      int // Index among positional fields; meaningless for named fields.
}

// Named is the Position of a flag-addressed field.
var Named = Position{}

// PositionalAt returns the Position of the i-th positional slot.
func PositionalAt(i int) Position { return Position{Positional: true, Order: i} }

// FieldDescriptor is the immutable, introspected view of one structure field.
type FieldDescriptor struct {
	SourceName  string
	Kind        Kind
	Tag         TypeTag
	Cardinality Cardinality
	Position    Position
}

// OptionSpec is the option table row derived from a FieldDescriptor.
// FlagName is empty for positional slots.
type OptionSpec struct {
	FlagName    string
	Placeholder string
	HelpText    string
	Cardinality Cardinality
	Field       int // Index into Schema.Fields, or -1 for synthetic options.
}

// Positional reports whether the option is filled by order rather than by flag.
func (o OptionSpec) Positional() bool { return o.FlagName == "" }
