package argskema

// Parse matches tokens against the schema and materializes the values.
//
// A help flag anywhere before "--" yields OutputAndExit with the usage text and
// suppresses every other diagnostic. Otherwise all matching problems are
// reported together; values are parsed only when matching found none, and then
// every field is attempted so that all value errors surface at once.
func (s *Schema) Parse(programName string, tokens []string) Result {
	m, st := s.match(tokens)
	switch st {
	case stopHelp:
		return outputAndExit(s.Help(programName))
	case stopVersion:
		return outputAndExit(programName + " version " + s.version + "\n")
	}
	if len(m.issues) > 0 {
		return failWith(m.issues)
	}
	v, iss := s.materialize(m)
	if len(iss) > 0 {
		return failWith(iss)
	}
	return succeed(v)
}

// Parse is the functional form of Schema.Parse.
func Parse(s *Schema, programName string, tokens []string) Result {
	return s.Parse(programName, tokens)
}

// ParseDescription builds a schema from desc and parses tokens with it. A
// description that cannot be turned into a schema yields Errors holding the
// single schema issue, whatever the tokens.
func ParseDescription(desc Description, programName string, tokens []string, opts ...Option) Result {
	s, err := BuildSchema(desc, opts...)
	if err != nil {
		if iss, ok := AsIssues(err); ok {
			return failWith(iss)
		}
		return failWith(Issues{{Code: CodeUnsupportedSchema, Message: err.Error()}})
	}
	return s.Parse(programName, tokens)
}
