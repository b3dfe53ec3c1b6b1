package argskema

// materialize runs every field's parser over its raw tokens. Every field is
// attempted; failures are collected in declaration order.
func (s *Schema) materialize(m *matched) (Values, Issues) {
	out := Values{names: make([]string, len(s.fields)), vals: make([]any, len(s.fields))}
	var iss Issues
	parse := func(fd FieldDescriptor, text string) (any, bool) {
		v, err := fd.Tag.Parse(text)
		if err != nil {
			iss = append(iss, issueFor(s.tr, CodeParseFailure, fd.SourceName, text, map[string]string{
				"label":       fd.Tag.Label,
				"token":       text,
				"cardinality": fd.Cardinality.String(),
			}))
			return nil, false
		}
		return v, true
	}
	for i, fd := range s.fields {
		out.names[i] = fd.SourceName
		raw := m.raw[i]
		switch fd.Cardinality {
		case Flag:
			out.vals[i] = len(raw) > 0
		case Multiple:
			vs := make([]any, 0, len(raw))
			for _, text := range raw {
				if v, ok := parse(fd, text); ok {
					vs = append(vs, v)
				}
			}
			out.vals[i] = vs
		default:
			if len(raw) == 0 {
				continue
			}
			if v, ok := parse(fd, raw[len(raw)-1]); ok {
				out.vals[i] = v
			}
		}
	}
	return out, iss
}
