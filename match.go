package argskema

import "strings"

// stop reports why scanning ended early.
type stop int

const (
	stopNone stop = iota
	stopHelp
	stopVersion
)

// matched holds the raw, per-field outcome of scanning a token stream.
type matched struct {
	raw    [][]string // raw value tokens per field, arrival order
	seen   []bool     // field was addressed, with or without a usable value
	issues Issues
}

// isOptionToken reports whether tok is addressed to the option table.
// "-" and negative numbers such as "-5" are plain tokens.
func isOptionToken(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	c := tok[1]
	return !(c >= '0' && c <= '9') && !(c == '.' && len(tok) > 2 && tok[2] >= '0' && tok[2] <= '9')
}

// match consumes tokens left to right. Errors accumulate; only a help or
// version flag ends the scan early, in which case the returned issues are
// meaningless.
func (s *Schema) match(tokens []string) (*matched, stop) {
	m := &matched{
		raw:  make([][]string, len(s.fields)),
		seen: make([]bool, len(s.fields)),
	}
	var positional []string
	rest := tokens
	endOfOptions := false
	for len(rest) > 0 {
		tok := rest[0]
		rest = rest[1:]
		switch {
		case endOfOptions || !isOptionToken(tok):
			positional = append(positional, tok)
		case tok == "--":
			endOfOptions = true
		case tok == helpShort:
			return m, stopHelp
		case strings.HasPrefix(tok, "--"):
			name, value, hasValue := strings.Cut(tok[2:], "=")
			idx, ok := s.byFlag[name]
			if !ok {
				m.issues = append(m.issues, issueFor(s.tr, CodeUnrecognizedOption, "", tok, map[string]string{"option": "--" + name}))
				continue
			}
			opt := s.options[idx]
			if opt.Field < 0 {
				if name == versionFlag {
					return m, stopVersion
				}
				return m, stopHelp
			}
			fi := opt.Field
			fd := s.fields[fi]
			m.seen[fi] = true
			if opt.Cardinality == Flag {
				if hasValue {
					m.issues = append(m.issues, issueFor(s.tr, CodeUnexpectedValue, fd.SourceName, tok, map[string]string{"option": "--" + name}))
					continue
				}
				m.raw[fi] = []string{"true"}
				continue
			}
			if !hasValue {
				if len(rest) == 0 {
					m.issues = append(m.issues, issueFor(s.tr, CodeMissingValue, fd.SourceName, tok, map[string]string{
						"option": "--" + name,
						"label":  fd.Tag.Label,
					}))
					continue
				}
				value, rest = rest[0], rest[1:]
			}
			if opt.Cardinality == Multiple {
				m.raw[fi] = append(m.raw[fi], value)
			} else {
				m.raw[fi] = []string{value}
			}
		default:
			// short options other than -h are not supported
			m.issues = append(m.issues, issueFor(s.tr, CodeUnrecognizedOption, "", tok, map[string]string{"option": tok}))
		}
	}

	s.assignPositional(m, positional)

	for i, fd := range s.fields {
		if fd.Cardinality != Required || m.seen[i] {
			continue
		}
		if fd.Position.Positional {
			m.issues = append(m.issues, issueFor(s.tr, CodeMissingArgument, fd.SourceName, "", map[string]string{"label": fd.Tag.Label}))
			continue
		}
		m.issues = append(m.issues, issueFor(s.tr, CodeMissingOption, fd.SourceName, "", map[string]string{
			"flag":  s.options[i].FlagName,
			"label": fd.Tag.Label,
		}))
	}
	return m, stopNone
}

// assignPositional distributes candidates over the positional slots in order
// and reports every surplus candidate. Unfilled slots stay unseen.
func (s *Schema) assignPositional(m *matched, candidates []string) {
	for _, fi := range s.positional {
		switch {
		case s.fields[fi].Cardinality == Multiple:
			m.raw[fi] = append(m.raw[fi], candidates...)
			candidates = nil
		case len(candidates) > 0:
			m.raw[fi] = []string{candidates[0]}
			candidates = candidates[1:]
		default:
			continue
		}
		m.seen[fi] = true
	}
	for _, tok := range candidates {
		m.issues = append(m.issues, issueFor(s.tr, CodeUnknownArgument, "", tok, map[string]string{"token": tok}))
	}
}
