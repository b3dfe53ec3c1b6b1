package argskema

import "strings"

// Help renders the usage text for programName. The first line lists the
// positional slots; every flag-addressed option follows on its own line with
// aligned help text. No line has trailing whitespace and there are no blank
// lines.
func (s *Schema) Help(programName string) string {
	b := &strings.Builder{}
	b.WriteString(programName)
	b.WriteString(" [OPTIONS]")
	for _, fi := range s.positional {
		b.WriteByte(' ')
		label := s.fields[fi].Tag.Label
		switch s.fields[fi].Cardinality {
		case Optional:
			b.WriteString("[" + label + "]")
		case Multiple:
			b.WriteString("[" + label + "...]")
		default:
			b.WriteString(label)
		}
	}
	b.WriteByte('\n')

	width := 0
	for _, opt := range s.options {
		if !opt.Positional() {
			width = max(width, len(optionColumn(opt)))
		}
	}
	for _, opt := range s.options {
		if opt.Positional() {
			continue
		}
		col := optionColumn(opt)
		line := "  " + col
		if opt.HelpText != "" {
			line += strings.Repeat(" ", width-len(col)) + "  " + opt.HelpText
		}
		b.WriteString(strings.TrimRight(line, " \t"))
		b.WriteByte('\n')
	}
	return b.String()
}

func optionColumn(opt OptionSpec) string { return "--" + opt.FlagName + opt.Placeholder }
