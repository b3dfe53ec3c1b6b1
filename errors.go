package argskema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/argskema/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Schema construction
	CodeSumType           = i18n.CodeSumType
	CodeUnsupportedSchema = i18n.CodeUnsupportedSchema
	CodeFlagCollision     = i18n.CodeFlagCollision
	CodeUnknownType       = i18n.CodeUnknownType
	// Argument matching
	CodeUnrecognizedOption = i18n.CodeUnrecognizedOption
	CodeMissingOption      = i18n.CodeMissingOption
	CodeMissingArgument    = i18n.CodeMissingArgument
	CodeUnknownArgument    = i18n.CodeUnknownArgument
	CodeMissingValue       = i18n.CodeMissingValue
	CodeUnexpectedValue    = i18n.CodeUnexpectedValue
	// Materialization
	CodeParseFailure = i18n.CodeParseFailure
)

// Issue represents a single diagnostic.
type Issue struct {
	Code    string // One of the codes listed above.
	Field   string // Source field name, when the issue concerns one field.
	Token   string // Offending input token, when there is one.
	Message string // Rendered, user-facing text.
}

// Issues is an ordered collection of diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Messages returns the rendered message of every issue, in order.
func (iss Issues) Messages() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Message
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// SchemaError reports a type description that cannot be turned into a Schema.
// It is fatal and raised before any token is looked at.
type SchemaError struct {
	Name   string // Description name.
	Issues Issues
}

func (e *SchemaError) Error() string {
	return "argskema: invalid schema " + e.Name + ": " + e.Issues.Error()
}

func (e *SchemaError) Unwrap() error { return e.Issues }

// issueFor renders code with tr and returns the Issue.
func issueFor(tr i18n.Translator, code, field, token string, data map[string]string) Issue {
	return Issue{Code: code, Field: field, Token: token, Message: tr.Message(code, data)}
}
