package argskema

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToFlagName converts a field identifier to its canonical flag name.
//
// A single leading underscore is dropped, a dash is inserted before every
// upper-case letter that follows a lower-case one, and the result is lowered:
// "_fooBar" and "fooBar" both become "foo-bar", "HTTPServer" becomes "httpserver".
func ToFlagName(identifier string) string {
	identifier = strings.TrimPrefix(identifier, "_")
	b := &strings.Builder{}
	b.Grow(len(identifier) + 4)
	prev := utf8.RuneError
	for _, r := range identifier {
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}
