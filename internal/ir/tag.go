package ir

import (
	"reflect"
	"strings"
)

// Tag is the parsed form of a field's `arg` and `json` tags.
type Tag struct {
	Name       string
	Kind       string
	Help       string
	Positional bool
	Skip       bool
}

// ResolveTag applies the key rule for struct fields:
// arg:"name=..." > json tag name > Go field name. "-" in either tag disables
// the field. help= consumes the remainder of the tag so it may contain commas.
func ResolveTag(goName string, tag reflect.StructTag) Tag {
	t := Tag{Name: goName}
	if jt := tag.Get("json"); jt != "" {
		name, _, _ := strings.Cut(jt, ",")
		switch name {
		case "-":
			t.Skip = true
		case "":
		default:
			t.Name = name
		}
	}
	at, ok := tag.Lookup("arg")
	if !ok {
		return t
	}
	if strings.TrimSpace(at) == "-" {
		t.Skip = true
		return t
	}
	for at != "" {
		var part string
		if strings.HasPrefix(strings.TrimSpace(at), "help=") {
			part, at = strings.TrimSpace(at), ""
		} else {
			part, at, _ = strings.Cut(at, ",")
			part = strings.TrimSpace(part)
		}
		switch {
		case part == "positional":
			t.Positional = true
		case strings.HasPrefix(part, "name="):
			t.Name = strings.TrimPrefix(part, "name=")
			t.Skip = false
		case strings.HasPrefix(part, "kind="):
			t.Kind = strings.TrimPrefix(part, "kind=")
		case strings.HasPrefix(part, "help="):
			t.Help = strings.TrimPrefix(part, "help=")
		}
	}
	return t
}
