package i18n

import "strings"

// Issue codes. The root package re-exports them; they live here so that
// dictionaries can be keyed without an import cycle.
const (
	CodeSumType            = "sum_type"
	CodeUnsupportedSchema  = "unsupported_schema"
	CodeFlagCollision      = "flag_collision"
	CodeUnknownType        = "unknown_type"
	CodeUnrecognizedOption = "unrecognized_option"
	CodeMissingOption      = "missing_option"
	CodeMissingArgument    = "missing_argument"
	CodeUnknownArgument    = "unknown_argument"
	CodeMissingValue       = "missing_value"
	CodeUnexpectedValue    = "unexpected_value"
	CodeParseFailure       = "parse_failure"
)

// Translator retrieves localized messages for Issue codes.
// data provides the values substituted into the message (for example,
// "flag", "label" or "token").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
// Placeholders are written as {key}.
type dictTranslator struct {
	lang       string
	templates  map[string]string
	qualifiers map[string]string
}

var english = dictTranslator{
	lang: "en",
	templates: map[string]string{
		CodeSumType:            "argskema doesn't support sum types, {name} has {count} alternatives",
		CodeUnsupportedSchema:  "unsupported schema {name}: {reason}",
		CodeFlagCollision:      "flag name collision: {field} and {other} both map to --{flag}",
		CodeUnknownType:        "field {field}: unknown element type {kind}",
		CodeUnrecognizedOption: "unrecognized option '{option}'",
		CodeMissingOption:      "missing option: --{flag}={label}",
		CodeMissingArgument:    "missing argument of type {label}",
		CodeUnknownArgument:    "unknown argument: {token}",
		CodeMissingValue:       "option '{option}' requires an argument {label}",
		CodeUnexpectedValue:    "option '{option}' doesn't allow an argument",
		CodeParseFailure:       "cannot parse as {label}{qualifier}: {token}",
	},
	qualifiers: map[string]string{
		"optional": " (optional)",
		"multiple": " (multiple possible)",
	},
}

var japanese = dictTranslator{
	lang: "ja",
	templates: map[string]string{
		CodeSumType:            "argskema は直和型をサポートしていません ({name} には {count} 個の選択肢があります)",
		CodeUnsupportedSchema:  "サポートされていないスキーマ {name}: {reason}",
		CodeFlagCollision:      "フラグ名が衝突しています: {field} と {other} はどちらも --{flag} になります",
		CodeUnknownType:        "フィールド {field}: 未知の要素型 {kind}",
		CodeUnrecognizedOption: "認識できないオプションです '{option}'",
		CodeMissingOption:      "オプションが不足しています: --{flag}={label}",
		CodeMissingArgument:    "{label} 型の引数が不足しています",
		CodeUnknownArgument:    "未知の引数です: {token}",
		CodeMissingValue:       "オプション '{option}' には引数 {label} が必要です",
		CodeUnexpectedValue:    "オプション '{option}' は引数を取りません",
		CodeParseFailure:       "{label}{qualifier} として解析できません: {token}",
	},
	qualifiers: map[string]string{
		"optional": " (省略可)",
		"multiple": " (複数指定可)",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := t.templates[code]
	if !ok {
		return code
	}
	if _, ok := data["cardinality"]; ok {
		// expand the cardinality into a qualifier without mutating the caller's map
		withQ := make(map[string]string, len(data)+1)
		for k, v := range data {
			withQ[k] = v
		}
		withQ["qualifier"] = t.qualifiers[data["cardinality"]]
		data = withQ
	}
	return expand(tmpl, data)
}

// expand substitutes {key} placeholders. Unknown placeholders expand to "".
func expand(tmpl string, data map[string]string) string {
	b := &strings.Builder{}
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		b.WriteString(tmpl[:i])
		b.WriteString(data[tmpl[i+1:i+j]])
		tmpl = tmpl[i+j+1:]
	}
}

// English returns the built-in English Translator.
func English() Translator { return english }

// Language returns the built-in Translator for lang ("en"/"ja"). Unknown
// languages fall back to English.
func Language(lang string) Translator {
	if lang == "ja" {
		return japanese
	}
	return english
}

// T fetches a message for the given code using the English dictionary.
func T(code string, data map[string]string) string { return english.Message(code, data) }
