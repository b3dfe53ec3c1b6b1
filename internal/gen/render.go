// Package gen renders dsl declarations for collected struct types.
package gen

import (
	"bytes"
	"go/format"
	"strconv"
	"text/template"

	"github.com/reoring/argskema"
	"github.com/reoring/argskema/codec"
	"github.com/reoring/argskema/internal/ir"
)

var fileTmpl = template.Must(template.New("file").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"kind":  kindExpr,
	"card":  cardMethod,
}).Parse(`// Code generated by argskema gen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/reoring/argskema"
	"github.com/reoring/argskema/dsl"
)
{{range .Structs}}
// New{{.Name}}Parser returns the argument parser for {{.Name}}.
func New{{.Name}}Parser(opts ...argskema.Option) (*dsl.Parser[{{.Name}}], error) {
	return dsl.Bind[{{.Name}}](dsl.Object({{quote .Name}}).
{{- range .Fields}}
		Field({{quote .Name}}, {{kind .Kind}}).
		{{- if .Help}}Help({{quote .Help}}).{{end}}
		{{- if .Positional}}Positional().{{end}}{{card .Cardinality}}.
{{- end}}
		With(opts...))
}
{{end}}`))

// RenderFile renders one generated file holding a parser constructor per
// struct. The output is gofmt-formatted.
func RenderFile(pkg *ir.Package) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, struct {
		Package string
		Structs []ir.Struct
	}{pkg.Name, pkg.Structs}); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func kindExpr(k argskema.Kind) string {
	switch k {
	case argskema.KindInt:
		return "dsl.Int()"
	case argskema.KindString:
		return "dsl.String()"
	case argskema.KindBool:
		return "dsl.Bool()"
	case argskema.KindFloat:
		return "dsl.Float()"
	case codec.KindTime:
		return "dsl.Time()"
	case codec.KindDuration:
		return "dsl.Duration()"
	}
	return "argskema.Kind(" + strconv.Quote(string(k)) + ")"
}

func cardMethod(c argskema.Cardinality) string {
	switch c {
	case argskema.Optional:
		return "Optional()"
	case argskema.Multiple:
		return "Multiple()"
	}
	return "Required()"
}
