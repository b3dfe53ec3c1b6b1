package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const fooYAML = `name: Foo
version: 2.0.0
fields:
  - name: bar
    kind: int
    cardinality: optional
  - name: baz
    kind: string
  - name: bool
    kind: bool
  - name: at
    kind: time
    cardinality: optional
`

type run struct {
	out, err bytes.Buffer
	codes    []int
	ret      error
}

func runCLI(t *testing.T, args ...string) *run {
	t.Helper()
	r := &run{}
	r.ret = Run(context.Background(), func(code int) { r.codes = append(r.codes, code) }, &r.out, &r.err, args...)
	return r
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseCommand_Success(t *testing.T) {
	schema := writeFile(t, "foo.yaml", fooYAML)
	r := runCLI(t, "--no-color", "--schema", schema, "parse", "--", "--bar", "1", "--baz", "x", "--at", "2025-01-02T03:04:05Z")
	if r.ret != nil {
		t.Fatalf("run: %v (stderr %q)", r.ret, r.err.String())
	}
	want := `{"bar":1,"baz":"x","bool":false,"at":"2025-01-02T03:04:05Z"}` + "\n"
	if diff := cmp.Diff(want, r.out.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if len(r.codes) != 0 {
		t.Fatalf("unexpected exit %v", r.codes)
	}
}

func TestParseCommand_Errors(t *testing.T) {
	t.Setenv("ARGSKEMA_SCHEMA", writeFile(t, "foo.yaml", fooYAML))
	r := runCLI(t, "--no-color", "parse", "--", "--bar", "x", "extra")
	if r.ret != nil {
		t.Fatalf("run: %v", r.ret)
	}
	want := "unknown argument: extra\nmissing option: --baz=STRING\n"
	if diff := cmp.Diff(want, r.err.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, r.codes); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	r = runCLI(t, "--no-color", "--lang", "ja", "parse", "--", "--baz", "x", "--bar", "x")
	if !strings.Contains(r.err.String(), "として解析できません") {
		t.Fatalf("expected japanese message, got %q", r.err.String())
	}
}

func TestParseCommand_VersionAndHelp(t *testing.T) {
	t.Setenv("ARGSKEMA_SCHEMA", writeFile(t, "foo.yaml", fooYAML))
	t.Setenv("ARGSKEMA_PROGRAM", "foo")
	r := runCLI(t, "parse", "--", "--version")
	if r.out.String() != "foo version 2.0.0\n" || !cmp.Equal([]int{0}, r.codes) {
		t.Fatalf("version: %q %v", r.out.String(), r.codes)
	}
	r = runCLI(t, "parse", "--", "-h")
	if !strings.HasPrefix(r.out.String(), "foo [OPTIONS]\n") || !cmp.Equal([]int{0}, r.codes) {
		t.Fatalf("help: %q %v", r.out.String(), r.codes)
	}
}

func TestParseCommand_Separator(t *testing.T) {
	t.Setenv("ARGSKEMA_SCHEMA", writeFile(t, "foo.yaml", fooYAML))
	r := runCLI(t, "--no-color", "parse", "--", "--baz", "x")
	if r.out.String() != `{"bar":null,"baz":"x","bool":false,"at":null}`+"\n" || len(r.codes) != 0 {
		t.Fatalf("options after the separator should be matched: %q %q %v", r.out.String(), r.err.String(), r.codes)
	}

	// only the first separator belongs to the command line of argskema itself
	r = runCLI(t, "--no-color", "parse", "--", "--", "--baz", "x")
	want := "unknown argument: --baz\nunknown argument: x\nmissing option: --baz=STRING\n"
	if diff := cmp.Diff(want, r.err.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, r.codes); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestParseCommand_SchemaError(t *testing.T) {
	schema := writeFile(t, "shape.json", `{"name":"Shape","variants":[{"name":"A","fields":[]},{"name":"B","fields":[]}]}`)
	r := runCLI(t, "--no-color", "-s", schema, "parse")
	if r.ret != nil {
		t.Fatalf("run: %v", r.ret)
	}
	if r.err.String() != "argskema doesn't support sum types, Shape has 2 alternatives\n" {
		t.Fatalf("stderr %q", r.err.String())
	}
}

func TestUsageAndOptions(t *testing.T) {
	schema := writeFile(t, "foo.yaml", fooYAML)
	r := runCLI(t, "-s", schema, "-p", "foo", "usage")
	if r.ret != nil {
		t.Fatalf("usage: %v", r.ret)
	}
	want := "foo [OPTIONS]\n" +
		"  --bar=INTEGER  optional\n" +
		"  --baz=STRING\n" +
		"  --bool\n" +
		"  --at=TIME      optional\n" +
		"  --version      show version and exit\n" +
		"  --help         show help and exit\n"
	if diff := cmp.Diff(want, r.out.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	r = runCLI(t, "-s", schema, "options", "--format", "json")
	if r.ret != nil {
		t.Fatalf("options: %v", r.ret)
	}
	if !strings.Contains(r.out.String(), `"placeholder": "=TIME"`) {
		t.Fatalf("options json:\n%s", r.out.String())
	}
}

func TestBundle(t *testing.T) {
	schema := writeFile(t, "bundle.yaml", "name: A\nfields: [{name: a, kind: int}]\n---\n"+fooYAML)
	r := runCLI(t, "-s", schema, "--bundle", "Foo", "-p", "foo", "usage")
	if r.ret != nil || !strings.Contains(r.out.String(), "--baz=STRING") {
		t.Fatalf("bundle: %v %q", r.ret, r.out.String())
	}
}

func TestNoSchema(t *testing.T) {
	t.Setenv("ARGSKEMA_SCHEMA", "unused")
	os.Unsetenv("ARGSKEMA_SCHEMA")
	r := runCLI(t, "usage")
	if r.ret == nil || !strings.Contains(r.ret.Error(), "no schema") {
		t.Fatalf("expected missing schema error, got %v", r.ret)
	}
}

func TestGenCommand(t *testing.T) {
	dir := t.TempDir()
	src := "package serve\n\ntype Options struct {\n\tPort int\n\tFiles []string `arg:\"positional\"`\n}\n"
	for name, content := range map[string]string{
		"go.mod":          "module example.com/serve\n\ngo 1.25\n",
		"opts.go":         src,
		"opts_test.go":    "package serve\n\ntype Options struct{}\n",
		"opts_ignored.go": "//go:build ignore\n\npackage serve\n\ntype Options struct{ Bad map[int]int }\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	r := runCLI(t, "gen", "--dir", dir, "--type", "Options")
	if r.ret != nil {
		t.Fatalf("gen: %v", r.ret)
	}
	if !strings.Contains(r.out.String(), "func NewOptionsParser(opts ...argskema.Option) (*dsl.Parser[Options], error)") {
		t.Fatalf("generated:\n%s", r.out.String())
	}

	out := filepath.Join(dir, "opts.yaml")
	r = runCLI(t, "gen", "--dir", dir, "-t", "Options", "-f", "yaml", "-o", out)
	if r.ret != nil {
		t.Fatalf("gen yaml: %v", r.ret)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "name: Options\nfields:\n  - name: Port\n    kind: int\n  - name: Files\n    kind: string\n    cardinality: multiple\n    positional: true\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
