package host_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/argskema"
	"github.com/reoring/argskema/dsl"
	"github.com/reoring/argskema/host"
)

type recorder struct {
	out, err bytes.Buffer
	codes    []int
}

func newHost(rec *recorder, argv ...string) *host.Host {
	return &host.Host{
		Stdout: &rec.out,
		Stderr: &rec.err,
		Exit:   func(code int) { rec.codes = append(rec.codes, code) },
		Argv:   argv,
	}
}

func schema() *argskema.Schema {
	return argskema.MustBuildSchema(argskema.Product("Foo",
		argskema.FieldSpec{Name: "bar", Kind: argskema.KindInt, Cardinality: argskema.Optional},
		argskema.FieldSpec{Name: "baz", Kind: argskema.KindString},
	))
}

func TestHandle_Success(t *testing.T) {
	var rec recorder
	h := newHost(&rec, "/usr/bin/tool", "--baz", "x")
	vals, ok := h.Parse(context.Background(), schema())
	if !ok {
		t.Fatalf("expected success, stderr=%q", rec.err.String())
	}
	if diff := cmp.Diff([]any{nil, "x"}, vals.Slice()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if len(rec.codes) != 0 || rec.out.Len() != 0 || rec.err.Len() != 0 {
		t.Fatalf("success must not print or exit: %v %q %q", rec.codes, rec.out.String(), rec.err.String())
	}
}

func TestHandle_Errors(t *testing.T) {
	var rec recorder
	h := newHost(&rec, "tool", "--bar", "x", "--nope")
	if _, ok := h.Parse(context.Background(), schema()); ok {
		t.Fatalf("expected failure")
	}
	want := "unrecognized option '--nope'\nmissing option: --baz=STRING\n"
	if diff := cmp.Diff(want, rec.err.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{host.ExitError}, rec.codes); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestHandle_Color(t *testing.T) {
	var rec recorder
	h := newHost(&rec, "tool")
	h.Color = true
	h.Parse(context.Background(), schema())
	if !strings.Contains(rec.err.String(), "\x1b[31m") {
		t.Fatalf("expected red escape, got %q", rec.err.String())
	}
}

func TestHandle_Help(t *testing.T) {
	var rec recorder
	h := newHost(&rec, "/opt/tool", "--baz", "x", "-h")
	if _, ok := h.Parse(context.Background(), schema()); ok {
		t.Fatalf("help must not succeed")
	}
	if !strings.HasPrefix(rec.out.String(), "tool [OPTIONS]\n") {
		t.Fatalf("help output %q", rec.out.String())
	}
	if diff := cmp.Diff([]int{host.ExitOK}, rec.codes); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestProgramName(t *testing.T) {
	h := &host.Host{Argv: []string{}}
	if h.ProgramName() != "prog-name" || h.Args() != nil {
		t.Fatalf("empty argv: %q %v", h.ProgramName(), h.Args())
	}
	h = &host.Host{Argv: []string{"a/b/c", "x"}, Name: "named"}
	if h.ProgramName() != "named" {
		t.Fatalf("override ignored")
	}
	if diff := cmp.Diff([]string{"x"}, h.Args()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

type greet struct {
	Name  string
	Loud  bool
	Times *int
}

func TestGetArguments(t *testing.T) {
	var rec recorder
	h := newHost(&rec, "greet", "--name", "reo", "--loud")
	v, ok := host.GetArguments(context.Background(), h, dsl.MustStructOf[greet]())
	if !ok {
		t.Fatalf("unexpected failure: %s", rec.err.String())
	}
	if diff := cmp.Diff(greet{Name: "reo", Loud: true}, v); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
