package describe_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/argskema"
	"github.com/reoring/argskema/codec"
	"github.com/reoring/argskema/describe"
)

const copyYAML = `name: Copy
version: 0.3.0
fields:
  - name: recursive
    kind: bool
  - name: maxDepth
    kind: int
    cardinality: optional
    help: max depth
  - name: exclude
    kind: string
    cardinality: multiple
    flag: x
  - name: src
    kind: string
    positional: true
`

func TestFromYAML_Build(t *testing.T) {
	d, err := describe.FromYAML([]byte(copyYAML))
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	s, err := d.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := "cp [OPTIONS] STRING\n" +
		"  --recursive\n" +
		"  --max-depth=INTEGER  max depth (optional)\n" +
		"  --x=STRING\n" +
		"  --version            show version and exit\n" +
		"  --help               show help and exit\n"
	if diff := cmp.Diff(want, s.Help("cp")); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	res := s.Parse("cp", []string{"--x", "a", "dir", "--recursive", "--x", "b"})
	if res.Kind != argskema.Success {
		t.Fatalf("unexpected %v", res.Messages())
	}
	var buf bytes.Buffer
	if err := describe.EncodeValues(&buf, res.Value); err != nil {
		t.Fatalf("encode values: %v", err)
	}
	if got := buf.String(); got != `{"recursive":true,"maxDepth":null,"exclude":["a","b"],"src":"dir"}`+"\n" {
		t.Fatalf("values json %s", got)
	}
}

func TestFromYAML_Errors(t *testing.T) {
	_, err := describe.FromYAML([]byte("name: A\nname: B\n"))
	var dup *describe.DuplicateKeyError
	if !errors.As(err, &dup) || dup.Key != "name" || dup.Line != 2 || dup.FirstLine != 1 {
		t.Fatalf("expected duplicate key error, got %v", err)
	}

	d, err := describe.FromYAML([]byte("name: A\nfields:\n  - name: a\n    kind: int\n    cardinality: sometimes\n"))
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	if _, err := d.Build(); err == nil || !strings.Contains(err.Error(), "sometimes") {
		t.Fatalf("expected cardinality error, got %v", err)
	}

	for _, doc := range []string{
		"name: A\nfields:\n  - name: a\n    kind: int\n    cardinalty: optional\n",
		"name: A\nversoin: 1.0\nfields: []\n",
	} {
		_, err := describe.FromYAML([]byte(doc))
		if err == nil || !strings.Contains(err.Error(), "not found in type") {
			t.Fatalf("expected unknown key error for %q, got %v", doc, err)
		}
	}
	if _, err := describe.FromYAMLBundle([]byte("name: A\n---\nname: B\nfeilds: []\n"), "A"); err == nil {
		t.Fatalf("expected unknown key error in bundle")
	}

	d, err = describe.FromYAML([]byte("name: A\nfields:\n  - name: a\n    kind: int\n    positional: true\n    flag: b\n"))
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	if _, err := d.Build(); err == nil || !strings.Contains(err.Error(), "positional and has no flag") {
		t.Fatalf("expected flag on positional to be rejected, got %v", err)
	}

	if _, err := describe.FromYAML([]byte("name: A\n---\nname: B\n")); err == nil {
		t.Fatalf("expected error for multiple documents")
	}
}

func TestFromYAMLBundle(t *testing.T) {
	bundle := "name: A\nfields:\n  - name: a\n    kind: int\n---\nname: B\nfields:\n  - name: b\n    kind: string\n"
	d, err := describe.FromYAMLBundle([]byte(bundle), "B")
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	if d.Name != "B" || len(d.Fields) != 1 || d.Fields[0].Kind != "string" {
		t.Fatalf("unexpected document %+v", d)
	}
	if _, err := describe.FromYAMLBundle([]byte(bundle), "C"); err == nil {
		t.Fatalf("expected not found")
	}
}

func TestFromJSON(t *testing.T) {
	d, err := describe.FromJSON([]byte(`{"name":"Pair","fields":[{"kind":"string"},{"kind":"int"}]}`))
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	s, err := d.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	res := s.Parse("p", []string{"x", "2"})
	var buf bytes.Buffer
	if err := describe.EncodeValues(&buf, res.Value); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.String() != "[\"x\",2]\n" {
		t.Fatalf("tuple json %s", buf.String())
	}

	if _, err := describe.FromJSON([]byte(`{"name":"X","extra":1}`)); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestEncodeValues_TimeAndDuration(t *testing.T) {
	d, err := describe.FromYAML([]byte("name: Job\nfields:\n  - {name: at, kind: time}\n  - {name: every, kind: duration, cardinality: multiple}\n"))
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	s, err := d.Build(argskema.WithRegistry(codec.Register(nil)))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	res := s.Parse("p", []string{"--at", "2025-01-02T12:00:00.500+09:00", "--every", "90s", "--every", "1h"})
	if res.Kind != argskema.Success {
		t.Fatalf("unexpected %v", res.Messages())
	}
	var buf bytes.Buffer
	if err := describe.EncodeValues(&buf, res.Value); err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"at":"2025-01-02T03:00:00.5Z","every":["1m30s","1h0m0s"]}` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestSumTypeDocument(t *testing.T) {
	d, err := describe.FromYAML([]byte("name: Shape\nvariants:\n  - name: Circle\n    fields: [{name: r, kind: float}]\n  - name: Square\n    fields: [{name: side, kind: float}]\n"))
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	_, err = d.Build()
	iss, ok := argskema.AsIssues(err)
	if !ok || iss[0].Code != argskema.CodeSumType {
		t.Fatalf("expected sum type rejection, got %v", err)
	}
}

func TestOptionTable_Encode(t *testing.T) {
	d, err := describe.FromYAML([]byte(copyYAML))
	if err != nil {
		t.Fatalf("from yaml: %v", err)
	}
	s, err := d.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []describe.Option{
		{Flag: "recursive", Cardinality: "flag", Field: "recursive"},
		{Flag: "max-depth", Placeholder: "=INTEGER", Help: "max depth (optional)", Cardinality: "optional", Field: "maxDepth"},
		{Flag: "x", Placeholder: "=STRING", Cardinality: "multiple", Field: "exclude"},
		{Placeholder: "STRING", Cardinality: "required", Field: "src", Positional: true},
		{Flag: "version", Help: "show version and exit", Cardinality: "flag"},
		{Flag: "help", Help: "show help and exit", Cardinality: "flag"},
	}
	if diff := cmp.Diff(want, describe.OptionTable(s)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	var y bytes.Buffer
	if err := describe.EncodeYAML(&y, s); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.HasPrefix(y.String(), "- flag: recursive\n  cardinality: flag\n  field: recursive\n") {
		t.Fatalf("yaml table:\n%s", y.String())
	}
	var j bytes.Buffer
	if err := describe.EncodeJSON(&j, s); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(j.String(), `"flag": "max-depth"`) {
		t.Fatalf("json table:\n%s", j.String())
	}
}

func TestDocumentRoundtrip(t *testing.T) {
	desc := argskema.Product("T",
		argskema.FieldSpec{Name: "n", Kind: argskema.KindInt, Cardinality: argskema.Multiple, Help: "numbers"},
		argskema.FieldSpec{Name: "f", Kind: argskema.KindBool},
	)
	var buf bytes.Buffer
	if err := describe.EncodeDocumentYAML(&buf, describe.FromDescription(desc)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "t.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	d, err := describe.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got, err := d.Description()
	if err != nil {
		t.Fatalf("description: %v", err)
	}
	if diff := cmp.Diff(desc, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}
